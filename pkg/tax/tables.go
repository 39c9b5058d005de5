package tax

import (
	"math"

	"taxsim/pkg/domain"
	"taxsim/pkg/serrors"
)

// Names of the built-in bracket tables.
const (
	JapanIncome       = "jp-income"
	JapanIncomeLegacy = "jp-income-legacy"
	JapanInheritance  = "jp-inheritance"
)

var inf = math.Inf(1) //nolint: gochecknoglobals

// JapanIncomeTable is the seven-tier national income tax schedule, including
// the 4000 / 45% top tier. It is the default income table.
func JapanIncomeTable() domain.BracketTable {
	return domain.BracketTable{
		{UpperBound: 195, Rate: 0.05, Subtractor: 0},
		{UpperBound: 330, Rate: 0.10, Subtractor: 9.75},
		{UpperBound: 695, Rate: 0.20, Subtractor: 42.75},
		{UpperBound: 900, Rate: 0.23, Subtractor: 63.6},
		{UpperBound: 1800, Rate: 0.33, Subtractor: 153.6},
		{UpperBound: 4000, Rate: 0.40, Subtractor: 279.6},
		{UpperBound: inf, Rate: 0.45, Subtractor: 479.6},
	}
}

// JapanIncomeLegacyTable is the six-tier variant with no 45% tier: everything
// above 1800 is taxed at 40%. It exists only so the older schedule can be
// selected explicitly; it understates tax above 4000.
func JapanIncomeLegacyTable() domain.BracketTable {
	return domain.BracketTable{
		{UpperBound: 195, Rate: 0.05, Subtractor: 0},
		{UpperBound: 330, Rate: 0.10, Subtractor: 9.75},
		{UpperBound: 695, Rate: 0.20, Subtractor: 42.75},
		{UpperBound: 900, Rate: 0.23, Subtractor: 63.6},
		{UpperBound: 1800, Rate: 0.33, Subtractor: 153.6},
		{UpperBound: inf, Rate: 0.40, Subtractor: 279.6},
	}
}

// JapanInheritanceTable is the per-heir inheritance tax schedule.
// The top tier carries a zero subtractor as published in the source
// schedule this program reproduces.
func JapanInheritanceTable() domain.BracketTable {
	return domain.BracketTable{
		{UpperBound: 1000, Rate: 0.10, Subtractor: 0},
		{UpperBound: 3000, Rate: 0.15, Subtractor: 50},
		{UpperBound: 5000, Rate: 0.20, Subtractor: 200},
		{UpperBound: 10000, Rate: 0.30, Subtractor: 700},
		{UpperBound: 20000, Rate: 0.40, Subtractor: 1700},
		{UpperBound: inf, Rate: 0.55, Subtractor: 0},
	}
}

// Tables lists every built-in table, income tables first.
func Tables() []domain.NamedTable {
	return []domain.NamedTable{
		{
			Name:        JapanIncome,
			Description: "Japan national income tax, seven tiers up to 45%",
			Table:       JapanIncomeTable(),
		},
		{
			Name:        JapanIncomeLegacy,
			Description: "Japan national income tax, six tiers capped at 40% (legacy schedule)",
			Table:       JapanIncomeLegacyTable(),
		},
		{
			Name:        JapanInheritance,
			Description: "Japan inheritance tax per heir share",
			Table:       JapanInheritanceTable(),
		},
	}
}

// Table returns the built-in table with the given name.
func Table(name string) (domain.BracketTable, error) {
	for _, t := range Tables() {
		if t.Name == name {
			return t.Table, nil
		}
	}

	return nil, serrors.With(serrors.ErrNotFound, "bracket table %q not found", name)
}
