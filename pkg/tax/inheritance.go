package tax

import (
	"errors"
	"math"

	"taxsim/pkg/domain"
	"taxsim/pkg/serrors"
)

const (
	// InheritanceBaseDeduction is the fixed part of the basic deduction.
	InheritanceBaseDeduction = 3000
	// InheritancePerHeirDeduction is added to the basic deduction for each heir.
	InheritancePerHeirDeduction = 600
	// SpouseExemptionCap caps the amount of the spouse's share that is exempt.
	SpouseExemptionCap = 16000
)

// ErrNoHeirs is returned when an inheritance has neither a spouse nor children.
var ErrNoHeirs = errors.New("no heirs")

// InheritanceTax is the breakdown returned by ComputeInheritanceTax.
type InheritanceTax struct {
	HeirCount       int
	BasicDeduction  float64
	TaxableEstate   float64
	SharePerHeir    float64
	SpouseExemption float64
	SpouseTax       float64
	ChildTaxTotal   float64
	Total           float64
}

// InheritanceBasicDeduction returns 3000 + 600 per heir.
func InheritanceBasicDeduction(heirCount int) float64 {
	return InheritanceBaseDeduction + InheritancePerHeirDeduction*float64(heirCount)
}

// ComputeInheritanceTax splits the taxable estate equally among the heirs and
// taxes each share with the inheritance table. The spouse's share is first
// reduced by min(16000, share). Equal shares are a simplification of the
// statutory split.
//
// It returns an error matching both ErrNoHeirs and serrors.ErrDomain when there
// is no heir.
func ComputeInheritanceTax(estateTotal float64, numChildren int, hasSpouse bool) (InheritanceTax, error) {
	heirCount := domain.HeirConfig{NumChildren: numChildren, HasSpouse: hasSpouse}.HeirCount()
	if heirCount <= 0 {
		return InheritanceTax{}, serrors.Wrap(serrors.ErrDomain, ErrNoHeirs,
			"inheritance tax cannot be computed without a spouse or children")
	}

	table := JapanInheritanceTable()
	deduction := InheritanceBasicDeduction(heirCount)
	taxable := math.Max(estateTotal-deduction, 0)
	share := taxable / float64(heirCount)

	out := InheritanceTax{
		HeirCount:      heirCount,
		BasicDeduction: deduction,
		TaxableEstate:  taxable,
		SharePerHeir:   share,
	}

	if hasSpouse {
		out.SpouseExemption = math.Min(SpouseExemptionCap, share)
		out.SpouseTax = ComputeBracketTax(share-out.SpouseExemption, table)
	}

	// every child receives the same share
	if numChildren > 0 {
		out.ChildTaxTotal = float64(numChildren) * ComputeBracketTax(share, table)
	}

	out.Total = out.SpouseTax + out.ChildTaxTotal

	return out, nil
}
