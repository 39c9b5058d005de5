package domain

import (
	"fmt"
	"math"
)

// Bracket is one tier of a progressive schedule. Amounts up to and including
// UpperBound are taxed as amount*Rate - Subtractor, where Subtractor is the
// cumulative deduction that makes the shortcut equal to marginal taxation.
type Bracket struct {
	UpperBound float64 `json:"upperBound"`
	Rate       float64 `json:"rate"`
	Subtractor float64 `json:"subtractor"`
}

// BracketTable is an ordered progressive schedule. The last bracket's
// UpperBound is +Inf.
type BracketTable []Bracket

// Validate reports whether the table is well formed: non-empty, strictly
// increasing bounds, rates within [0,1] and an unbounded last tier.
// Continuity of the cumulative tax at each boundary is not checked.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}

	for i, b := range t {
		if math.IsNaN(b.UpperBound) || math.IsNaN(b.Rate) || math.IsNaN(b.Subtractor) {
			return fmt.Errorf("bracket %d contains NaN", i)
		}
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("bracket %d rate %v is outside [0,1]", i, b.Rate)
		}
		if i > 0 && b.UpperBound <= t[i-1].UpperBound {
			return fmt.Errorf("bracket %d upper bound %v is not above %v", i, b.UpperBound, t[i-1].UpperBound)
		}
	}

	if last := t[len(t)-1].UpperBound; !math.IsInf(last, 1) {
		return fmt.Errorf("last bracket upper bound must be +Inf, got %v", last)
	}

	return nil
}

// NamedTable pairs a bracket table with the identifier used to select it in
// configuration and the API.
type NamedTable struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Table       BracketTable `json:"brackets"`
}
