package tax

import (
	"math"

	"taxsim/pkg/domain"
)

// ComputeBracketTax returns the tax owed on amount under table, using the
// first bracket whose upper bound is >= amount. If no bracket matches, the
// last bracket applies. The result is never negative; an empty table yields 0.
func ComputeBracketTax(amount float64, table domain.BracketTable) float64 {
	if len(table) == 0 {
		return 0
	}

	for _, b := range table {
		if amount <= b.UpperBound {
			return apply(amount, b)
		}
	}

	// unreachable with a +Inf sentinel
	return apply(amount, table[len(table)-1])
}

func apply(amount float64, b domain.Bracket) float64 {
	return math.Max(amount*b.Rate-b.Subtractor, 0)
}
