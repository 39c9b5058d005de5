package tax

import (
	"math"

	"taxsim/pkg/domain"
)

const (
	// BasicIncomeDeduction is subtracted from gross income before any income or resident tax.
	BasicIncomeDeduction = 48
	// ResidentTaxRate is the flat municipal + prefectural rate on taxable income.
	ResidentTaxRate = 0.10
)

// TaxableIncome returns gross income less the basic deduction, floored at 0.
func TaxableIncome(gross float64) float64 {
	return math.Max(gross-BasicIncomeDeduction, 0)
}

// ComputeIncomeTax returns the taxable income and the national income tax on it.
func ComputeIncomeTax(gross float64, table domain.BracketTable) (taxable float64, tax float64) {
	taxable = TaxableIncome(gross)

	return taxable, ComputeBracketTax(taxable, table)
}

// ComputeResidentTax returns the flat resident tax on gross income.
func ComputeResidentTax(gross float64) float64 {
	return TaxableIncome(gross) * ResidentTaxRate
}
