package domain

// IncomeInput is the annual income form. Amounts are in 10,000-yen units.
type IncomeInput struct {
	// GrossIncome is the annual income before the basic deduction.
	GrossIncome float64
	// Resident is true when the taxpayer has an address in Japan.
	Resident bool
}

// IncomeResult holds Japanese income and resident tax for one taxpayer.
// All amounts are in 10,000-yen units.
type IncomeResult struct {
	GrossIncome    float64
	BasicDeduction float64
	TaxableIncome  float64
	IncomeTax      float64
	ResidentTax    float64
	TotalTax       float64

	// Resident mirrors the input; when false no tax is computed and Notice explains why.
	Resident bool
	// Table is the name of the income bracket table used.
	Table string
	// Notice is an optional human-readable remark about the result.
	Notice string
}
