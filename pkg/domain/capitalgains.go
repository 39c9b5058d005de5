package domain

// CapitalGainInput describes an Australian asset passing to an heir, in AUD.
type CapitalGainInput struct {
	AssetValue float64
	CostBase   float64
	// LongHeld is true for assets held for more than a year (50% CGT discount).
	LongHeld bool
}

// CapitalGainResult is the estimated Australian CGT, in AUD.
type CapitalGainResult struct {
	Gain        float64
	TaxableGain float64
	Tax         float64
}
