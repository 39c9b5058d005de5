package tax

import "math"

const (
	// CGTDiscount is the fraction of a gain that is taxable for assets held over a year.
	CGTDiscount = 0.5
	// CGTTopRate approximates the marginal rate with the top individual rate.
	CGTTopRate = 0.45
)

// CapitalGainsTax is the breakdown returned by ComputeCapitalGainsTax.
type CapitalGainsTax struct {
	Gain        float64
	TaxableGain float64
	Tax         float64
}

// ComputeCapitalGainsTax estimates Australian CGT on an asset. Losses count as
// a zero gain.
func ComputeCapitalGainsTax(assetValue, costBase float64, longHeld bool) CapitalGainsTax {
	gain := math.Max(assetValue-costBase, 0)
	taxable := gain
	if longHeld {
		taxable = gain * CGTDiscount
	}

	return CapitalGainsTax{
		Gain:        gain,
		TaxableGain: taxable,
		Tax:         taxable * CGTTopRate,
	}
}
