package tax

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// CapitalGainsResult holds the outcome of CapitalGainsTax.
type CapitalGainsResult struct {
	NetGain          float64
	ExemptAmountUsed float64
	TaxableGain      float64
	BasicRateGain    float64
	HigherRateGain   float64
	Tax              float64
	EffectiveRate    float64 // percent of the net gain
}

// CapitalGainsTax taxes gains less losses and the annual exempt amount. The
// part of the gain that fits in the basic rate band left unused by income is
// taxed at the basic rate and the rest at the higher rate.
func (ty TaxYear) CapitalGainsTax(gains, income, losses float64) CapitalGainsResult {
	cgt := ty.CapitalGains
	net := mathutil.NonNegative(mathutil.NonNegative(gains) - mathutil.NonNegative(losses))
	exempt := math.Min(net, mathutil.NonNegative(cgt.AnnualExemptAmount))
	taxable := net - exempt

	unusedBand := math.Inf(1)
	if band := ty.basicRateBand(); band > 0 {
		taxableIncome := mathutil.NonNegative(income - ty.Allowance(income))
		unusedBand = mathutil.NonNegative(band - taxableIncome)
	}

	result := CapitalGainsResult{
		NetGain:          net,
		ExemptAmountUsed: exempt,
		TaxableGain:      taxable,
		BasicRateGain:    math.Min(taxable, unusedBand),
	}
	result.HigherRateGain = taxable - result.BasicRateGain
	result.Tax = mathutil.ApplyPercentage(result.BasicRateGain, cgt.BasicRate) +
		mathutil.ApplyPercentage(result.HigherRateGain, cgt.HigherRate)
	result.EffectiveRate = mathutil.CalculatePercentage(result.Tax, net)
	return result
}
