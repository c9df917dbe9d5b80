package interest

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// InflationResult holds the effect of a constant inflation rate over time.
type InflationResult struct {
	FutureCost          float64 // what the amount will cost after the period
	RealValue           float64 // what the amount will be worth in today's money
	PurchasingPowerLost float64 // percent
}

// Inflation projects an amount forward at a constant annual rate.
func Inflation(amount, annualRate, years float64) InflationResult {
	amount = mathutil.NonNegative(amount)
	years = mathutil.Clamp(years, 0, constants.MaxTermYears)
	factor := math.Pow(1+mathutil.NonNegative(annualRate)/constants.PercentageMultiplier, years)

	result := InflationResult{
		FutureCost: amount * factor,
		RealValue:  amount / factor,
	}
	result.PurchasingPowerLost = (1 - 1/factor) * constants.PercentageMultiplier
	return result
}
