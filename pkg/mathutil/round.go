// Package mathutil holds the small numeric helpers shared by the calculators:
// rounding to pence, percentages and guards against bad inputs.
package mathutil

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// RoundLimit is the magnitude beyond which a float64 no longer holds pennies.
const RoundLimit = 1e15

// Round rounds val to the nearest penny, halves away from zero. Values of
// RoundLimit or more have no pennies left to round and are returned as is.
func Round(val float64) float64 {
	if math.Abs(val) >= RoundLimit {
		return val
	}
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero reports whether val is within a penny of zero.
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// CalculatePercentage returns part as a percent of total, or 0 for a zero total.
func CalculatePercentage(part, total float64) float64 {
	return SafeDivide(part, total) * constants.PercentageMultiplier
}

// ApplyPercentage returns percent of val.
func ApplyPercentage(val, percent float64) float64 {
	return val * percent / constants.PercentageMultiplier
}
