package mathutil

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// Finite returns val, or 0 when val is NaN or infinite.
func Finite(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// NonNegative returns val clamped at zero. Non-finite values become zero.
func NonNegative(val float64) float64 {
	val = Finite(val)
	if val < 0 {
		return 0
	}
	return val
}

// Clamp limits val to [lo, hi]. Non-finite values become zero before clamping.
func Clamp(val, lo, hi float64) float64 {
	val = Finite(val)
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// SafeDivide returns a/b, or 0 when b is 0.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// PeriodicRate converts an annual percentage into a decimal rate per period.
func PeriodicRate(annualPercent float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		return 0
	}
	return annualPercent / (constants.PercentageMultiplier * float64(periodsPerYear))
}
