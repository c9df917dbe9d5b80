// Package interest provides compound growth, inflation and savings goal formulas.
package interest

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// SavingsInput describes a lump sum plus regular monthly contributions.
type SavingsInput struct {
	Principal           float64
	MonthlyContribution float64
	AnnualRate          float64 // percent
	Years               int
	CompoundsPerYear    int // defaults to monthly
}

// YearBalance is the position at the end of a year.
type YearBalance struct {
	Year          int
	Balance       float64
	Contributions float64
	Interest      float64
}

// SavingsResult holds the outcome of FutureValue.
type SavingsResult struct {
	FutureValue        float64
	TotalContributions float64
	InterestEarned     float64
	Yearly             []YearBalance
}

// FutureValue compounds a principal and end-of-period contributions. The
// monthly contribution is spread evenly over the compounding periods.
func FutureValue(in SavingsInput) SavingsResult {
	principal := mathutil.NonNegative(in.Principal)
	monthly := mathutil.NonNegative(in.MonthlyContribution)
	years := in.Years
	if years < 0 {
		years = 0
	}
	if years > constants.MaxTermYears {
		years = constants.MaxTermYears
	}
	n := in.CompoundsPerYear
	if n <= 0 {
		n = constants.MonthsPerYear
	}

	r := mathutil.PeriodicRate(mathutil.NonNegative(in.AnnualRate), n)
	perPeriod := monthly * constants.MonthsPerYear / float64(n)

	result := SavingsResult{Yearly: make([]YearBalance, 0, years)}
	balance := principal
	contributions := principal
	for year := 1; year <= years; year++ {
		startBalance := balance
		for period := 0; period < n; period++ {
			balance = balance*(1+r) + perPeriod
		}
		added := perPeriod * float64(n)
		contributions += added
		result.Yearly = append(result.Yearly, YearBalance{
			Year:          year,
			Balance:       balance,
			Contributions: contributions,
			Interest:      balance - startBalance - added,
		})
	}

	// Closed form for the final figure; the loop above only feeds the yearly table.
	periods := float64(years * n)
	if r == 0 {
		result.FutureValue = principal + perPeriod*periods
	} else {
		growth := math.Pow(1+r, periods)
		result.FutureValue = principal*growth + perPeriod*(growth-1)/r
	}
	result.TotalContributions = contributions
	result.InterestEarned = result.FutureValue - contributions
	return result
}

// EffectiveAnnualRate converts a nominal APR compounded periodsPerYear times
// into the equivalent annual rate (AER), both as percentages.
func EffectiveAnnualRate(apr float64, periodsPerYear int) float64 {
	apr = mathutil.NonNegative(apr)
	if periodsPerYear <= 0 {
		return apr
	}
	r := mathutil.PeriodicRate(apr, periodsPerYear)
	return (math.Pow(1+r, float64(periodsPerYear)) - 1) * constants.PercentageMultiplier
}
