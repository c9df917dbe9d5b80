// Package retirement projects a pension pot to retirement and the income it
// can provide.
package retirement

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/annuity"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Input describes a saver and their assumptions. Rates are annual percents and
// contributions are monthly.
type Input struct {
	CurrentAge           int
	RetirementAge        int
	CurrentPot           float64
	MonthlyContribution  float64
	EmployerContribution float64
	GrowthRate           float64
	Inflation            float64
	AnnuityRate          float64
	RetirementYears      float64
	WithdrawalRate       float64
}

// YearProjection is the state of the pot at the end of one year of saving.
type YearProjection struct {
	Age           int
	Contributions float64
	Growth        float64
	Pot           float64
}

// Result holds the projected pot and retirement income.
type Result struct {
	Years          int
	Pot            float64
	RealPot        float64 // in today's money
	Contributions  float64
	Growth         float64
	AnnuityIncome  float64 // first year
	AnnuityMonthly float64
	DrawdownIncome float64 // first year
	Yearly         []YearProjection
}

// Project grows the pot month by month until retirement, adding contributions
// before growth is applied each month.
func Project(in Input) Result {
	years := in.RetirementAge - in.CurrentAge
	if years < 0 {
		years = 0
	}
	pot := mathutil.NonNegative(in.CurrentPot)
	monthly := mathutil.NonNegative(in.MonthlyContribution) + mathutil.NonNegative(in.EmployerContribution)
	monthlyRate := mathutil.PeriodicRate(mathutil.NonNegative(in.GrowthRate), constants.MonthsPerYear)

	result := Result{Years: years}
	for year := 1; year <= years; year++ {
		row := YearProjection{Age: in.CurrentAge + year}
		for month := 0; month < constants.MonthsPerYear; month++ {
			pot += monthly
			growth := pot * monthlyRate
			pot += growth
			row.Contributions += monthly
			row.Growth += growth
		}
		row.Pot = pot
		result.Contributions += row.Contributions
		result.Growth += row.Growth
		result.Yearly = append(result.Yearly, row)
	}

	result.Pot = pot
	inflation := mathutil.NonNegative(in.Inflation) / constants.PercentageMultiplier
	result.RealPot = pot / math.Pow(1+inflation, float64(years))

	payout := annuity.Payout(annuity.Input{
		Pot:        pot,
		AnnualRate: in.AnnuityRate,
		Years:      in.RetirementYears,
	})
	result.AnnuityMonthly = payout.Payment
	result.AnnuityIncome = payout.AnnualIncome
	result.DrawdownIncome = mathutil.ApplyPercentage(pot, mathutil.Clamp(in.WithdrawalRate, 0, 100))
	return result
}
