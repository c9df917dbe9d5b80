// Package salary converts pay between periods and works out UK take-home pay.
package salary

import (
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Pay periods accepted by Convert.
const (
	PeriodHourly  = "hourly"
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

// Periods lists the pay periods in ascending length.
var Periods = []string{PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual}

const (
	DefaultHoursPerWeek = 37.5
	DefaultDaysPerWeek  = 5.0
)

// Breakdown expresses one salary in every pay period.
type Breakdown struct {
	Hourly  float64
	Daily   float64
	Weekly  float64
	Monthly float64
	Annual  float64
}

// Convert expresses amount, paid per period, in every other period. Hours and
// days per week fall back to a full-time week when not positive. An unknown
// period is read as annual.
func Convert(amount float64, period string, hoursPerWeek, daysPerWeek float64) Breakdown {
	amount = mathutil.NonNegative(amount)
	if hoursPerWeek <= 0 {
		hoursPerWeek = DefaultHoursPerWeek
	}
	if daysPerWeek <= 0 {
		daysPerWeek = DefaultDaysPerWeek
	}

	var annual float64
	switch strings.ToLower(strings.TrimSpace(period)) {
	case PeriodHourly:
		annual = amount * hoursPerWeek * constants.WeeksPerYear
	case PeriodDaily:
		annual = amount * daysPerWeek * constants.WeeksPerYear
	case PeriodWeekly:
		annual = amount * constants.WeeksPerYear
	case PeriodMonthly:
		annual = amount * constants.MonthsPerYear
	default:
		annual = amount
	}

	weekly := annual / constants.WeeksPerYear
	return Breakdown{
		Hourly:  weekly / hoursPerWeek,
		Daily:   weekly / daysPerWeek,
		Weekly:  weekly,
		Monthly: annual / constants.MonthsPerYear,
		Annual:  annual,
	}
}

// PayRiseResult holds the effect of a percentage pay rise.
type PayRiseResult struct {
	Current         float64
	NewSalary       float64
	Increase        float64
	MonthlyIncrease float64
}

// PayRise applies percent to the current annual salary. Pay cuts are allowed
// down to a zero salary.
func PayRise(current, percent float64) PayRiseResult {
	current = mathutil.NonNegative(current)
	increase := max(mathutil.ApplyPercentage(current, percent), -current)
	return PayRiseResult{
		Current:         current,
		NewSalary:       current + increase,
		Increase:        increase,
		MonthlyIncrease: increase / constants.MonthsPerYear,
	}
}
