package interest

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// GoalResult holds the outcome of SavingsGoal.
type GoalResult struct {
	Months         int
	Reachable      bool
	TotalDeposited float64
	InterestEarned float64
	FinalBalance   float64
}

// SavingsGoal steps month by month until current savings plus deposits and
// monthly-compounded interest reach target, giving up after
// constants.MaxPayoffMonths.
func SavingsGoal(target, current, monthlyDeposit, annualRate float64) GoalResult {
	target = mathutil.NonNegative(target)
	balance := mathutil.NonNegative(current)
	deposit := mathutil.NonNegative(monthlyDeposit)
	r := mathutil.PeriodicRate(mathutil.NonNegative(annualRate), constants.MonthsPerYear)

	result := GoalResult{}
	if balance >= target {
		result.Reachable = true
		result.FinalBalance = balance
		return result
	}
	if deposit == 0 && (r == 0 || balance == 0) {
		result.FinalBalance = balance
		return result
	}

	for month := 1; month <= constants.MaxPayoffMonths; month++ {
		interest := balance * r
		balance += interest + deposit
		result.InterestEarned += interest
		result.TotalDeposited += deposit
		if balance >= target {
			result.Months = month
			result.Reachable = true
			break
		}
	}
	if !result.Reachable {
		result.Months = constants.MaxPayoffMonths
	}
	result.FinalBalance = balance
	return result
}

// RequiredMonthlyDeposit returns the end-of-month deposit that grows current
// savings into target over the given number of months. It is zero when the
// current savings already get there on interest alone.
func RequiredMonthlyDeposit(target, current, annualRate float64, months int) float64 {
	target = mathutil.NonNegative(target)
	current = mathutil.NonNegative(current)
	if months <= 0 {
		return 0
	}
	r := mathutil.PeriodicRate(mathutil.NonNegative(annualRate), constants.MonthsPerYear)
	if r == 0 {
		return mathutil.NonNegative((target - current) / float64(months))
	}
	growth := math.Pow(1+r, float64(months))
	return mathutil.NonNegative((target - current*growth) * r / (growth - 1))
}
