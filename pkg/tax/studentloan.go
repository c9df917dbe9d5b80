package tax

import (
	"sort"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// defaultWriteOffYears bounds payoff projections for plans without a write-off.
const defaultWriteOffYears = 30

// Plan looks up a student loan plan by case-insensitive name.
func (ty TaxYear) Plan(name string) (StudentLoanPlan, bool) {
	plan, ok := ty.StudentLoans[strings.ToLower(strings.TrimSpace(name))]
	return plan, ok
}

// PlanNames returns the configured plan names in sorted order.
func (ty TaxYear) PlanNames() []string {
	names := make([]string, 0, len(ty.StudentLoans))
	for name := range ty.StudentLoans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StudentLoanRepayment returns the annual repayment on income above the plan
// threshold. Unknown plans repay nothing.
func (ty TaxYear) StudentLoanRepayment(income float64, plan string) float64 {
	p, ok := ty.Plan(plan)
	if !ok {
		return 0
	}
	return mathutil.ApplyPercentage(mathutil.NonNegative(income-p.Threshold), p.Rate)
}

// StudentLoanPayoffResult holds the outcome of StudentLoanPayoff.
type StudentLoanPayoffResult struct {
	Years         int
	TotalRepaid   float64
	TotalInterest float64
	WrittenOff    float64
	Cleared       bool
}

// StudentLoanPayoff projects repayments year by year, with salary growing at
// salaryGrowth percent, until the balance clears or the plan writes it off.
func (ty TaxYear) StudentLoanPayoff(balance, interestRate, salary, salaryGrowth float64, plan string) StudentLoanPayoffResult {
	balance = mathutil.NonNegative(balance)
	salary = mathutil.NonNegative(salary)
	rate := mathutil.NonNegative(interestRate) / constants.PercentageMultiplier
	growth := mathutil.NonNegative(salaryGrowth) / constants.PercentageMultiplier

	result := StudentLoanPayoffResult{}
	if balance == 0 {
		result.Cleared = true
		return result
	}
	p, ok := ty.Plan(plan)
	if !ok {
		result.WrittenOff = balance
		return result
	}
	years := p.WriteOffYears
	if years <= 0 {
		years = defaultWriteOffYears
	}

	for year := 1; year <= years; year++ {
		interest := balance * rate
		repayment := min(ty.StudentLoanRepayment(salary, plan), balance+interest)
		balance += interest - repayment
		result.TotalInterest += interest
		result.TotalRepaid += repayment
		result.Years = year
		if mathutil.Round(balance) <= 0 {
			result.Cleared = true
			return result
		}
		salary *= 1 + growth
	}
	result.WrittenOff = balance
	return result
}
