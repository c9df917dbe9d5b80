// Package budget splits income across spending categories and sizes an
// emergency fund.
package budget

import (
	"math"
	"sort"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Default 50/30/20 split.
const (
	DefaultNeedsPercent   = 50.0
	DefaultWantsPercent   = 30.0
	DefaultSavingsPercent = 20.0
)

// SplitResult is income divided into needs, wants and savings.
type SplitResult struct {
	Income         float64
	Needs          float64
	Wants          float64
	Savings        float64
	NeedsPercent   float64
	WantsPercent   float64
	SavingsPercent float64
}

// Split divides income by the given percentages. Percentages that do not add
// up to 100 are scaled so that they do; all zero means the 50/30/20 rule.
func Split(income, needsPct, wantsPct, savingsPct float64) SplitResult {
	income = mathutil.NonNegative(income)
	needsPct = mathutil.NonNegative(needsPct)
	wantsPct = mathutil.NonNegative(wantsPct)
	savingsPct = mathutil.NonNegative(savingsPct)

	total := needsPct + wantsPct + savingsPct
	if total == 0 {
		needsPct, wantsPct, savingsPct = DefaultNeedsPercent, DefaultWantsPercent, DefaultSavingsPercent
		total = constants.PercentageMultiplier
	}
	scale := constants.PercentageMultiplier / total
	needsPct *= scale
	wantsPct *= scale
	savingsPct *= scale

	return SplitResult{
		Income:         income,
		Needs:          mathutil.ApplyPercentage(income, needsPct),
		Wants:          mathutil.ApplyPercentage(income, wantsPct),
		Savings:        mathutil.ApplyPercentage(income, savingsPct),
		NeedsPercent:   needsPct,
		WantsPercent:   wantsPct,
		SavingsPercent: savingsPct,
	}
}

// CategoryShare is one expense category and its share of total expenses.
type CategoryShare struct {
	Name   string
	Amount float64
	Share  float64 // percent of total expenses
}

// PlanResult summarises monthly income against expenses.
type PlanResult struct {
	Income        float64
	TotalExpenses float64
	Surplus       float64 // negative when spending exceeds income
	SavingsRate   float64 // surplus as a percent of income
	Categories    []CategoryShare
}

// Plan totals expenses by category, largest first. Blank category names and
// negative amounts are ignored.
func Plan(income float64, expenses map[string]float64) PlanResult {
	result := PlanResult{Income: mathutil.NonNegative(income)}

	for name, amount := range expenses {
		name = strings.TrimSpace(name)
		amount = mathutil.NonNegative(amount)
		if name == "" || amount == 0 {
			continue
		}
		result.Categories = append(result.Categories, CategoryShare{Name: name, Amount: amount})
		result.TotalExpenses += amount
	}

	sort.Slice(result.Categories, func(i, j int) bool {
		a, b := result.Categories[i], result.Categories[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Name < b.Name
	})
	for i := range result.Categories {
		result.Categories[i].Share = mathutil.CalculatePercentage(result.Categories[i].Amount, result.TotalExpenses)
	}

	result.Surplus = result.Income - result.TotalExpenses
	result.SavingsRate = mathutil.CalculatePercentage(result.Surplus, result.Income)
	return result
}

// EmergencyFundResult sizes an emergency fund against current savings.
type EmergencyFundResult struct {
	Target         float64
	Shortfall      float64
	Surplus        float64
	CoverageMonths float64
	MonthsToTarget int // -1 when the target is never reached within constants.MaxPayoffMonths
}

// EmergencyFund compares current savings with targetMonths of expenses.
func EmergencyFund(monthlyExpenses, targetMonths, current, monthlySaving float64) EmergencyFundResult {
	monthlyExpenses = mathutil.NonNegative(monthlyExpenses)
	current = mathutil.NonNegative(current)
	monthlySaving = mathutil.NonNegative(monthlySaving)

	target := monthlyExpenses * mathutil.NonNegative(targetMonths)
	result := EmergencyFundResult{
		Target:         target,
		Shortfall:      mathutil.NonNegative(target - current),
		Surplus:        mathutil.NonNegative(current - target),
		CoverageMonths: mathutil.SafeDivide(current, monthlyExpenses),
	}

	switch {
	case mathutil.IsZero(result.Shortfall):
		result.MonthsToTarget = 0
	default:
		months := math.Ceil(mathutil.SafeDivide(result.Shortfall, monthlySaving))
		if monthlySaving == 0 || months > constants.MaxPayoffMonths {
			result.MonthsToTarget = -1
		} else {
			result.MonthsToTarget = int(months)
		}
	}
	return result
}
