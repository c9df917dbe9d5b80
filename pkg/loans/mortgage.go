package loans

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// DefaultIncomeMultiple is the lending multiple used when none is given.
const DefaultIncomeMultiple = 4.5

// MortgageResult holds the repayment figures for a property purchase.
type MortgageResult struct {
	LoanAmount          float64
	LoanToValue         float64 // percent
	MonthlyPayment      float64
	InterestOnlyPayment float64
	TotalPaid           float64
	TotalInterest       float64
}

// Mortgage computes a repayment mortgage on price less deposit. A deposit at or
// above the price leaves nothing to borrow.
func Mortgage(price, deposit, annualInterestRate float64, years int) MortgageResult {
	price = mathutil.NonNegative(price)
	deposit = mathutil.Clamp(deposit, 0, price)
	rate := mathutil.NonNegative(annualInterestRate)
	if years > constants.MaxTermYears {
		years = constants.MaxTermYears
	}

	loanAmount := price - deposit
	result := MortgageResult{
		LoanAmount:  loanAmount,
		LoanToValue: mathutil.CalculatePercentage(loanAmount, price),
	}
	if years <= 0 || loanAmount == 0 {
		return result
	}

	summary := Summarize(loanAmount, rate, years*constants.MonthsPerYear)
	result.MonthlyPayment = summary.MonthlyPayment
	result.TotalPaid = summary.TotalPaid
	result.TotalInterest = summary.TotalInterest
	result.InterestOnlyPayment = CalculateInterestPayment(loanAmount, rate)
	return result
}

// AffordabilityResult holds the borrowing estimate for a household.
type AffordabilityResult struct {
	MaxBorrowing     float64
	MaxPropertyPrice float64
	Multiple         float64
}

// Affordability estimates borrowing as a multiple of annual income after
// annualised monthly commitments.
func Affordability(income, secondIncome, multiple, deposit, monthlyCommitments float64) AffordabilityResult {
	if multiple <= 0 {
		multiple = DefaultIncomeMultiple
	}
	household := mathutil.NonNegative(income) + mathutil.NonNegative(secondIncome)
	assessable := mathutil.NonNegative(household - mathutil.NonNegative(monthlyCommitments)*constants.MonthsPerYear)
	borrowing := assessable * multiple
	return AffordabilityResult{
		MaxBorrowing:     borrowing,
		MaxPropertyPrice: borrowing + mathutil.NonNegative(deposit),
		Multiple:         multiple,
	}
}
