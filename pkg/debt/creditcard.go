// Package debt models revolving credit repayment.
package debt

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/loans"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Input describes a credit card balance and how it is repaid. The monthly
// payment is the largest of FixedPayment, MinimumPercent of the balance and
// MinimumFloor, never more than what is owed.
type Input struct {
	Balance        float64
	APR            float64 // percent
	FixedPayment   float64
	MinimumPercent float64
	MinimumFloor   float64
}

// Result holds the outcome of CreditCardPayoff.
type Result struct {
	Months        int
	TotalInterest float64
	TotalPaid     float64
	FirstPayment  float64
	PaidOff       bool
}

func monthlyPayment(in Input, balance, interest float64) float64 {
	payment := max(in.FixedPayment, mathutil.ApplyPercentage(balance, in.MinimumPercent))
	payment = max(payment, in.MinimumFloor)
	return min(payment, balance+interest)
}

// CreditCardPayoff repays the balance month by month until it clears or
// constants.MaxPayoffMonths is reached. When the first payment does not cover
// the first month's interest the balance can never clear and PaidOff is false.
func CreditCardPayoff(in Input) Result {
	in.Balance = mathutil.NonNegative(in.Balance)
	in.APR = mathutil.NonNegative(in.APR)
	in.FixedPayment = mathutil.NonNegative(in.FixedPayment)
	in.MinimumPercent = mathutil.Clamp(in.MinimumPercent, 0, constants.PercentageMultiplier)
	in.MinimumFloor = mathutil.NonNegative(in.MinimumFloor)

	result := Result{}
	if in.Balance == 0 {
		result.PaidOff = true
		return result
	}

	rate := mathutil.PeriodicRate(in.APR, constants.MonthsPerYear)
	balance := in.Balance
	for month := 1; month <= constants.MaxPayoffMonths; month++ {
		interest := balance * rate
		payment := monthlyPayment(in, balance, interest)
		if month == 1 {
			result.FirstPayment = payment
			if payment <= interest {
				return result
			}
		}

		balance += interest - payment
		result.TotalInterest += interest
		result.TotalPaid += payment
		result.Months = month
		if mathutil.Round(balance) <= 0 {
			result.PaidOff = true
			break
		}
	}
	return result
}

// RequiredPayment returns the fixed monthly payment that clears the balance in
// the given number of months.
func RequiredPayment(balance, apr float64, months int) float64 {
	return loans.CalculateMonthlyPayment(balance, 0, apr, months)
}
