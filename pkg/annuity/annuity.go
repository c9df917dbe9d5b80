// Package annuity computes income payouts from a fixed pot.
package annuity

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// DefaultPaymentsPerYear is used when no payment frequency is given.
const DefaultPaymentsPerYear = constants.MonthsPerYear

// Input holds the parameters of an annuity purchase.
type Input struct {
	Pot             float64
	AnnualRate      float64 // percent
	Years           float64
	PaymentsPerYear int
	Escalation      float64 // percent increase in income per year
}

// Result holds the payout of an annuity. A zero Result means there is nothing
// to pay out.
type Result struct {
	Payment       float64 // first payment
	AnnualIncome  float64 // first year of payments
	TotalPaid     float64
	TotalInterest float64
	Payments      int
}

func paymentCount(years float64, paymentsPerYear int) int {
	years = mathutil.Clamp(years, 0, constants.MaxTermYears)
	return int(math.Round(years * float64(paymentsPerYear)))
}

func normalizeFrequency(paymentsPerYear int) int {
	if paymentsPerYear <= 0 {
		return DefaultPaymentsPerYear
	}
	return paymentsPerYear
}

// geometricSum returns the sum of count terms first*(1+g)^k for k = 0..count-1.
func geometricSum(first, g float64, count int) float64 {
	if g == 0 {
		return first * float64(count)
	}
	return first * (math.Pow(1+g, float64(count)) - 1) / g
}

// Payout computes the payment a pot supports over the given term. Level
// annuities use the standard amortization-payment formula; escalating ones use
// the growing annuity formula with the annual escalation converted to an
// equivalent per-payment growth rate.
func Payout(in Input) Result {
	pot := mathutil.NonNegative(in.Pot)
	ppy := normalizeFrequency(in.PaymentsPerYear)
	n := paymentCount(in.Years, ppy)
	if pot == 0 || n <= 0 {
		return Result{}
	}

	r := mathutil.PeriodicRate(mathutil.NonNegative(in.AnnualRate), ppy)
	g := 0.0
	if escalation := mathutil.NonNegative(in.Escalation); escalation > 0 {
		g = math.Pow(1+escalation/constants.PercentageMultiplier, 1/float64(ppy)) - 1
	}

	var payment float64
	switch {
	case g == 0 && r == 0:
		payment = pot / float64(n)
	case g == 0:
		payment = pot * r / (1 - math.Pow(1+r, -float64(n)))
	case math.Abs(r-g) < 1e-12:
		payment = pot * (1 + r) / float64(n)
	default:
		payment = pot * (r - g) / (1 - math.Pow((1+g)/(1+r), float64(n)))
	}

	firstYear := ppy
	if n < firstYear {
		firstYear = n
	}
	totalPaid := geometricSum(payment, g, n)
	return Result{
		Payment:       payment,
		AnnualIncome:  geometricSum(payment, g, firstYear),
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid - pot,
		Payments:      n,
	}
}

// PotRequired returns the pot needed to fund a level payment over the term.
func PotRequired(payment, annualRate, years float64, paymentsPerYear int) float64 {
	payment = mathutil.NonNegative(payment)
	ppy := normalizeFrequency(paymentsPerYear)
	n := paymentCount(years, ppy)
	if payment == 0 || n <= 0 {
		return 0
	}
	r := mathutil.PeriodicRate(mathutil.NonNegative(annualRate), ppy)
	if r == 0 {
		return payment * float64(n)
	}
	return payment * (1 - math.Pow(1+r, -float64(n))) / r
}
