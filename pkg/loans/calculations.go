// Package loans provides loan, mortgage and amortization schedule calculations.
package loans

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given payment.
type Payment struct {
	Date               string
	Payment            float64
	Principal          float64
	Interest           float64
	Extra              float64
	RemainingPrincipal float64
}

// Summary holds the headline figures for a fully amortizing loan.
type Summary struct {
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
	Months         int
}

// LoanConfig represents loan configuration parameters
type LoanConfig struct {
	Name               string
	StartDate          string // defaults to the current month
	Principal          float64
	DownPayment        float64
	InterestRate       float64 // annual percent
	Term               int     // months
	MonthlyOverpayment float64
	LumpSum            float64
	LumpSumDate        string // defaults to StartDate
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, downPayment, annualInterestRate float64, termMonths int) float64 {
	financed := mathutil.NonNegative(principal - downPayment)
	if termMonths <= 0 || financed == 0 {
		return 0
	}

	annualInterestRate = mathutil.NonNegative(annualInterestRate)
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return financed / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return financed * periodicInterestRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Summarize returns the payment and totals for a loan with no overpayments.
func Summarize(principal, annualInterestRate float64, termMonths int) Summary {
	payment := CalculateMonthlyPayment(principal, 0, annualInterestRate, termMonths)
	if payment == 0 {
		return Summary{}
	}
	totalPaid := payment * float64(termMonths)
	return Summary{
		MonthlyPayment: payment,
		TotalPaid:      totalPaid,
		TotalInterest:  totalPaid - mathutil.NonNegative(principal),
		Months:         termMonths,
	}
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger, now: time.Now}
}

// GenerateSchedule creates the month-by-month schedule for a loan. The schedule
// ends early once overpayments clear the balance, and the final payment absorbs
// any rounding left over from the level payment.
func (g *AmortizationScheduleGenerator) GenerateSchedule(loan LoanConfig) ([]Payment, error) {
	financed := mathutil.NonNegative(loan.Principal - loan.DownPayment)
	if loan.Term <= 0 || financed == 0 {
		return nil, nil
	}
	if loan.Term > constants.MaxPayoffMonths {
		loan.Term = constants.MaxPayoffMonths
	}

	startDate := loan.StartDate
	if startDate == "" {
		startDate = datetime.CurrentMonth(g.now())
	}
	if !datetime.IsValidMonth(startDate) {
		return nil, fmt.Errorf("invalid start date %q for loan %s: expected %s", startDate, loan.Name, datetime.DateTimeLayout)
	}
	lumpSumDate := loan.LumpSumDate
	if lumpSumDate == "" {
		lumpSumDate = startDate
	}
	if before, err := datetime.DateBeforeDate(lumpSumDate, startDate); loan.LumpSum > 0 && (err != nil || before) {
		g.logger.Debug("Ignoring lump sum dated outside the schedule",
			zap.String("op", "loans.GenerateSchedule"),
			zap.String("loan", loan.Name),
			zap.String("start", startDate),
			zap.String("lumpSumDate", lumpSumDate))
		loan.LumpSum = 0
	}

	rate := mathutil.NonNegative(loan.InterestRate)
	monthlyPayment := CalculateMonthlyPayment(loan.Principal, loan.DownPayment, rate, loan.Term)
	schedule := make([]Payment, 0, loan.Term)
	remaining := financed
	currentMonth := startDate

	for month := 1; month <= loan.Term; month++ {
		var current Payment
		current.Date = currentMonth
		current.Interest = CalculateInterestPayment(remaining, rate)
		current.Principal = monthlyPayment - current.Interest

		if month == loan.Term || mathutil.Round(remaining-current.Principal) <= 0 {
			// We will get machine error otherwise so just settle the balance.
			current.Principal = remaining
		} else {
			requested := mathutil.NonNegative(loan.MonthlyOverpayment)
			if currentMonth == lumpSumDate {
				requested += mathutil.NonNegative(loan.LumpSum)
			}
			current.Extra = g.capExtraPrincipal(loan.Name, currentMonth, requested, remaining-current.Principal)
		}

		current.Payment = current.Principal + current.Interest + current.Extra
		remaining -= current.Principal + current.Extra
		if mathutil.Round(remaining) <= 0 {
			remaining = 0
		}
		current.RemainingPrincipal = remaining
		schedule = append(schedule, current)

		if remaining == 0 {
			if month < loan.Term {
				g.logger.Debug(fmt.Sprintf("%s: loan %s cleared %d months early", currentMonth, loan.Name, loan.Term-month),
					zap.String("op", "loans.GenerateSchedule"),
				)
			}
			break
		}

		next, err := datetime.OffsetDate(currentMonth, datetime.DateTimeLayout, 1)
		if err != nil {
			return nil, err
		}
		currentMonth = next
	}

	return schedule, nil
}

// capExtraPrincipal prevents an overpayment from taking the balance below zero.
func (g *AmortizationScheduleGenerator) capExtraPrincipal(loanName, date string, requested, balanceAfterScheduled float64) float64 {
	if requested <= 0 {
		return 0
	}
	if requested > balanceAfterScheduled {
		g.logger.Debug("Capping extra principal payment to prevent overpayment",
			zap.String("op", "loans.capExtraPrincipal"),
			zap.String("date", date),
			zap.String("loan", loanName),
			zap.Float64("requested", requested),
			zap.Float64("capped_to_balance", balanceAfterScheduled))
		return mathutil.NonNegative(balanceAfterScheduled)
	}
	return requested
}

// ScheduleTotals sums the interest and payments of a schedule.
func ScheduleTotals(schedule []Payment) (totalPaid, totalInterest float64) {
	for _, payment := range schedule {
		totalPaid += payment.Payment
		totalInterest += payment.Interest
	}
	return totalPaid, totalInterest
}
