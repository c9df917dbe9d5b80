package loans

import (
	"github.com/iwvelando/finance-calculators/pkg/datetime"
)

// YearTotal aggregates a schedule over one calendar year.
type YearTotal struct {
	Year           int
	Paid           float64
	Principal      float64
	Interest       float64
	Extra          float64
	ClosingBalance float64
}

// YearlySummary groups schedule rows by calendar year, in schedule order.
func YearlySummary(schedule []Payment) ([]YearTotal, error) {
	var totals []YearTotal
	for _, payment := range schedule {
		year, err := datetime.Year(payment.Date)
		if err != nil {
			return nil, err
		}
		if len(totals) == 0 || totals[len(totals)-1].Year != year {
			totals = append(totals, YearTotal{Year: year})
		}
		current := &totals[len(totals)-1]
		current.Paid += payment.Payment
		current.Principal += payment.Principal
		current.Interest += payment.Interest
		current.Extra += payment.Extra
		current.ClosingBalance = payment.RemainingPrincipal
	}
	return totals, nil
}

// OverpaymentResult compares a loan with and without overpayments.
type OverpaymentResult struct {
	MonthlyPayment   float64
	BaselineMonths   int
	NewTermMonths    int
	MonthsSaved      int
	BaselineInterest float64
	NewInterest      float64
	InterestSaved    float64
	Schedule         []Payment
}

// Overpayment runs the schedule twice, once as contracted and once with the
// overpayments in loan, and reports the difference.
func (g *AmortizationScheduleGenerator) Overpayment(loan LoanConfig) (OverpaymentResult, error) {
	baselineLoan := loan
	baselineLoan.MonthlyOverpayment = 0
	baselineLoan.LumpSum = 0

	baseline, err := g.GenerateSchedule(baselineLoan)
	if err != nil {
		return OverpaymentResult{}, err
	}
	overpaid, err := g.GenerateSchedule(loan)
	if err != nil {
		return OverpaymentResult{}, err
	}

	_, baselineInterest := ScheduleTotals(baseline)
	_, newInterest := ScheduleTotals(overpaid)
	return OverpaymentResult{
		MonthlyPayment:   CalculateMonthlyPayment(loan.Principal, loan.DownPayment, loan.InterestRate, loan.Term),
		BaselineMonths:   len(baseline),
		NewTermMonths:    len(overpaid),
		MonthsSaved:      len(baseline) - len(overpaid),
		BaselineInterest: baselineInterest,
		NewInterest:      newInterest,
		InterestSaved:    baselineInterest - newInterest,
		Schedule:         overpaid,
	}, nil
}
