package calculator

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
	"github.com/iwvelando/finance-calculators/pkg/debt"
	"github.com/iwvelando/finance-calculators/pkg/loans"
)

const startHelp = "First payment month as YYYY-MM; blank means this month."

func borrowingCalculators(logger *zap.Logger) []Calculator {
	schedules := loans.NewAmortizationScheduleGenerator(logger)
	return []Calculator{
		{
			Name:        "loan",
			Title:       "Loan repayments",
			Category:    CategoryBorrowing,
			Description: "Monthly repayment, total cost and yearly schedule of a fixed-rate loan.",
			Fields: []Field{
				currency("amount", "Loan amount", "10000"),
				currency("downPayment", "Down payment", "0"),
				percent("rate", "Annual interest rate", "6"),
				integer("term", "Term in months", "60", constants.MaxPayoffMonths),
				text("start", "Start month", "", startHelp),
			},
			Compute: func(in Inputs) (Result, error) { return computeLoan(schedules, in) },
		},
		{
			Name:        "loan-overpayment",
			Title:       "Loan overpayment",
			Category:    CategoryBorrowing,
			Description: "Time and interest saved by regular or one-off overpayments.",
			Fields: []Field{
				currency("amount", "Loan amount", "200000"),
				percent("rate", "Annual interest rate", "5"),
				integer("years", "Term in years", "25", constants.MaxTermYears),
				currency("monthlyOverpayment", "Monthly overpayment", "100"),
				currency("lumpSum", "One-off overpayment", "0"),
				integer("lumpSumMonth", "Month of one-off overpayment", "1", constants.MaxPayoffMonths),
				text("start", "Start month", "", startHelp),
			},
			Compute: func(in Inputs) (Result, error) { return computeLoanOverpayment(schedules, in) },
		},
		{
			Name:        "mortgage",
			Title:       "Mortgage repayments",
			Category:    CategoryBorrowing,
			Description: "Repayment and interest-only cost of a mortgage.",
			Fields: []Field{
				currency("price", "Property price", "300000"),
				currency("deposit", "Deposit", "30000"),
				percent("rate", "Interest rate", "4.5"),
				integer("years", "Term in years", "25", constants.MaxTermYears),
			},
			Compute: computeMortgage,
		},
		{
			Name:        "mortgage-affordability",
			Title:       "Mortgage affordability",
			Category:    CategoryBorrowing,
			Description: "Typical maximum borrowing as a multiple of household income.",
			Fields: []Field{
				currency("income", "Annual income", "50000"),
				currency("secondIncome", "Second applicant income", "0"),
				number("multiple", "Income multiple", "4.5", 10),
				currency("deposit", "Deposit", "30000"),
				currency("monthlyCommitments", "Monthly credit commitments", "0"),
			},
			Compute: computeAffordability,
		},
		{
			Name:        "credit-card-payoff",
			Title:       "Credit card payoff",
			Category:    CategoryBorrowing,
			Description: "How long a credit card balance takes to clear and what it costs.",
			Fields: []Field{
				currency("balance", "Balance", "3000"),
				percent("apr", "APR", "19.9"),
				currency("fixedPayment", "Fixed monthly payment", "100"),
				percent("minimumPercent", "Minimum payment percent", "0"),
				currency("minimumFloor", "Minimum payment floor", "0"),
				integer("targetMonths", "Clear within months (optional)", "0", constants.MaxPayoffMonths),
			},
			Compute: computeCreditCard,
		},
	}
}

// startMonth returns the start input, or the current month with a note when it
// is blank, malformed or would run a schedule of months past year 9999.
func startMonth(in Inputs, r *Result, months int) string {
	start := in.String("start")
	if start == "" {
		return datetime.CurrentMonth(time.Now())
	}
	if !datetime.IsValidMonth(start) {
		r.Notef("Start month %q is not YYYY-MM; using the current month.", start)
		return datetime.CurrentMonth(time.Now())
	}
	if end, err := datetime.OffsetDate(start, datetime.DateTimeLayout, months); err != nil || !datetime.IsValidMonth(end) {
		r.Notef("Start month %q runs the schedule past 9999-12; using the current month.", start)
		return datetime.CurrentMonth(time.Now())
	}
	return start
}

func yearlyTable(schedule []loans.Payment) (*Table, error) {
	years, err := loans.YearlySummary(schedule)
	if err != nil || len(years) == 0 {
		return nil, err
	}
	table := NewTable("Yearly schedule", "Year",
		Column{Label: "Paid", Kind: KindCurrency},
		Column{Label: "Principal", Kind: KindCurrency},
		Column{Label: "Interest", Kind: KindCurrency},
		Column{Label: "Overpaid", Kind: KindCurrency},
		Column{Label: "Balance", Kind: KindCurrency},
	)
	for _, y := range years {
		table.AddRow(strconv.Itoa(y.Year), y.Paid, y.Principal, y.Interest, y.Extra, y.ClosingBalance)
	}
	return table, nil
}

func computeLoan(g *loans.AmortizationScheduleGenerator, in Inputs) (Result, error) {
	var r Result
	loan := loans.LoanConfig{
		Name:         "loan",
		StartDate:    startMonth(in, &r, in.Int("term")),
		Principal:    in.Float("amount"),
		DownPayment:  in.Float("downPayment"),
		InterestRate: in.Float("rate"),
		Term:         in.Int("term"),
	}
	schedule, err := g.GenerateSchedule(loan)
	if err != nil {
		return Result{}, err
	}
	totalPaid, totalInterest := loans.ScheduleTotals(schedule)

	r.Add("monthlyPayment", "Monthly payment", KindCurrency,
		loans.CalculateMonthlyPayment(loan.Principal, loan.DownPayment, loan.InterestRate, loan.Term))
	r.Add("totalPaid", "Total paid", KindCurrency, totalPaid)
	r.Add("totalInterest", "Total interest", KindCurrency, totalInterest)
	r.Add("months", "Payments", KindInteger, float64(len(schedule)))
	if r.Table, err = yearlyTable(schedule); err != nil {
		return Result{}, err
	}
	return r, nil
}

func computeLoanOverpayment(g *loans.AmortizationScheduleGenerator, in Inputs) (Result, error) {
	var r Result
	term := in.Int("years") * constants.MonthsPerYear
	lumpSumMonth := in.Int("lumpSumMonth")
	if lumpSumMonth < 1 {
		lumpSumMonth = 1
	}
	start := startMonth(in, &r, max(term, lumpSumMonth))
	lumpSumDate, err := datetime.OffsetDate(start, datetime.DateTimeLayout, lumpSumMonth-1)
	if err != nil {
		return Result{}, err
	}

	res, err := g.Overpayment(loans.LoanConfig{
		Name:               "overpayment",
		StartDate:          start,
		Principal:          in.Float("amount"),
		InterestRate:       in.Float("rate"),
		Term:               term,
		MonthlyOverpayment: in.Float("monthlyOverpayment"),
		LumpSum:            in.Float("lumpSum"),
		LumpSumDate:        lumpSumDate,
	})
	if err != nil {
		return Result{}, err
	}

	r.Add("monthlyPayment", "Contractual monthly payment", KindCurrency, res.MonthlyPayment)
	r.Add("baselineMonths", "Original term (months)", KindInteger, float64(res.BaselineMonths))
	r.Add("newTermMonths", "New term (months)", KindInteger, float64(res.NewTermMonths))
	r.Add("monthsSaved", "Months saved", KindInteger, float64(res.MonthsSaved))
	r.Add("baselineInterest", "Original interest", KindCurrency, res.BaselineInterest)
	r.Add("newInterest", "New interest", KindCurrency, res.NewInterest)
	r.Add("interestSaved", "Interest saved", KindCurrency, res.InterestSaved)
	if r.Table, err = yearlyTable(res.Schedule); err != nil {
		return Result{}, err
	}
	return r, nil
}

func computeMortgage(in Inputs) (Result, error) {
	res := loans.Mortgage(in.Float("price"), in.Float("deposit"), in.Float("rate"), in.Int("years"))
	var r Result
	r.Add("loanAmount", "Loan amount", KindCurrency, res.LoanAmount)
	r.Add("loanToValue", "Loan to value", KindPercent, res.LoanToValue)
	r.Add("monthlyPayment", "Monthly repayment", KindCurrency, res.MonthlyPayment)
	r.Add("interestOnlyPayment", "Interest-only payment", KindCurrency, res.InterestOnlyPayment)
	r.Add("totalPaid", "Total repaid", KindCurrency, res.TotalPaid)
	r.Add("totalInterest", "Total interest", KindCurrency, res.TotalInterest)
	if res.LoanToValue > 90 {
		r.Notef("A loan to value of %.1f%% limits the choice of lenders.", res.LoanToValue)
	}
	return r, nil
}

func computeAffordability(in Inputs) (Result, error) {
	res := loans.Affordability(in.Float("income"), in.Float("secondIncome"), in.Float("multiple"),
		in.Float("deposit"), in.Float("monthlyCommitments"))
	var r Result
	r.Add("maxBorrowing", "Maximum borrowing", KindCurrency, res.MaxBorrowing)
	r.Add("maxPropertyPrice", "Maximum property price", KindCurrency, res.MaxPropertyPrice)
	r.Add("multiple", "Income multiple", KindNumber, res.Multiple)
	return r, nil
}

func computeCreditCard(in Inputs) (Result, error) {
	res := debt.CreditCardPayoff(debt.Input{
		Balance:        in.Float("balance"),
		APR:            in.Float("apr"),
		FixedPayment:   in.Float("fixedPayment"),
		MinimumPercent: in.Float("minimumPercent"),
		MinimumFloor:   in.Float("minimumFloor"),
	})

	var r Result
	r.AddFlag("paidOff", "Paid off", res.PaidOff)
	r.Add("months", "Months to clear", KindInteger, float64(res.Months))
	r.Add("totalInterest", "Total interest", KindCurrency, res.TotalInterest)
	r.Add("totalPaid", "Total paid", KindCurrency, res.TotalPaid)
	r.Add("firstPayment", "First payment", KindCurrency, res.FirstPayment)
	switch {
	case !res.PaidOff && res.Months == 0:
		r.Note("The first payment does not cover the interest, so the balance never clears.")
	case !res.PaidOff:
		r.Notef("The balance is still outstanding after %d months.", res.Months)
	}
	if months := in.Int("targetMonths"); months > 0 {
		r.Add("requiredPayment", "Payment to clear in time", KindCurrency,
			debt.RequiredPayment(in.Float("balance"), in.Float("apr"), months))
	}
	return r, nil
}
