package calculator

import (
	"strconv"

	"github.com/iwvelando/finance-calculators/pkg/annuity"
	"github.com/iwvelando/finance-calculators/pkg/interest"
	"github.com/iwvelando/finance-calculators/pkg/retirement"
)

func savingsCalculators() []Calculator {
	return []Calculator{
		{
			Name:        "annuity",
			Title:       "Annuity income",
			Category:    CategorySavings,
			Description: "Income a pension pot buys over a fixed term, level or escalating.",
			Fields: []Field{
				currency("pot", "Pension pot", "150000"),
				percent("rate", "Annuity rate", "5"),
				number("years", "Term in years", "20", 100),
				choice("frequency", "Payment frequency", "monthly", frequencyOptions...),
				percent("escalation", "Yearly income increase", "0"),
			},
			Compute: computeAnnuity,
		},
		{
			Name:        "annuity-pot",
			Title:       "Pot needed for an income",
			Category:    CategorySavings,
			Description: "Pension pot required to pay a level income for a fixed term.",
			Fields: []Field{
				currency("payment", "Income per payment", "1000"),
				percent("rate", "Annuity rate", "5"),
				number("years", "Term in years", "20", 100),
				choice("frequency", "Payment frequency", "monthly", frequencyOptions...),
			},
			Compute: computeAnnuityPot,
		},
		{
			Name:        "compound-interest",
			Title:       "Compound interest",
			Category:    CategorySavings,
			Description: "Growth of a lump sum plus regular monthly contributions.",
			Fields: []Field{
				currency("principal", "Starting balance", "10000"),
				currency("monthlyContribution", "Monthly contribution", "200"),
				percent("rate", "Annual interest rate", "5"),
				integer("years", "Years", "10", 100),
				choice("compounding", "Compounding", "monthly", compoundingOptions...),
			},
			Compute: computeCompoundInterest,
		},
		{
			Name:        "inflation",
			Title:       "Inflation",
			Category:    CategorySavings,
			Description: "Future cost of today's spending and the real value of today's money.",
			Fields: []Field{
				currency("amount", "Amount today", "1000"),
				percent("rate", "Inflation rate", "3"),
				number("years", "Years", "10", 100),
			},
			Compute: computeInflation,
		},
		{
			Name:        "apr-to-aer",
			Title:       "APR to AER",
			Category:    CategorySavings,
			Description: "Annual equivalent rate of a nominal rate compounded during the year.",
			Fields: []Field{
				percent("apr", "Nominal annual rate", "5"),
				choice("compounding", "Compounding", "monthly", compoundingOptions...),
			},
			Compute: computeAPRToAER,
		},
		{
			Name:        "savings-goal",
			Title:       "Savings goal",
			Category:    CategorySavings,
			Description: "How long regular deposits take to reach a target, or the deposit needed by a deadline.",
			Fields: []Field{
				currency("target", "Target", "10000"),
				currency("current", "Current savings", "1000"),
				currency("monthlyDeposit", "Monthly deposit", "250"),
				percent("rate", "Annual interest rate", "4"),
				integer("months", "Deadline in months (optional)", "0", 1200),
			},
			Compute: computeSavingsGoal,
		},
		{
			Name:        "retirement",
			Title:       "Retirement projection",
			Category:    CategorySavings,
			Description: "Pension pot at retirement and the income it can provide.",
			Fields: []Field{
				integer("currentAge", "Current age", "30", 100),
				integer("retirementAge", "Retirement age", "67", 100),
				currency("currentPot", "Current pot", "10000"),
				currency("monthlyContribution", "Your monthly contribution", "300"),
				currency("employerContribution", "Employer monthly contribution", "150"),
				percent("growthRate", "Annual growth", "5"),
				percent("inflation", "Inflation", "2.5"),
				percent("annuityRate", "Annuity rate", "5"),
				number("retirementYears", "Years of retirement income", "25", 60),
				percent("withdrawalRate", "Drawdown rate", "4"),
			},
			Compute: computeRetirement,
		},
	}
}

func computeAnnuity(in Inputs) (Result, error) {
	frequency := in.String("frequency")
	payout := annuity.Payout(annuity.Input{
		Pot:             in.Float("pot"),
		AnnualRate:      in.Float("rate"),
		Years:           in.Float("years"),
		PaymentsPerYear: frequencies[frequency],
		Escalation:      in.Float("escalation"),
	})

	var r Result
	r.Add("payment", "Payment ("+frequency+")", KindCurrency, payout.Payment)
	r.Add("annualIncome", "First year income", KindCurrency, payout.AnnualIncome)
	r.Add("totalPaid", "Total paid", KindCurrency, payout.TotalPaid)
	r.Add("totalInterest", "Total interest", KindCurrency, payout.TotalInterest)
	r.Add("payments", "Number of payments", KindInteger, float64(payout.Payments))
	if escalation := in.Float("escalation"); escalation > 0 && payout.Payments > 0 {
		r.Notef("Income rises by %.2f%% each year; the payment shown is the first.", escalation)
	}
	return r, nil
}

func computeAnnuityPot(in Inputs) (Result, error) {
	pot := annuity.PotRequired(in.Float("payment"), in.Float("rate"), in.Float("years"), frequencies[in.String("frequency")])
	var r Result
	r.Add("pot", "Pot required", KindCurrency, pot)
	return r, nil
}

func computeCompoundInterest(in Inputs) (Result, error) {
	res := interest.FutureValue(interest.SavingsInput{
		Principal:           in.Float("principal"),
		MonthlyContribution: in.Float("monthlyContribution"),
		AnnualRate:          in.Float("rate"),
		Years:               in.Int("years"),
		CompoundsPerYear:    frequencies[in.String("compounding")],
	})

	var r Result
	r.Add("futureValue", "Future value", KindCurrency, res.FutureValue)
	r.Add("totalContributions", "Total paid in", KindCurrency, res.TotalContributions)
	r.Add("interestEarned", "Interest earned", KindCurrency, res.InterestEarned)
	r.Add("aer", "Effective annual rate", KindPercent,
		interest.EffectiveAnnualRate(in.Float("rate"), frequencies[in.String("compounding")]))

	table := NewTable("Year by year", "Year",
		Column{Label: "Balance", Kind: KindCurrency},
		Column{Label: "Paid in", Kind: KindCurrency},
		Column{Label: "Interest", Kind: KindCurrency},
	)
	for _, year := range res.Yearly {
		table.AddRow(strconv.Itoa(year.Year), year.Balance, year.Contributions, year.Interest)
	}
	if len(table.Rows) > 0 {
		r.Table = table
	}
	return r, nil
}

func computeInflation(in Inputs) (Result, error) {
	res := interest.Inflation(in.Float("amount"), in.Float("rate"), in.Float("years"))
	var r Result
	r.Add("futureCost", "Future cost", KindCurrency, res.FutureCost)
	r.Add("realValue", "Real value of today's amount", KindCurrency, res.RealValue)
	r.Add("purchasingPowerLost", "Purchasing power lost", KindPercent, res.PurchasingPowerLost)
	return r, nil
}

func computeAPRToAER(in Inputs) (Result, error) {
	var r Result
	r.Add("aer", "AER", KindPercent, interest.EffectiveAnnualRate(in.Float("apr"), frequencies[in.String("compounding")]))
	return r, nil
}

func computeSavingsGoal(in Inputs) (Result, error) {
	target, current, rate := in.Float("target"), in.Float("current"), in.Float("rate")
	goal := interest.SavingsGoal(target, current, in.Float("monthlyDeposit"), rate)

	var r Result
	r.AddFlag("reachable", "Goal reachable", goal.Reachable)
	r.Add("months", "Months to goal", KindInteger, float64(goal.Months))
	r.Add("totalDeposited", "Total deposited", KindCurrency, goal.TotalDeposited)
	r.Add("interestEarned", "Interest earned", KindCurrency, goal.InterestEarned)
	r.Add("finalBalance", "Final balance", KindCurrency, goal.FinalBalance)
	if !goal.Reachable {
		r.Notef("The target is not reached within %d months at this deposit.", goal.Months)
	}
	if months := in.Int("months"); months > 0 {
		r.Add("requiredMonthlyDeposit", "Monthly deposit to hit the deadline", KindCurrency,
			interest.RequiredMonthlyDeposit(target, current, rate, months))
	}
	return r, nil
}

func computeRetirement(in Inputs) (Result, error) {
	res := retirement.Project(retirement.Input{
		CurrentAge:           in.Int("currentAge"),
		RetirementAge:        in.Int("retirementAge"),
		CurrentPot:           in.Float("currentPot"),
		MonthlyContribution:  in.Float("monthlyContribution"),
		EmployerContribution: in.Float("employerContribution"),
		GrowthRate:           in.Float("growthRate"),
		Inflation:            in.Float("inflation"),
		AnnuityRate:          in.Float("annuityRate"),
		RetirementYears:      in.Float("retirementYears"),
		WithdrawalRate:       in.Float("withdrawalRate"),
	})

	var r Result
	r.Add("pot", "Pot at retirement", KindCurrency, res.Pot)
	r.Add("realPot", "Pot in today's money", KindCurrency, res.RealPot)
	r.Add("contributions", "Total contributions", KindCurrency, res.Contributions)
	r.Add("growth", "Investment growth", KindCurrency, res.Growth)
	r.Add("annuityIncome", "Annuity income per year", KindCurrency, res.AnnuityIncome)
	r.Add("annuityMonthly", "Annuity income per month", KindCurrency, res.AnnuityMonthly)
	r.Add("drawdownIncome", "Drawdown income per year", KindCurrency, res.DrawdownIncome)
	if res.Years == 0 {
		r.Note("Retirement age is not after the current age, so the pot does not grow.")
	}

	table := NewTable("Pot by age", "Age",
		Column{Label: "Contributions", Kind: KindCurrency},
		Column{Label: "Growth", Kind: KindCurrency},
		Column{Label: "Pot", Kind: KindCurrency},
	)
	for _, year := range res.Yearly {
		table.AddRow(strconv.Itoa(year.Age), year.Contributions, year.Growth, year.Pot)
	}
	if len(table.Rows) > 0 {
		r.Table = table
	}
	return r, nil
}
