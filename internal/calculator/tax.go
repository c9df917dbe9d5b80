package calculator

import (
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/salary"
	"github.com/iwvelando/finance-calculators/pkg/tax"
)

func taxCalculators(ty tax.TaxYear) []Calculator {
	plans := ty.PlanNames()
	defaultPlan := tax.PlanTwo
	if _, ok := ty.Plan(defaultPlan); !ok && len(plans) > 0 {
		defaultPlan = plans[0]
	}
	vatRate := strconv.FormatFloat(ty.VATRate, 'f', -1, 64)

	return []Calculator{
		{
			Name:        "income-tax",
			Title:       "Income tax",
			Category:    CategoryTax,
			Description: "Income tax by band for the " + ty.Name + " tax year.",
			Fields: []Field{
				currency("income", "Annual income", "50000"),
			},
			Compute: func(in Inputs) (Result, error) { return computeIncomeTax(ty, in) },
		},
		{
			Name:        "national-insurance",
			Title:       "National Insurance",
			Category:    CategoryTax,
			Description: "Employee Class 1 National Insurance for the " + ty.Name + " tax year.",
			Fields: []Field{
				currency("earnings", "Annual earnings", "50000"),
			},
			Compute: func(in Inputs) (Result, error) { return computeNationalInsurance(ty, in) },
		},
		{
			Name:        "capital-gains-tax",
			Title:       "Capital gains tax",
			Category:    CategoryTax,
			Description: "Tax on gains after losses and the annual exempt amount.",
			Fields: []Field{
				currency("gains", "Total gains", "20000"),
				currency("income", "Annual taxable income", "40000"),
				currency("losses", "Allowable losses", "0"),
			},
			Compute: func(in Inputs) (Result, error) { return computeCapitalGains(ty, in) },
		},
		{
			Name:        "student-loan",
			Title:       "Student loan repayments",
			Category:    CategoryTax,
			Description: "Student loan deductions from salary for each repayment plan.",
			Fields: []Field{
				currency("income", "Annual income", "35000"),
				choice("plan", "Repayment plan", defaultPlan, plans...),
			},
			Compute: func(in Inputs) (Result, error) { return computeStudentLoan(ty, in) },
		},
		{
			Name:        "student-loan-payoff",
			Title:       "Student loan payoff",
			Category:    CategoryTax,
			Description: "Whether a student loan clears before it is written off.",
			Fields: []Field{
				currency("balance", "Loan balance", "45000"),
				percent("rate", "Interest rate", "4.3"),
				currency("salary", "Current salary", "30000"),
				percent("salaryGrowth", "Yearly salary growth", "3"),
				choice("plan", "Repayment plan", defaultPlan, plans...),
			},
			Compute: func(in Inputs) (Result, error) { return computeStudentLoanPayoff(ty, in) },
		},
		{
			Name:        "vat",
			Title:       "VAT",
			Category:    CategoryTax,
			Description: "Add VAT to a net price or extract it from a gross one.",
			Fields: []Field{
				currency("amount", "Amount", "100"),
				percent("rate", "VAT rate", vatRate),
				choice("mode", "Amount is", "net", "net", "gross"),
			},
			Compute: computeVAT,
		},
		{
			Name:        "take-home-pay",
			Title:       "Take-home pay",
			Category:    CategoryTax,
			Description: "Net pay after pension, income tax, National Insurance and student loans.",
			Fields: []Field{
				currency("salary", "Annual salary", "35000"),
				percent("pensionPercent", "Pension contribution", "5"),
				choice("pensionMethod", "Pension method", salary.PensionSacrifice, salary.PensionSacrifice, salary.PensionNetPay),
				text("studentLoans", "Student loan plans", "", "Comma-separated, e.g. plan2,postgraduate."),
			},
			Compute: func(in Inputs) (Result, error) { return computeTakeHome(ty, in) },
		},
	}
}

func computeIncomeTax(ty tax.TaxYear, in Inputs) (Result, error) {
	res := ty.IncomeTax(in.Float("income"))

	var r Result
	r.Add("personalAllowance", "Personal allowance", KindCurrency, res.PersonalAllowance)
	r.Add("taxableIncome", "Taxable income", KindCurrency, res.TaxableIncome)
	r.Add("tax", "Income tax", KindCurrency, res.Tax)
	r.Add("monthlyTax", "Income tax per month", KindCurrency, res.Tax/constants.MonthsPerYear)
	r.Add("marginalRate", "Marginal rate", KindPercent, res.MarginalRate)
	r.Add("effectiveRate", "Effective rate", KindPercent, res.EffectiveRate)
	if res.GrossIncome > ty.TaperThreshold && res.PersonalAllowance < ty.PersonalAllowance {
		r.Notef("The personal allowance is reduced by £1 for every £2 of income above %.0f.", ty.TaperThreshold)
	}

	table := NewTable("Tax by band", "Band",
		Column{Label: "Rate", Kind: KindPercent},
		Column{Label: "Income", Kind: KindCurrency},
		Column{Label: "Tax", Kind: KindCurrency},
	)
	for _, band := range res.Bands {
		table.AddRow(band.Name, band.Rate, band.Income, band.Tax)
	}
	r.Table = table
	return r, nil
}

func computeNationalInsurance(ty tax.TaxYear, in Inputs) (Result, error) {
	res := ty.NIContributions(in.Float("earnings"))
	var r Result
	r.Add("total", "National Insurance per year", KindCurrency, res.Total)
	r.Add("monthly", "National Insurance per month", KindCurrency, res.Total/constants.MonthsPerYear)
	r.Add("mainRate", "At main rate", KindCurrency, res.MainContribution)
	r.Add("upperRate", "Above upper earnings limit", KindCurrency, res.UpperContribution)
	return r, nil
}

func computeCapitalGains(ty tax.TaxYear, in Inputs) (Result, error) {
	res := ty.CapitalGainsTax(in.Float("gains"), in.Float("income"), in.Float("losses"))
	var r Result
	r.Add("netGain", "Net gain", KindCurrency, res.NetGain)
	r.Add("exemptAmountUsed", "Annual exempt amount used", KindCurrency, res.ExemptAmountUsed)
	r.Add("taxableGain", "Taxable gain", KindCurrency, res.TaxableGain)
	r.Add("basicRateGain", "Taxed at basic rate", KindCurrency, res.BasicRateGain)
	r.Add("higherRateGain", "Taxed at higher rate", KindCurrency, res.HigherRateGain)
	r.Add("tax", "Capital gains tax", KindCurrency, res.Tax)
	r.Add("effectiveRate", "Effective rate", KindPercent, res.EffectiveRate)
	return r, nil
}

func computeStudentLoan(ty tax.TaxYear, in Inputs) (Result, error) {
	planName := in.String("plan")
	plan, _ := ty.Plan(planName)
	annual := ty.StudentLoanRepayment(in.Float("income"), planName)

	var r Result
	r.Add("annual", "Repayment per year", KindCurrency, annual)
	r.Add("monthly", "Repayment per month", KindCurrency, annual/constants.MonthsPerYear)
	r.Add("threshold", "Repayment threshold", KindCurrency, plan.Threshold)
	r.Add("rate", "Repayment rate", KindPercent, plan.Rate)
	if annual == 0 {
		r.Note("Income is at or below the repayment threshold.")
	}
	return r, nil
}

func computeStudentLoanPayoff(ty tax.TaxYear, in Inputs) (Result, error) {
	planName := in.String("plan")
	res := ty.StudentLoanPayoff(in.Float("balance"), in.Float("rate"), in.Float("salary"), in.Float("salaryGrowth"), planName)

	var r Result
	r.AddFlag("cleared", "Cleared before write-off", res.Cleared)
	r.Add("years", "Years repaying", KindInteger, float64(res.Years))
	r.Add("totalRepaid", "Total repaid", KindCurrency, res.TotalRepaid)
	r.Add("totalInterest", "Interest added", KindCurrency, res.TotalInterest)
	r.Add("writtenOff", "Written off", KindCurrency, res.WrittenOff)
	if plan, ok := ty.Plan(planName); ok && !res.Cleared {
		r.Notef("The remaining balance is written off after %d years on %s.", plan.WriteOffYears, planName)
	}
	return r, nil
}

func computeVAT(in Inputs) (Result, error) {
	amount, rate := in.Float("amount"), in.Float("rate")
	res := tax.AddVAT(amount, rate)
	if in.String("mode") == "gross" {
		res = tax.RemoveVAT(amount, rate)
	}
	var r Result
	r.Add("net", "Net", KindCurrency, res.Net)
	r.Add("vat", "VAT", KindCurrency, res.VAT)
	r.Add("gross", "Gross", KindCurrency, res.Gross)
	return r, nil
}

func computeTakeHome(ty tax.TaxYear, in Inputs) (Result, error) {
	var r Result
	var plans []string
	for _, plan := range in.List("studentLoans") {
		if _, ok := ty.Plan(plan); !ok {
			r.Notef("Unknown student loan plan %q ignored; known plans are %s.", plan, strings.Join(ty.PlanNames(), ", "))
			continue
		}
		plans = append(plans, plan)
	}

	res := salary.TakeHome(salary.TakeHomeInput{
		Gross:            in.Float("salary"),
		PensionPercent:   in.Float("pensionPercent"),
		PensionMethod:    in.String("pensionMethod"),
		StudentLoanPlans: plans,
		TaxYear:          ty,
	})

	r.Add("gross", "Gross salary", KindCurrency, res.Gross)
	r.Add("pension", "Pension", KindCurrency, res.Pension)
	r.Add("taxableIncome", "Taxable income", KindCurrency, res.TaxableIncome)
	r.Add("incomeTax", "Income tax", KindCurrency, res.IncomeTax)
	r.Add("nationalInsurance", "National Insurance", KindCurrency, res.NationalInsurance)
	r.Add("studentLoan", "Student loan", KindCurrency, res.StudentLoan)
	r.Add("netAnnual", "Take-home per year", KindCurrency, res.NetAnnual)
	r.Add("netMonthly", "Take-home per month", KindCurrency, res.NetMonthly)
	r.Add("netWeekly", "Take-home per week", KindCurrency, res.NetWeekly)
	r.Add("deductionRate", "Total deductions", KindPercent, res.DeductionRate)
	r.Notef("Rates for the %s tax year.", ty.Name)
	return r, nil
}
