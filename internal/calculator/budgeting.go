package calculator

import (
	"github.com/iwvelando/finance-calculators/pkg/budget"
	"github.com/iwvelando/finance-calculators/pkg/salary"
	"github.com/iwvelando/finance-calculators/pkg/travel"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// plannerCategories are the expense fields of the budget planner.
var plannerCategories = []struct{ key, label, def string }{
	{"housing", "Rent or mortgage", "900"},
	{"utilities", "Bills and utilities", "200"},
	{"food", "Food and groceries", "350"},
	{"transport", "Transport", "150"},
	{"debt", "Debt repayments", "0"},
	{"childcare", "Childcare", "0"},
	{"entertainment", "Leisure and entertainment", "150"},
	{"saving", "Saving and investing", "250"},
	{"other", "Other", "100"},
}

func budgetingCalculators() []Calculator {
	plannerFields := []Field{currency("income", "Monthly take-home income", "2500")}
	for _, c := range plannerCategories {
		plannerFields = append(plannerFields, currency(c.key, c.label, c.def))
	}

	return []Calculator{
		{
			Name:        "salary-converter",
			Title:       "Salary converter",
			Category:    CategoryBudgeting,
			Description: "The same pay expressed hourly, daily, weekly, monthly and annually.",
			Fields: []Field{
				currency("amount", "Pay", "30000"),
				choice("period", "Paid per", salary.PeriodAnnual, salary.Periods...),
				number("hoursPerWeek", "Hours per week", "37.5", 168),
				number("daysPerWeek", "Days per week", "5", 7),
			},
			Compute: computeSalaryConverter,
		},
		{
			Name:        "pay-rise",
			Title:       "Pay rise",
			Category:    CategoryBudgeting,
			Description: "New salary after a percentage pay rise or cut.",
			Fields: []Field{
				currency("salary", "Current salary", "30000"),
				{Key: "percent", Label: "Pay rise", Kind: KindPercent, Default: "3", Min: -100, Max: 1000},
			},
			Compute: computePayRise,
		},
		{
			Name:        "budget-503020",
			Title:       "50/30/20 budget",
			Category:    CategoryBudgeting,
			Description: "Income split between needs, wants and savings.",
			Fields: []Field{
				currency("income", "Monthly take-home income", "2500"),
				percent("needs", "Needs", "50"),
				percent("wants", "Wants", "30"),
				percent("savings", "Savings", "20"),
			},
			Compute: computeSplit,
		},
		{
			Name:        "budget-planner",
			Title:       "Budget planner",
			Category:    CategoryBudgeting,
			Description: "Monthly spending by category against income.",
			Fields:      plannerFields,
			Compute:     computePlanner,
		},
		{
			Name:        "emergency-fund",
			Title:       "Emergency fund",
			Category:    CategoryBudgeting,
			Description: "Size of a rainy-day fund and how long it takes to build.",
			Fields: []Field{
				currency("monthlyExpenses", "Essential monthly spending", "2000"),
				number("targetMonths", "Months of cover", "6", 24),
				currency("currentSavings", "Current savings", "3000"),
				currency("monthlySaving", "Monthly saving", "300"),
			},
			Compute: computeEmergencyFund,
		},
		{
			Name:        "travel-budget",
			Title:       "Travel budget",
			Category:    CategoryBudgeting,
			Description: "Trip cost in home currency with a contingency buffer.",
			Fields: []Field{
				integer("days", "Days", "7", 365),
				integer("travellers", "Travellers", "2", 50),
				currency("nightlyAccommodation", "Accommodation per night (local)", "100"),
				currency("dailyFood", "Food per person per day (local)", "40"),
				currency("dailyTransport", "Local transport per day (local)", "15"),
				currency("activities", "Activities per person (local)", "100"),
				currency("flightsPerPerson", "Flights per person", "150"),
				currency("insurancePerPerson", "Insurance per person", "20"),
				percent("contingency", "Contingency", "10"),
				{Key: "exchangeRate", Label: "Local currency per home unit", Kind: KindNumber, Default: "1"},
			},
			Compute: computeTravel,
		},
	}
}

func computeSalaryConverter(in Inputs) (Result, error) {
	b := salary.Convert(in.Float("amount"), in.String("period"), in.Float("hoursPerWeek"), in.Float("daysPerWeek"))
	var r Result
	r.Add("hourly", "Hourly", KindCurrency, b.Hourly)
	r.Add("daily", "Daily", KindCurrency, b.Daily)
	r.Add("weekly", "Weekly", KindCurrency, b.Weekly)
	r.Add("monthly", "Monthly", KindCurrency, b.Monthly)
	r.Add("annual", "Annual", KindCurrency, b.Annual)
	return r, nil
}

func computePayRise(in Inputs) (Result, error) {
	res := salary.PayRise(in.Float("salary"), in.Float("percent"))
	var r Result
	r.Add("newSalary", "New salary", KindCurrency, res.NewSalary)
	r.Add("increase", "Increase per year", KindCurrency, res.Increase)
	r.Add("monthlyIncrease", "Increase per month", KindCurrency, res.MonthlyIncrease)
	return r, nil
}

func computeSplit(in Inputs) (Result, error) {
	needs, wants, savings := in.Float("needs"), in.Float("wants"), in.Float("savings")
	res := budget.Split(in.Float("income"), needs, wants, savings)

	var r Result
	r.Add("needs", "Needs", KindCurrency, res.Needs)
	r.Add("wants", "Wants", KindCurrency, res.Wants)
	r.Add("savings", "Savings", KindCurrency, res.Savings)
	r.Add("needsPercent", "Needs share", KindPercent, res.NeedsPercent)
	r.Add("wantsPercent", "Wants share", KindPercent, res.WantsPercent)
	r.Add("savingsPercent", "Savings share", KindPercent, res.SavingsPercent)
	if warning := validation.ValidatePercentageSplit("needs, wants and savings", needs, wants, savings); warning != "" {
		r.Note(warning)
	}
	return r, nil
}

func computePlanner(in Inputs) (Result, error) {
	expenses := make(map[string]float64, len(plannerCategories))
	labels := make(map[string]string, len(plannerCategories))
	for _, c := range plannerCategories {
		expenses[c.key] = in.Float(c.key)
		labels[c.key] = c.label
	}
	res := budget.Plan(in.Float("income"), expenses)

	var r Result
	r.Add("totalExpenses", "Total spending", KindCurrency, res.TotalExpenses)
	r.Add("surplus", "Left over", KindCurrency, res.Surplus)
	r.Add("savingsRate", "Left over as share of income", KindPercent, res.SavingsRate)
	if res.Surplus < 0 {
		r.Notef("Spending exceeds income by %.2f a month.", -res.Surplus)
	}

	table := NewTable("Spending by category", "Category",
		Column{Label: "Amount", Kind: KindCurrency},
		Column{Label: "Share", Kind: KindPercent},
	)
	for _, category := range res.Categories {
		table.AddRow(labels[category.Name], category.Amount, category.Share)
	}
	if len(table.Rows) > 0 {
		r.Table = table
	}
	return r, nil
}

func computeEmergencyFund(in Inputs) (Result, error) {
	res := budget.EmergencyFund(in.Float("monthlyExpenses"), in.Float("targetMonths"), in.Float("currentSavings"), in.Float("monthlySaving"))
	var r Result
	r.Add("target", "Target fund", KindCurrency, res.Target)
	r.Add("shortfall", "Shortfall", KindCurrency, res.Shortfall)
	r.Add("surplus", "Above target", KindCurrency, res.Surplus)
	r.Add("coverageMonths", "Months covered now", KindNumber, res.CoverageMonths)
	r.Add("monthsToTarget", "Months to target", KindInteger, float64(res.MonthsToTarget))
	if res.MonthsToTarget < 0 {
		r.Note("At this monthly saving the target is not reached within 100 years.")
	}
	return r, nil
}

func computeTravel(in Inputs) (Result, error) {
	res := travel.Budget(travel.Input{
		Days:                 in.Int("days"),
		Travellers:           in.Int("travellers"),
		NightlyAccommodation: in.Float("nightlyAccommodation"),
		DailyFood:            in.Float("dailyFood"),
		DailyTransport:       in.Float("dailyTransport"),
		Activities:           in.Float("activities"),
		FlightsPerPerson:     in.Float("flightsPerPerson"),
		InsurancePerPerson:   in.Float("insurancePerPerson"),
		ContingencyPercent:   in.Float("contingency"),
		ExchangeRate:         in.Float("exchangeRate"),
	})

	var r Result
	r.Add("nights", "Nights", KindInteger, float64(res.Nights))
	r.Add("accommodation", "Accommodation", KindCurrency, res.Accommodation)
	r.Add("food", "Food", KindCurrency, res.Food)
	r.Add("transport", "Local transport", KindCurrency, res.Transport)
	r.Add("activities", "Activities", KindCurrency, res.Activities)
	r.Add("flights", "Flights", KindCurrency, res.Flights)
	r.Add("insurance", "Insurance", KindCurrency, res.Insurance)
	r.Add("subtotal", "Subtotal", KindCurrency, res.Subtotal)
	r.Add("contingency", "Contingency", KindCurrency, res.Contingency)
	r.Add("total", "Total", KindCurrency, res.Total)
	r.Add("perPerson", "Per person", KindCurrency, res.PerPerson)
	r.Add("perDay", "Per day", KindCurrency, res.PerDay)
	return r, nil
}
