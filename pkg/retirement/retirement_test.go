package retirement

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	got := Project(Input{
		CurrentAge:           30,
		RetirementAge:        65,
		CurrentPot:           10000,
		MonthlyContribution:  300,
		EmployerContribution: 200,
		GrowthRate:           5,
		Inflation:            2,
		AnnuityRate:          5,
		RetirementYears:      25,
		WithdrawalRate:       4,
	})

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Pot", got.Pot, 627750.26},
		{"RealPot", got.RealPot, 313892.46},
		{"Contributions", got.Contributions, 210000},
		{"Growth", got.Growth, 407750.26},
		{"AnnuityMonthly", got.AnnuityMonthly, 3669.77},
		{"AnnuityIncome", got.AnnuityIncome, 44037.19},
		{"DrawdownIncome", got.DrawdownIncome, 25110.01},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 0.01 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if got.Years != 35 || len(got.Yearly) != 35 {
		t.Fatalf("Years = %d, len(Yearly) = %d, want 35", got.Years, len(got.Yearly))
	}
	last := got.Yearly[len(got.Yearly)-1]
	if last.Age != 65 || math.Abs(last.Pot-got.Pot) > 0.01 {
		t.Errorf("last year = %+v, want age 65 with final pot", last)
	}
}

func TestProjectContributionOrder(t *testing.T) {
	got := Project(Input{CurrentAge: 40, RetirementAge: 41, MonthlyContribution: 100, GrowthRate: 0})
	if math.Abs(got.Pot-1200) > 0.01 || got.Growth != 0 {
		t.Errorf("zero growth pot = %v, growth = %v", got.Pot, got.Growth)
	}

	// The first contribution earns a full month of growth.
	oneYear := Project(Input{CurrentAge: 40, RetirementAge: 41, MonthlyContribution: 100, GrowthRate: 12})
	if math.Abs(oneYear.Pot-1280.93) > 0.01 {
		t.Errorf("one year at 12%% = %v, want 1280.93", oneYear.Pot)
	}

	higher := Project(Input{CurrentAge: 40, RetirementAge: 60, MonthlyContribution: 200, GrowthRate: 4})
	lower := Project(Input{CurrentAge: 40, RetirementAge: 60, MonthlyContribution: 100, GrowthRate: 4})
	if higher.Pot <= lower.Pot {
		t.Errorf("higher contribution pot %v not above lower %v", higher.Pot, lower.Pot)
	}
}

func TestProjectAlreadyRetired(t *testing.T) {
	got := Project(Input{CurrentAge: 70, RetirementAge: 65, CurrentPot: 100000, AnnuityRate: 5, RetirementYears: 20, WithdrawalRate: 4})
	if got.Years != 0 || got.Pot != 100000 || got.RealPot != 100000 {
		t.Errorf("got %+v, want pot unchanged", got)
	}
	if math.Abs(got.DrawdownIncome-4000) > 0.01 {
		t.Errorf("DrawdownIncome = %v, want 4000", got.DrawdownIncome)
	}
	if got.AnnuityMonthly <= 0 {
		t.Errorf("AnnuityMonthly = %v, want positive", got.AnnuityMonthly)
	}

	if empty := Project(Input{}); empty.Pot != 0 || empty.AnnuityIncome != 0 {
		t.Errorf("empty projection = %+v", empty)
	}
}
