package annuity

import (
	"math"
	"testing"
)

func TestPayout(t *testing.T) {
	tests := []struct {
		name            string
		input           Input
		expectedPayment float64
		expectedCount   int
	}{
		{
			name:            "Level monthly annuity",
			input:           Input{Pot: 150000, AnnualRate: 5, Years: 20, PaymentsPerYear: 12},
			expectedPayment: 989.93,
			expectedCount:   240,
		},
		{
			name:            "Frequency defaults to monthly",
			input:           Input{Pot: 150000, AnnualRate: 5, Years: 20},
			expectedPayment: 989.93,
			expectedCount:   240,
		},
		{
			name:            "Zero interest divides the pot",
			input:           Input{Pot: 12000, Years: 20, PaymentsPerYear: 12},
			expectedPayment: 50,
			expectedCount:   240,
		},
		{
			name:            "Escalating annuity starts lower",
			input:           Input{Pot: 150000, AnnualRate: 5, Years: 20, PaymentsPerYear: 12, Escalation: 3},
			expectedPayment: 763.22,
			expectedCount:   240,
		},
		{
			name:            "Zero pot",
			input:           Input{Pot: 0, AnnualRate: 5, Years: 20},
			expectedPayment: 0,
		},
		{
			name:            "Negative pot",
			input:           Input{Pot: -1000, AnnualRate: 5, Years: 20},
			expectedPayment: 0,
		},
		{
			name:            "Zero term",
			input:           Input{Pot: 150000, AnnualRate: 5, Years: 0},
			expectedPayment: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Payout(tt.input)
			if math.Abs(result.Payment-tt.expectedPayment) > 0.005 {
				t.Errorf("Payout().Payment = %.4f, expected %.2f", result.Payment, tt.expectedPayment)
			}
			if result.Payments != tt.expectedCount {
				t.Errorf("Payout().Payments = %d, expected %d", result.Payments, tt.expectedCount)
			}
		})
	}
}

func TestPayoutTotals(t *testing.T) {
	result := Payout(Input{Pot: 150000, AnnualRate: 5, Years: 20, PaymentsPerYear: 12})

	if math.Abs(result.TotalPaid-237584.07) > 0.01 {
		t.Errorf("TotalPaid = %.2f, expected 237584.07", result.TotalPaid)
	}
	if math.Abs(result.TotalInterest-87584.07) > 0.01 {
		t.Errorf("TotalInterest = %.2f, expected 87584.07", result.TotalInterest)
	}
	if math.Abs(result.AnnualIncome-result.Payment*12) > 0.0001 {
		t.Errorf("AnnualIncome = %.2f, expected twelve level payments", result.AnnualIncome)
	}
}

func TestPayoutEscalationFirstYear(t *testing.T) {
	result := Payout(Input{Pot: 150000, AnnualRate: 5, Years: 20, PaymentsPerYear: 12, Escalation: 3})
	if math.Abs(result.AnnualIncome-9283.95) > 0.01 {
		t.Errorf("AnnualIncome = %.2f, expected 9283.95", result.AnnualIncome)
	}
	level := Payout(Input{Pot: 150000, AnnualRate: 5, Years: 20, PaymentsPerYear: 12})
	if result.TotalPaid <= level.TotalPaid {
		t.Errorf("escalating annuity should pay more in total: %.2f <= %.2f", result.TotalPaid, level.TotalPaid)
	}
}

func TestPayoutEscalationEqualToRate(t *testing.T) {
	// With escalation equal to the interest rate each payment is pot*(1+r)/n.
	rate := (math.Pow(1.06, 1.0/12) - 1) * 12 * 100
	result := Payout(Input{Pot: 120000, AnnualRate: rate, Years: 10, PaymentsPerYear: 12, Escalation: 6})
	r := rate / 1200
	expected := 120000 * (1 + r) / 120
	if math.Abs(result.Payment-expected) > 0.01 {
		t.Errorf("Payment = %.4f, expected %.4f", result.Payment, expected)
	}
}

func TestPotRequired(t *testing.T) {
	pot := PotRequired(989.93, 5, 20, 12)
	if math.Abs(pot-149999.45) > 0.01 {
		t.Errorf("PotRequired() = %.2f, expected 149999.45", pot)
	}
	if got := PotRequired(50, 0, 20, 12); got != 12000 {
		t.Errorf("PotRequired() at zero rate = %.2f, expected 12000", got)
	}
	if got := PotRequired(50, 5, 0, 12); got != 0 {
		t.Errorf("PotRequired() with zero term = %.2f, expected 0", got)
	}
}
