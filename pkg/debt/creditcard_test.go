package debt

import (
	"math"
	"testing"
)

func TestCreditCardPayoff(t *testing.T) {
	tests := []struct {
		name             string
		input            Input
		expectedMonths   int
		expectedInterest float64
		paidOff          bool
	}{
		{
			name:             "Fixed payment",
			input:            Input{Balance: 3000, APR: 19.9, FixedPayment: 100},
			expectedMonths:   42,
			expectedInterest: 1184.13,
			paidOff:          true,
		},
		{
			name:             "Minimum percentage with floor",
			input:            Input{Balance: 3000, APR: 19.9, MinimumPercent: 3, MinimumFloor: 25},
			expectedMonths:   144,
			expectedInterest: 3067.88,
			paidOff:          true,
		},
		{
			name:             "Interest free balance",
			input:            Input{Balance: 3000, FixedPayment: 100},
			expectedMonths:   30,
			expectedInterest: 0,
			paidOff:          true,
		},
		{
			name:             "Payment equal to interest never clears",
			input:            Input{Balance: 5000, APR: 24, FixedPayment: 100},
			expectedMonths:   0,
			expectedInterest: 0,
			paidOff:          false,
		},
		{
			name:             "Minimum below interest never clears",
			input:            Input{Balance: 5000, APR: 24, MinimumPercent: 1, MinimumFloor: 5},
			expectedMonths:   0,
			expectedInterest: 0,
			paidOff:          false,
		},
		{
			name:             "Slow minimum payments hit the month cap",
			input:            Input{Balance: 3000, APR: 22, MinimumPercent: 2},
			expectedMonths:   1200,
			expectedInterest: 28541.38,
			paidOff:          false,
		},
		{
			name:           "Nothing owed",
			input:          Input{Balance: -50, APR: 20, FixedPayment: 100},
			expectedMonths: 0,
			paidOff:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CreditCardPayoff(tt.input)
			if result.Months != tt.expectedMonths {
				t.Errorf("Months = %d, expected %d", result.Months, tt.expectedMonths)
			}
			if math.Abs(result.TotalInterest-tt.expectedInterest) > 0.01 {
				t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, tt.expectedInterest)
			}
			if result.PaidOff != tt.paidOff {
				t.Errorf("PaidOff = %v, expected %v", result.PaidOff, tt.paidOff)
			}
		})
	}
}

func TestCreditCardPayoffTotals(t *testing.T) {
	result := CreditCardPayoff(Input{Balance: 3000, APR: 19.9, FixedPayment: 100})
	if math.Abs(result.TotalPaid-(3000+result.TotalInterest)) > 0.01 {
		t.Errorf("TotalPaid = %.2f does not equal balance plus interest %.2f", result.TotalPaid, result.TotalInterest)
	}
	if result.FirstPayment != 100 {
		t.Errorf("FirstPayment = %.2f, expected 100", result.FirstPayment)
	}
}

func TestRequiredPayment(t *testing.T) {
	if got := RequiredPayment(3000, 19.9, 24); math.Abs(got-152.54) > 0.01 {
		t.Errorf("RequiredPayment() = %.2f, expected 152.54", got)
	}
	if got := RequiredPayment(3000, 19.9, 0); got != 0 {
		t.Errorf("RequiredPayment() with zero months = %.2f, expected 0", got)
	}
}
