package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/finance-calculators/pkg/tax"
)

func TestValidateTaxYearDefaults(t *testing.T) {
	if warnings := ValidateTaxYear(tax.DefaultTaxYear()); len(warnings) != 0 {
		t.Errorf("default tax year produced warnings: %v", warnings)
	}
}

func TestValidateTaxYear(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(ty *tax.TaxYear)
		contains string
	}{
		{
			name:     "Negative allowance",
			mutate:   func(ty *tax.TaxYear) { ty.PersonalAllowance = -1 },
			contains: "personal allowance is negative",
		},
		{
			name: "Bands out of order",
			mutate: func(ty *tax.TaxYear) {
				ty.Bands = []tax.Band{{Name: "basic", UpperLimit: 50000, Rate: 20}, {Name: "higher", UpperLimit: 40000, Rate: 40}, {Name: "top", Rate: 45}}
			},
			contains: "band 'higher' upper limit",
		},
		{
			name: "Unbounded band before the last",
			mutate: func(ty *tax.TaxYear) {
				ty.Bands = []tax.Band{{Name: "basic", Rate: 20}, {Name: "higher", UpperLimit: 40000, Rate: 40}}
			},
			contains: "band 'basic' has no upper limit",
		},
		{
			name:     "Band rate above 100",
			mutate:   func(ty *tax.TaxYear) { ty.Bands[0].Rate = 120 },
			contains: "rate 120.00 is outside 0-100",
		},
		{
			name: "NI limits inverted",
			mutate: func(ty *tax.TaxYear) {
				ty.NationalInsurance.UpperEarningsLimit = 10000
			},
			contains: "NI upper earnings limit",
		},
		{
			name:     "VAT negative",
			mutate:   func(ty *tax.TaxYear) { ty.VATRate = -5 },
			contains: "VAT rate -5.00",
		},
		{
			name: "Student loan rate",
			mutate: func(ty *tax.TaxYear) {
				ty.StudentLoans[tax.PlanTwo] = tax.StudentLoanPlan{Threshold: 28470, Rate: 900}
			},
			contains: "student loan plan2 rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty := tax.DefaultTaxYear()
			tt.mutate(&ty)
			warnings := ValidateTaxYear(ty)
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.contains) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}

func TestValidatePercentageSplit(t *testing.T) {
	tests := []struct {
		name        string
		percentages []float64
		expectWarn  bool
	}{
		{"Exactly 100", []float64{50, 30, 20}, false},
		{"Within tolerance", []float64{33.333, 33.333, 33.334}, false},
		{"Over 100", []float64{60, 30, 30}, true},
		{"All zero", []float64{0, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidatePercentageSplit("budget", tt.percentages...)
			if (warning != "") != tt.expectWarn {
				t.Errorf("ValidatePercentageSplit(%v) = %q, expect warning %t", tt.percentages, warning, tt.expectWarn)
			}
		})
	}
}
