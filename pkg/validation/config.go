package validation

import (
	"fmt"
	"math"
	"sort"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/tax"
)

func validRate(rate float64) bool {
	return rate >= 0 && rate <= constants.PercentageMultiplier
}

// ValidateTaxYear checks a tax year for settings that would produce odd
// results and returns a warning for each.
func ValidateTaxYear(ty tax.TaxYear) []string {
	var warnings []string

	if ty.PersonalAllowance < 0 {
		warnings = append(warnings, fmt.Sprintf("Tax year %s: personal allowance is negative (%.2f)", ty.Name, ty.PersonalAllowance))
	}

	previous := 0.0
	for i, band := range ty.Bands {
		if !validRate(band.Rate) {
			warnings = append(warnings, fmt.Sprintf("Tax year %s: band '%s' rate %.2f is outside 0-100", ty.Name, band.Name, band.Rate))
		}
		last := i == len(ty.Bands)-1
		if band.UpperLimit == 0 && !last {
			warnings = append(warnings, fmt.Sprintf("Tax year %s: band '%s' has no upper limit but is not the last band", ty.Name, band.Name))
		}
		if band.UpperLimit != 0 && band.UpperLimit <= previous {
			warnings = append(warnings, fmt.Sprintf("Tax year %s: band '%s' upper limit %.2f is not above the previous band (%.2f)",
				ty.Name, band.Name, band.UpperLimit, previous))
		}
		if band.UpperLimit > previous {
			previous = band.UpperLimit
		}
	}

	ni := ty.NationalInsurance
	if ni.UpperEarningsLimit < ni.PrimaryThreshold {
		warnings = append(warnings, fmt.Sprintf("Tax year %s: NI upper earnings limit %.2f is below the primary threshold %.2f",
			ty.Name, ni.UpperEarningsLimit, ni.PrimaryThreshold))
	}

	rates := map[string]float64{
		"NI main rate":    ni.MainRate,
		"NI upper rate":   ni.UpperRate,
		"CGT basic rate":  ty.CapitalGains.BasicRate,
		"CGT higher rate": ty.CapitalGains.HigherRate,
		"VAT rate":        ty.VATRate,
	}
	for _, plan := range ty.PlanNames() {
		rates["student loan "+plan+" rate"] = ty.StudentLoans[plan].Rate
	}
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !validRate(rates[name]) {
			warnings = append(warnings, fmt.Sprintf("Tax year %s: %s %.2f is outside 0-100", ty.Name, name, rates[name]))
		}
	}

	return warnings
}

// ValidatePercentageSplit returns a warning when percentages meant to cover a
// whole do not add up to 100, or "" when they do.
func ValidatePercentageSplit(name string, percentages ...float64) string {
	total := 0.0
	for _, p := range percentages {
		total += p
	}
	if math.Abs(total-constants.PercentageMultiplier) <= constants.CurrencyTolerance {
		return ""
	}
	if total == 0 {
		return fmt.Sprintf("The %s percentages are all zero; the default split was used.", name)
	}
	return fmt.Sprintf("The %s percentages add up to %.2f%%, so each was scaled to make 100%%.", name, total)
}
