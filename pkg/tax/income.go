package tax

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// BandTax is the share of income taxed within one band.
type BandTax struct {
	Name   string
	Rate   float64
	Income float64
	Tax    float64
}

// IncomeTaxResult holds the outcome of IncomeTax.
type IncomeTaxResult struct {
	GrossIncome       float64
	PersonalAllowance float64
	TaxableIncome     float64
	Tax               float64
	Bands             []BandTax
	MarginalRate      float64 // percent, including the allowance taper
	EffectiveRate     float64 // percent of gross income
}

// Allowance reduces the allowance by 1 for every 2 of income above the
// taper threshold, down to zero.
func (ty TaxYear) Allowance(income float64) float64 {
	income = mathutil.NonNegative(income)
	excess := mathutil.NonNegative(income - ty.TaperThreshold)
	return mathutil.NonNegative(ty.PersonalAllowance - excess/2)
}

// IncomeTax applies the marginal bands to income above the personal allowance.
func (ty TaxYear) IncomeTax(grossIncome float64) IncomeTaxResult {
	gross := mathutil.NonNegative(grossIncome)
	allowance := ty.Allowance(gross)
	taxable := mathutil.NonNegative(gross - allowance)

	result := IncomeTaxResult{
		GrossIncome:       gross,
		PersonalAllowance: allowance,
		TaxableIncome:     taxable,
	}

	lower := 0.0
	for _, band := range ty.Bands {
		upper := band.UpperLimit
		if upper <= 0 {
			upper = math.Inf(1)
		}
		portion := mathutil.NonNegative(math.Min(taxable, upper) - lower)
		bandTax := mathutil.ApplyPercentage(portion, band.Rate)
		result.Bands = append(result.Bands, BandTax{Name: band.Name, Rate: band.Rate, Income: portion, Tax: bandTax})
		result.Tax += bandTax
		if portion > 0 {
			result.MarginalRate = band.Rate
		}
		if math.IsInf(upper, 1) {
			break
		}
		lower = upper
	}

	// Inside the taper every extra pound also removes 50p of allowance.
	if gross > ty.TaperThreshold && allowance > 0 {
		result.MarginalRate *= 1.5
	}
	result.EffectiveRate = mathutil.CalculatePercentage(result.Tax, gross)
	return result
}

// NIResult holds employee National Insurance contributions.
type NIResult struct {
	MainContribution  float64
	UpperContribution float64
	Total             float64
}

// NIContributions computes annual employee Class 1 contributions.
func (ty TaxYear) NIContributions(earnings float64) NIResult {
	ni := ty.NationalInsurance
	earnings = mathutil.NonNegative(earnings)
	mainPortion := mathutil.NonNegative(math.Min(earnings, ni.UpperEarningsLimit) - ni.PrimaryThreshold)
	upperPortion := mathutil.NonNegative(earnings - math.Max(ni.UpperEarningsLimit, ni.PrimaryThreshold))

	result := NIResult{
		MainContribution:  mathutil.ApplyPercentage(mainPortion, ni.MainRate),
		UpperContribution: mathutil.ApplyPercentage(upperPortion, ni.UpperRate),
	}
	result.Total = result.MainContribution + result.UpperContribution
	return result
}
