package salary

import (
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"github.com/iwvelando/finance-calculators/pkg/tax"
)

// Pension deduction methods.
const (
	// PensionSacrifice reduces pay before income tax, NI and student loan.
	PensionSacrifice = "sacrifice"
	// PensionNetPay reduces pay before income tax only.
	PensionNetPay = "net"
)

// TakeHomeInput describes an annual salary and its deductions.
type TakeHomeInput struct {
	Gross            float64
	PensionPercent   float64
	PensionMethod    string
	StudentLoanPlans []string
	TaxYear          tax.TaxYear
}

// TakeHomeResult holds annual deductions and net pay.
type TakeHomeResult struct {
	Gross             float64
	Pension           float64
	TaxableIncome     float64
	IncomeTax         float64
	NationalInsurance float64
	StudentLoan       float64
	NetAnnual         float64
	NetMonthly        float64
	NetWeekly         float64
	DeductionRate     float64 // percent of gross
}

// TakeHome works out annual net pay after pension, income tax, National
// Insurance and any student loan plans. A zero TaxYear uses the defaults.
func TakeHome(in TakeHomeInput) TakeHomeResult {
	ty := in.TaxYear.WithDefaults()
	gross := mathutil.NonNegative(in.Gross)
	pension := mathutil.ApplyPercentage(gross, mathutil.Clamp(in.PensionPercent, 0, 100))

	taxablePay := gross - pension
	niPay := gross
	if !strings.EqualFold(strings.TrimSpace(in.PensionMethod), PensionNetPay) {
		niPay = taxablePay
	}

	result := TakeHomeResult{
		Gross:             gross,
		Pension:           pension,
		IncomeTax:         ty.IncomeTax(taxablePay).Tax,
		NationalInsurance: ty.NIContributions(niPay).Total,
	}
	result.TaxableIncome = mathutil.NonNegative(taxablePay - ty.Allowance(taxablePay))

	seen := make(map[string]bool, len(in.StudentLoanPlans))
	for _, plan := range in.StudentLoanPlans {
		key := strings.ToLower(strings.TrimSpace(plan))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result.StudentLoan += ty.StudentLoanRepayment(niPay, key)
	}

	result.NetAnnual = gross - pension - result.IncomeTax - result.NationalInsurance - result.StudentLoan
	result.NetMonthly = result.NetAnnual / constants.MonthsPerYear
	result.NetWeekly = result.NetAnnual / constants.WeeksPerYear
	result.DeductionRate = mathutil.CalculatePercentage(gross-result.NetAnnual, gross)
	return result
}
