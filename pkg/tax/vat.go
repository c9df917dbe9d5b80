package tax

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// VATResult splits an amount into its net and VAT parts.
type VATResult struct {
	Net   float64
	VAT   float64
	Gross float64
}

// AddVAT applies rate percent to a net amount.
func AddVAT(net, rate float64) VATResult {
	net = mathutil.NonNegative(net)
	vat := mathutil.ApplyPercentage(net, mathutil.NonNegative(rate))
	return VATResult{Net: net, VAT: vat, Gross: net + vat}
}

// RemoveVAT extracts the VAT contained in a gross amount.
func RemoveVAT(gross, rate float64) VATResult {
	gross = mathutil.NonNegative(gross)
	net := gross / (1 + mathutil.NonNegative(rate)/constants.PercentageMultiplier)
	return VATResult{Net: net, VAT: gross - net, Gross: gross}
}
