// Package tax implements UK income tax, National Insurance, capital gains tax,
// student loan and VAT calculations for a configurable tax year.
package tax

// Student loan plan identifiers.
const (
	PlanOne      = "plan1"
	PlanTwo      = "plan2"
	PlanFour     = "plan4"
	PlanFive     = "plan5"
	Postgraduate = "postgraduate"
)

// Band is a marginal income tax band. UpperLimit is measured in taxable income
// (after the personal allowance); zero means the band has no upper limit.
type Band struct {
	Name       string
	UpperLimit float64
	Rate       float64 // percent
}

// NationalInsuranceRates holds employee Class 1 thresholds and rates.
type NationalInsuranceRates struct {
	PrimaryThreshold   float64
	UpperEarningsLimit float64
	MainRate           float64
	UpperRate          float64
}

// CapitalGainsRates holds the annual exempt amount and the two CGT rates.
type CapitalGainsRates struct {
	AnnualExemptAmount float64
	BasicRate          float64
	HigherRate         float64
}

// StudentLoanPlan holds the repayment threshold and rate for one plan.
type StudentLoanPlan struct {
	Threshold     float64
	Rate          float64
	WriteOffYears int
}

// TaxYear holds every threshold and rate used by the package.
type TaxYear struct {
	Name              string
	PersonalAllowance float64
	TaperThreshold    float64
	Bands             []Band
	NationalInsurance NationalInsuranceRates
	CapitalGains      CapitalGainsRates
	StudentLoans      map[string]StudentLoanPlan
	VATRate           float64
}

// DefaultTaxYear returns the 2025/26 rates for England, Wales and Northern Ireland.
func DefaultTaxYear() TaxYear {
	return TaxYear{
		Name:              "2025/26",
		PersonalAllowance: 12570,
		TaperThreshold:    100000,
		Bands: []Band{
			{Name: "basic", UpperLimit: 37700, Rate: 20},
			{Name: "higher", UpperLimit: 125140, Rate: 40},
			{Name: "additional", Rate: 45},
		},
		NationalInsurance: NationalInsuranceRates{
			PrimaryThreshold:   12570,
			UpperEarningsLimit: 50270,
			MainRate:           8,
			UpperRate:          2,
		},
		CapitalGains: CapitalGainsRates{
			AnnualExemptAmount: 3000,
			BasicRate:          18,
			HigherRate:         24,
		},
		StudentLoans: map[string]StudentLoanPlan{
			PlanOne:      {Threshold: 26065, Rate: 9, WriteOffYears: 25},
			PlanTwo:      {Threshold: 28470, Rate: 9, WriteOffYears: 30},
			PlanFour:     {Threshold: 32745, Rate: 9, WriteOffYears: 30},
			PlanFive:     {Threshold: 25000, Rate: 9, WriteOffYears: 40},
			Postgraduate: {Threshold: 21000, Rate: 6, WriteOffYears: 30},
		},
		VATRate: 20,
	}
}

// WithDefaults returns a copy of ty with every unset field taken from
// DefaultTaxYear. Student loan plans are merged by name.
func (ty TaxYear) WithDefaults() TaxYear {
	def := DefaultTaxYear()
	if ty.Name == "" {
		ty.Name = def.Name
	}
	if ty.PersonalAllowance == 0 {
		ty.PersonalAllowance = def.PersonalAllowance
	}
	if ty.TaperThreshold == 0 {
		ty.TaperThreshold = def.TaperThreshold
	}
	if len(ty.Bands) == 0 {
		ty.Bands = def.Bands
	} else {
		ty.Bands = append([]Band(nil), ty.Bands...)
	}

	ni := &ty.NationalInsurance
	if ni.PrimaryThreshold == 0 {
		ni.PrimaryThreshold = def.NationalInsurance.PrimaryThreshold
	}
	if ni.UpperEarningsLimit == 0 {
		ni.UpperEarningsLimit = def.NationalInsurance.UpperEarningsLimit
	}
	if ni.MainRate == 0 {
		ni.MainRate = def.NationalInsurance.MainRate
	}
	if ni.UpperRate == 0 {
		ni.UpperRate = def.NationalInsurance.UpperRate
	}

	cgt := &ty.CapitalGains
	if cgt.AnnualExemptAmount == 0 {
		cgt.AnnualExemptAmount = def.CapitalGains.AnnualExemptAmount
	}
	if cgt.BasicRate == 0 {
		cgt.BasicRate = def.CapitalGains.BasicRate
	}
	if cgt.HigherRate == 0 {
		cgt.HigherRate = def.CapitalGains.HigherRate
	}

	plans := make(map[string]StudentLoanPlan, len(def.StudentLoans))
	for name, plan := range def.StudentLoans {
		plans[name] = plan
	}
	for name, plan := range ty.StudentLoans {
		base := plans[name]
		if plan.Threshold == 0 {
			plan.Threshold = base.Threshold
		}
		if plan.Rate == 0 {
			plan.Rate = base.Rate
		}
		if plan.WriteOffYears == 0 {
			plan.WriteOffYears = base.WriteOffYears
		}
		plans[name] = plan
	}
	ty.StudentLoans = plans

	if ty.VATRate == 0 {
		ty.VATRate = def.VATRate
	}
	return ty
}

// basicRateBand returns the width of the first band, or 0 when it is unbounded.
func (ty TaxYear) basicRateBand() float64 {
	if len(ty.Bands) == 0 {
		return 0
	}
	return ty.Bands[0].UpperLimit
}
