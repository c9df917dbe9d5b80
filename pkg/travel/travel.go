// Package travel estimates the cost of a trip.
package travel

import (
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Input describes a trip. Nightly accommodation, daily transport and daily
// food are in the destination currency; food and activities are per
// traveller. Flights and insurance are per traveller in the home currency.
type Input struct {
	Days                 int
	Travellers           int
	NightlyAccommodation float64
	DailyFood            float64
	DailyTransport       float64
	Activities           float64
	FlightsPerPerson     float64
	InsurancePerPerson   float64
	ContingencyPercent   float64
	// ExchangeRate is destination units per home unit.
	ExchangeRate float64
}

// Result is the trip cost in the home currency.
type Result struct {
	Nights        int
	Accommodation float64
	Food          float64
	Transport     float64
	Activities    float64
	Flights       float64
	Insurance     float64
	Subtotal      float64
	Contingency   float64
	Total         float64
	PerPerson     float64
	PerDay        float64
}

// Budget totals a trip. A trip of one day or less has no nights, and at least
// one traveller is assumed.
func Budget(in Input) Result {
	days := in.Days
	if days < 0 {
		days = 0
	}
	travellers := in.Travellers
	if travellers < 1 {
		travellers = 1
	}
	nights := days - 1
	if nights < 0 {
		nights = 0
	}
	rate := mathutil.Finite(in.ExchangeRate)
	if rate <= 0 {
		rate = 1
	}
	local := func(v float64) float64 { return mathutil.NonNegative(v) / rate }
	people := float64(travellers)

	result := Result{
		Nights:        nights,
		Accommodation: local(in.NightlyAccommodation) * float64(nights),
		Food:          local(in.DailyFood) * float64(days) * people,
		Transport:     local(in.DailyTransport) * float64(days),
		Activities:    local(in.Activities) * people,
		Flights:       mathutil.NonNegative(in.FlightsPerPerson) * people,
		Insurance:     mathutil.NonNegative(in.InsurancePerPerson) * people,
	}
	result.Subtotal = result.Accommodation + result.Food + result.Transport +
		result.Activities + result.Flights + result.Insurance
	result.Contingency = mathutil.ApplyPercentage(result.Subtotal, mathutil.Clamp(in.ContingencyPercent, 0, 100))
	result.Total = result.Subtotal + result.Contingency
	result.PerPerson = result.Total / people
	result.PerDay = mathutil.SafeDivide(result.Total, float64(days))
	return result
}
