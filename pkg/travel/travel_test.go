package travel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBudget(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 0.01)
	tests := []struct {
		name  string
		input Input
		want  Result
	}{
		{
			name: "week abroad for two",
			input: Input{
				Days: 7, Travellers: 2,
				NightlyAccommodation: 120, DailyFood: 40, DailyTransport: 15, Activities: 100,
				FlightsPerPerson: 150, InsurancePerPerson: 20,
				ContingencyPercent: 10, ExchangeRate: 1.16,
			},
			want: Result{
				Nights: 6, Accommodation: 620.69, Food: 482.76, Transport: 90.52, Activities: 172.41,
				Flights: 300, Insurance: 40, Subtotal: 1706.38, Contingency: 170.64,
				Total: 1877.02, PerPerson: 938.51, PerDay: 268.15,
			},
		},
		{
			name: "missing exchange rate and travellers",
			input: Input{
				Days: 3, NightlyAccommodation: 100, DailyFood: 30,
			},
			want: Result{
				Nights: 2, Accommodation: 200, Food: 90, Subtotal: 290, Total: 290, PerPerson: 290, PerDay: 96.67,
			},
		},
		{
			name: "day trip has no nights",
			input: Input{
				Days: 1, Travellers: 1, NightlyAccommodation: 100, DailyTransport: 20, ExchangeRate: -3,
			},
			want: Result{Transport: 20, Subtotal: 20, Total: 20, PerPerson: 20, PerDay: 20},
		},
		{
			name:  "zero days",
			input: Input{Days: 0, FlightsPerPerson: 200},
			want:  Result{Flights: 200, Subtotal: 200, Total: 200, PerPerson: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Budget(tt.input)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Budget() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
