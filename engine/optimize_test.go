package engine

import (
	"errors"
	"reflect"
	"testing"
)

func Test_Ledger_MaxSellableForGain(t *testing.T) {
	tests := []struct {
		name      string
		ledger    Ledger
		price     float64
		target    float64
		wantUnits int
		wantGain  float64
	}{
		{
			"empty ledger sells nothing",
			Ledger{}, 50, 10000, 0, 0,
		},
		{
			"whole position under the target skips the search",
			Ledger{{Date: day("2020-01-01"), Quantity: 100, Price: 10, Remaining: 100}},
			50, 10000, 100, 4000,
		},
		{
			"search stops exactly at the gain cap",
			Ledger{{Date: day("2020-01-01"), Quantity: 1000, Price: 10, Remaining: 1000}},
			50, 10000, 250, 10000,
		},
		{
			"cap lands mid second lot",
			Ledger{
				{Date: day("2019-01-01"), Quantity: 100, Price: 5, Remaining: 100},
				{Date: day("2020-01-01"), Quantity: 200, Price: 20, Remaining: 200},
			},
			30, 4000, 250, 4000,
		},
		{
			// The reported gain belongs to the 10 whole units, not the
			// full fractional position (whose gain would be 63).
			"fractional position reports the whole-unit gain",
			Ledger{{Date: day("2020-01-01"), Quantity: 10.5, Price: 4, Remaining: 10.5}},
			10, 10000, 10, 60,
		},
		{
			"target of zero on a profitable ledger sells nothing",
			Ledger{{Date: day("2020-01-01"), Quantity: 100, Price: 10, Remaining: 100}},
			50, 0, 0, 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, gain, err := tt.ledger.MaxSellableForGain(tt.price, tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if units != tt.wantUnits || gain != tt.wantGain {
				t.Errorf("MaxSellableForGain() = (%v, %v), want (%v, %v)", units, gain, tt.wantUnits, tt.wantGain)
			}
		})
	}
}

// The optimizer must return the unique largest integer under the cap: one
// more unit always pushes the gain over the target.
func Test_Ledger_MaxSellableForGain_maximality(t *testing.T) {
	l := Ledger{
		{Date: day("2019-01-01"), Quantity: 100, Price: 5, Remaining: 100},
		{Date: day("2020-01-01"), Quantity: 200, Price: 20, Remaining: 200},
		{Date: day("2021-01-01"), Quantity: 50, Price: 12, Remaining: 50},
	}
	for _, target := range []float64{500, 2500, 4000, 6100, 7777} {
		units, gain, err := l.MaxSellableForGain(30, target)
		if err != nil {
			t.Fatal(err)
		}
		if gain > target {
			t.Errorf("target %v: reported gain %v exceeds target", target, gain)
		}
		if exact, err := l.Gain(float64(units), 30); err != nil || exact != gain {
			t.Errorf("target %v: reported gain %v is not the exact gain %v", target, gain, exact)
		}
		if float64(units+1) <= l.Available() {
			next, err := l.Gain(float64(units+1), 30)
			if err != nil {
				t.Fatal(err)
			}
			if next <= target {
				t.Errorf("target %v: %d units is not maximal, %d still fits (gain %v)", target, units, units+1, next)
			}
		}
	}
}

func Test_Ledger_MaxSellableForGain_invalidPrice(t *testing.T) {
	if _, _, err := testLedger().MaxSellableForGain(0, 10000); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("error = %v, want %v", err, ErrInvalidPrice)
	}
}

// Gain is non-decreasing in quantity when the sale price covers every lot
// price, the invariant the binary search rests on.
func Test_Ledger_Gain_monotoneInQuantity(t *testing.T) {
	l := Ledger{
		{Date: day("2019-01-01"), Quantity: 100, Price: 5, Remaining: 100},
		{Date: day("2020-01-01"), Quantity: 200, Price: 20, Remaining: 200},
		{Date: day("2021-01-01"), Quantity: 50, Price: 12, Remaining: 50},
	}
	prev := 0.0
	for q := 1.0; q <= l.Available(); q++ {
		gain, err := l.Gain(q, 30)
		if err != nil {
			t.Fatal(err)
		}
		if gain < prev {
			t.Fatalf("gain(%v) = %v < gain(%v) = %v", q, gain, q-1, prev)
		}
		prev = gain
	}
}

// A price-inverted ledger (later lots cheaper than the sale price, earlier
// ones above it) is not monotone, but the optimizer must still terminate
// and report a feasible, exact result.
func Test_Ledger_MaxSellableForGain_invertedPrices(t *testing.T) {
	l := Ledger{
		{Date: day("2019-01-01"), Quantity: 10, Price: 50, Remaining: 10},
		{Date: day("2020-01-01"), Quantity: 10, Price: 5, Remaining: 10},
	}
	units, gain, err := l.MaxSellableForGain(20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if units != 20 || gain != -150 {
		t.Errorf("MaxSellableForGain() = (%v, %v), want (20, -150)", units, gain)
	}
}

func Test_Ledger_UnitsForRevenue(t *testing.T) {
	l := Ledger{{Date: day("2020-01-01"), Quantity: 100, Price: 10, Remaining: 100}}
	tests := []struct {
		name   string
		price  float64
		target float64
		want   RevenueResult
	}{
		{
			"exact revenue target",
			50, 5000,
			RevenueResult{Units: 100, Revenue: 5000, Gain: 4000, Cost: 1000},
		},
		{
			"target above the position clamps to availability",
			50, 12000,
			RevenueResult{Units: 100, Revenue: 5000, Gain: 4000, Cost: 1000},
		},
		{
			"fractional share targets floor to whole units",
			50, 125,
			RevenueResult{Units: 2, Revenue: 100, Gain: 80, Cost: 20},
		},
		{
			"target below one unit yields the zero result",
			50, 25,
			RevenueResult{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.UnitsForRevenue(tt.price, tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnitsForRevenue() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := l.UnitsForRevenue(0, 1000); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("error = %v, want %v", err, ErrInvalidPrice)
	}
}
