package engine

import (
	"errors"
	"reflect"
	"testing"
)

func Test_Ledger_PriceSweep(t *testing.T) {
	l := Ledger{{Date: day("2020-01-01"), Quantity: 100, Price: 10, Remaining: 100}}
	got, err := l.PriceSweep(10, 20, 2, DefaultTaxParams())
	if err != nil {
		t.Fatal(err)
	}

	want := Sweep{
		Points: []SweepPoint{
			{Price: 10, MaxUnits: 100, GainAtMax: 0, GainSellAll: 0, TaxSellAll: 0, NetSellAll: 1000},
			{Price: 15, MaxUnits: 100, GainAtMax: 500, GainSellAll: 500, TaxSellAll: 0, NetSellAll: 1500},
			{Price: 20, MaxUnits: 100, GainAtMax: 1000, GainSellAll: 1000, TaxSellAll: 0, NetSellAll: 2000},
		},
		BreakEven: 10,
		Available: 100,
		TotalCost: 1000,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PriceSweep() = %+v, want %+v", got, want)
	}
}

func Test_Ledger_PriceSweep_errors(t *testing.T) {
	l := Ledger{{Date: day("2020-01-01"), Quantity: 100, Price: 10, Remaining: 100}}
	if _, err := l.PriceSweep(0, 20, 2, DefaultTaxParams()); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("zero min price error = %v, want %v", err, ErrInvalidPrice)
	}
	if _, err := l.PriceSweep(20, 10, 2, DefaultTaxParams()); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("inverted range error = %v, want %v", err, ErrInvalidPrice)
	}
	if _, err := l.PriceSweep(10, 20, 0, DefaultTaxParams()); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero steps error = %v, want %v", err, ErrInvalidQuantity)
	}
	if _, err := (Ledger{}).PriceSweep(10, 20, 2, DefaultTaxParams()); !errors.Is(err, ErrInsufficientInventory) {
		t.Errorf("empty ledger error = %v, want %v", err, ErrInsufficientInventory)
	}
}
