package engine

import (
	"errors"
	"testing"
	"time"
)

func Test_Ledger_Add_keepsDateOrder(t *testing.T) {
	var l Ledger
	for _, s := range []string{"2022-06-01", "2020-01-01", "2021-03-15"} {
		lot, err := NewLot(day(s), 10, 1)
		if err != nil {
			t.Fatal(err)
		}
		l = l.Add(lot)
	}
	for i := 1; i < len(l); i++ {
		if l[i].Date.Before(l[i-1].Date) {
			t.Fatalf("ledger out of order at %d: %v before %v", i, l[i].Date, l[i-1].Date)
		}
	}
}

func Test_Ledger_Add_sameDateKeepsInsertionOrder(t *testing.T) {
	d := day("2020-01-01")
	var l Ledger
	l = l.Add(Lot{Date: d, Quantity: 1, Price: 1, Remaining: 1})
	l = l.Add(Lot{Date: d, Quantity: 1, Price: 2, Remaining: 1})
	l = l.Add(Lot{Date: d, Quantity: 1, Price: 3, Remaining: 1})
	for i, want := range []float64{1, 2, 3} {
		if l[i].Price != want {
			t.Errorf("lot %d price = %v, want %v", i, l[i].Price, want)
		}
	}
}

func Test_Ledger_totals(t *testing.T) {
	l := Ledger{
		{Date: day("2020-01-01"), Quantity: 10, Price: 5, Remaining: 4},
		{Date: day("2021-01-01"), Quantity: 10, Price: 8, Remaining: 10},
	}
	if got := l.Available(); got != 14 {
		t.Errorf("Available() = %v, want 14", got)
	}
	if got := l.TotalCost(); got != 100 {
		t.Errorf("TotalCost() = %v, want 100", got)
	}
}

func Test_Ledger_Copy_isDeep(t *testing.T) {
	l := testLedger()
	c := l.Copy()
	if _, err := c.Apply(15); err != nil {
		t.Fatal(err)
	}
	if got := l.Available(); got != 20 {
		t.Errorf("original Available() = %v after mutating copy, want 20", got)
	}
	if got := c.Available(); got != 5 {
		t.Errorf("copy Available() = %v, want 5", got)
	}
}

func Test_NewLot(t *testing.T) {
	tests := []struct {
		name    string
		qty     float64
		price   float64
		wantErr error
	}{
		{"valid lot", 10, 5, nil},
		{"free shares are valid", 10, 0, nil},
		{"zero quantity rejected", 0, 5, ErrInvalidQuantity},
		{"negative quantity rejected", -1, 5, ErrInvalidQuantity},
		{"negative price rejected", 10, -5, ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lot, err := NewLot(time.Now(), tt.qty, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewLot() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && lot.Remaining != lot.Quantity {
				t.Errorf("NewLot() remaining = %v, want %v", lot.Remaining, lot.Quantity)
			}
		})
	}
}
