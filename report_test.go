package main

import (
	"reflect"
	"testing"

	"meerwaarde/engine"
)

// fakeWriter captures rows per sheet instead of touching a workbook.
type fakeWriter struct {
	sheets map[string][][]interface{}
}

func (w *fakeWriter) WriteRows(sheet string, rows [][]interface{}) error {
	if w.sheets == nil {
		w.sheets = make(map[string][][]interface{})
	}
	w.sheets[sheet] = rows
	return nil
}

func Test_columnLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{12, "M"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}
	for _, tt := range tests {
		if got := columnLabel(tt.n); got != tt.want {
			t.Errorf("columnLabel(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func Test_planReport_WriteTo(t *testing.T) {
	plan := engine.Plan{{
		Year: 1, Price: 250, Limit: 10000, Units: 40,
		Revenue: 10000, CostBasis: 0, Gain: 10000,
		Net: 10000, Remaining: 10,
		CumulativeUnits: 40, CumulativeRevenue: 10000,
	}}

	w := &fakeWriter{}
	if err := (planReport{asset: "IWDA", plan: plan}).WriteTo(w); err != nil {
		t.Fatal(err)
	}

	rows, ok := w.sheets["Plan IWDA"]
	if !ok {
		t.Fatalf("no Plan IWDA sheet written, got %v", w.sheets)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	want := []interface{}{1, 250.0, 40, 10000.0, 0.0, 10000.0, 0.0, 0.0, 10000.0, 10.0, 40, 10000.0, 0.0}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func Test_sheetName(t *testing.T) {
	long := "Plan Some Extremely Long Asset Name Indeed"
	if got := sheetName(long); len(got) != 31 {
		t.Errorf("sheetName() length = %d, want 31", len(got))
	}
	if got := sheetName("Holdings"); got != "Holdings" {
		t.Errorf("sheetName() = %v, want Holdings", got)
	}
}
