package engine

import (
	"reflect"
	"testing"
)

func Test_TaxParams_Tax(t *testing.T) {
	p := DefaultTaxParams()
	tests := []struct {
		name        string
		gain        float64
		wantTaxable float64
		wantTax     float64
	}{
		{"gain below limit is free", 4000, 0, 0},
		{"gain at the limit is free", 10000, 0, 0},
		{"one euro over the limit", 10001, 1, 0.1},
		{"well over the limit", 25000, 15000, 1500},
		{"losses owe nothing", -500, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable, tax := p.Tax(tt.gain)
			if taxable != tt.wantTaxable || tax != tt.wantTax {
				t.Errorf("Tax(%v) = (%v, %v), want (%v, %v)", tt.gain, taxable, tax, tt.wantTaxable, tt.wantTax)
			}
		})
	}
}

func Test_TaxParams_TaxWithBuffer(t *testing.T) {
	p := DefaultTaxParams()
	tests := []struct {
		name   string
		gain   float64
		buffer float64
		want   BufferedTax
	}{
		{
			"at the limit keeps the full buffer",
			10000, 1000,
			BufferedTax{BufferRemaining: 1000},
		},
		{
			"excess inside the buffer is absorbed tax free",
			10500, 1000,
			BufferedTax{BufferUsed: 500, BufferRemaining: 500},
		},
		{
			"buffer exceeded taxes the entire excess",
			10500, 300,
			BufferedTax{Taxable: 500, Tax: 50, BufferUsed: 500, BufferRemaining: 500},
		},
		{
			"excess past the nominal cap floors the buffer at zero",
			11500, 1000,
			BufferedTax{Taxable: 1500, Tax: 150, BufferUsed: 1500, BufferRemaining: 0},
		},
		{
			"tax reaching the cap resets the buffer",
			25000, 1000,
			BufferedTax{Taxable: 15000, Tax: 1500, BufferUsed: 15000, BufferRemaining: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.TaxWithBuffer(tt.gain, tt.buffer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TaxWithBuffer(%v, %v) = %+v, want %+v", tt.gain, tt.buffer, got, tt.want)
			}
		})
	}
}
