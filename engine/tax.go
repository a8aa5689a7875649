package engine

import "math"

// Belgian capital-gains constants (meerwaardebelasting). The yearly limit
// is fixed each year; unused allowance never carries over.
const (
	DefaultYearlyLimit = 10000
	DefaultBufferZone  = 1000
	DefaultTaxRate     = 0.10
)

// TaxParams are the yearly tax-rule inputs. They are pure parameters, not
// persisted state.
type TaxParams struct {
	YearlyLimit float64 `yaml:"yearly_limit" json:"yearly_limit"`
	BufferZone  float64 `yaml:"buffer_zone" json:"buffer_zone"`
	TaxRate     float64 `yaml:"tax_rate" json:"tax_rate"`
}

// DefaultTaxParams returns the Belgian defaults: a €10,000 tax-free gain
// per year, a €1,000 buffer zone and a 10% flat rate.
func DefaultTaxParams() TaxParams {
	return TaxParams{
		YearlyLimit: DefaultYearlyLimit,
		BufferZone:  DefaultBufferZone,
		TaxRate:     DefaultTaxRate,
	}
}

// Tax applies the simple yearly rule: gains up to the limit are free, the
// excess above it is taxed at the flat rate.
func (p TaxParams) Tax(gain float64) (taxable, tax float64) {
	if gain <= p.YearlyLimit {
		return 0, 0
	}
	taxable = gain - p.YearlyLimit
	return taxable, taxable * p.TaxRate
}

// BufferedTax is the outcome of the buffer-zone rule.
type BufferedTax struct {
	Taxable         float64 `json:"taxable"`
	Tax             float64 `json:"tax"`
	BufferUsed      float64 `json:"buffer_used"`
	BufferRemaining float64 `json:"buffer_remaining"`
}

// TaxWithBuffer applies the buffer-zone rule. An excess within the
// available buffer is absorbed tax free and consumes the buffer. Once the
// excess goes beyond it, the entire excess is taxed, not just the portion
// above the buffer; the buffer then resets to zero when the tax reaches
// the nominal buffer cap, and otherwise shrinks by the excess.
func (p TaxParams) TaxWithBuffer(gain, bufferAvailable float64) BufferedTax {
	if gain <= p.YearlyLimit {
		return BufferedTax{BufferRemaining: bufferAvailable}
	}

	excess := gain - p.YearlyLimit
	if excess <= bufferAvailable {
		return BufferedTax{BufferUsed: excess, BufferRemaining: bufferAvailable - excess}
	}

	tax := excess * p.TaxRate
	remaining := p.BufferZone - excess
	if tax >= p.BufferZone {
		remaining = 0
	}
	return BufferedTax{
		Taxable:         excess,
		Tax:             tax,
		BufferUsed:      excess,
		BufferRemaining: math.Max(0, remaining),
	}
}
