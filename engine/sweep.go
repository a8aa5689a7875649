package engine

import (
	"fmt"
	"math"
)

// SweepPoint is the sale analysis at one candidate price.
type SweepPoint struct {
	Price       float64 `json:"price"`
	MaxUnits    int     `json:"max_units_within_limit"`
	GainAtMax   float64 `json:"gain_at_max"`
	GainSellAll float64 `json:"gain_if_sell_all"`
	TaxSellAll  float64 `json:"tax_if_sell_all"`
	NetSellAll  float64 `json:"net_if_sell_all"`
}

// Sweep evaluates a holding across a range of candidate sale prices.
// BreakEven is the price at which selling everything recovers the cost
// basis.
type Sweep struct {
	Points    []SweepPoint `json:"points"`
	BreakEven float64      `json:"break_even"`
	Available int          `json:"available"`
	TotalCost float64      `json:"total_cost"`
}

// PriceSweep computes, for steps+1 evenly spaced prices between minPrice
// and maxPrice, the tax-free maximum sale and the gain, tax and net of
// dumping the whole position.
func (l Ledger) PriceSweep(minPrice, maxPrice float64, steps int, params TaxParams) (Sweep, error) {
	if minPrice <= 0 || maxPrice < minPrice || math.IsNaN(minPrice) || math.IsNaN(maxPrice) {
		return Sweep{}, ErrInvalidPrice
	}
	if steps <= 0 {
		return Sweep{}, fmt.Errorf("sweep with %d steps: %w", steps, ErrInvalidQuantity)
	}

	available := l.Available()
	totalCost := l.TotalCost()
	if available == 0 {
		return Sweep{}, ErrInsufficientInventory
	}

	step := (maxPrice - minPrice) / float64(steps)
	points := make([]SweepPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		price := minPrice + float64(i)*step
		maxUnits, gainAtMax, err := l.MaxSellableForGain(price, params.YearlyLimit)
		if err != nil {
			return Sweep{}, err
		}

		gainAll := available*price - totalCost
		_, taxAll := params.Tax(gainAll)
		points = append(points, SweepPoint{
			Price:       price,
			MaxUnits:    maxUnits,
			GainAtMax:   gainAtMax,
			GainSellAll: gainAll,
			TaxSellAll:  taxAll,
			NetSellAll:  available*price - taxAll,
		})
	}

	return Sweep{
		Points:    points,
		BreakEven: totalCost / available,
		Available: int(available),
		TotalCost: totalCost,
	}, nil
}
