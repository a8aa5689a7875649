package engine

import (
	"math"
	"time"
)

// Consumption records how many units a disposal drew from one lot.
type Consumption struct {
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
	Price    float64   `json:"price"`
}

// CostResult is the outcome of resolving a disposal against the ledger:
// the blended cost basis and the oldest-first consumption breakdown.
type CostResult struct {
	Total     float64       `json:"total"`
	Breakdown []Consumption `json:"breakdown"`
}

// Cost resolves the FIFO cost basis of selling quantity units. It walks
// the lots oldest first, never mutates the ledger, and either satisfies
// the full quantity or fails with ErrInsufficientInventory. A zero
// quantity resolves to zero cost with an empty breakdown.
func (l Ledger) Cost(quantity float64) (CostResult, error) {
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return CostResult{}, ErrInvalidQuantity
	}

	var res CostResult
	needed := quantity
	for _, i := range l.byDate() {
		if needed <= 0 {
			break
		}
		lot := &l[i]
		if lot.Remaining <= 0 {
			continue
		}
		use := math.Min(needed, lot.Remaining)
		res.Total += use * lot.Price
		res.Breakdown = append(res.Breakdown, Consumption{Date: lot.Date, Quantity: use, Price: lot.Price})
		needed -= use
	}

	if needed > 0 {
		return CostResult{}, ErrInsufficientInventory
	}
	return res, nil
}

// Gain returns the gain of selling quantity units at salePrice. A ledger
// that cannot satisfy the quantity is reported as an error, never as a
// zero gain.
func (l Ledger) Gain(quantity, salePrice float64) (float64, error) {
	if salePrice < 0 || math.IsNaN(salePrice) || math.IsInf(salePrice, 0) {
		return 0, ErrInvalidPrice
	}
	res, err := l.Cost(quantity)
	if err != nil {
		return 0, err
	}
	return quantity*salePrice - res.Total, nil
}

// Apply commits a disposal, decrementing Remaining on the consumed lots
// oldest first. It fails without touching the ledger when the quantity
// cannot be satisfied.
func (l Ledger) Apply(quantity float64) (CostResult, error) {
	res, err := l.Cost(quantity)
	if err != nil {
		return CostResult{}, err
	}

	needed := quantity
	for _, i := range l.byDate() {
		if needed <= 0 {
			break
		}
		lot := &l[i]
		if lot.Remaining <= 0 {
			continue
		}
		use := math.Min(needed, lot.Remaining)
		lot.Remaining -= use
		needed -= use
	}
	return res, nil
}
