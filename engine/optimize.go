package engine

import "math"

// maxSearchIterations bounds the binary search; with the half-unit stop
// condition it is never reached in practice.
const maxSearchIterations = 100

// MaxSellableForGain finds the largest whole number of units sellable at
// salePrice without the gain exceeding targetGain, together with the exact
// FIFO gain of selling that many units. It relies on gain being
// non-decreasing in quantity, which holds under FIFO whenever the sale
// price covers the lot prices being consumed.
//
// When selling the whole position already stays at or below the target,
// every available unit is returned without searching. An empty ledger
// yields (0, 0).
func (l Ledger) MaxSellableForGain(salePrice, targetGain float64) (int, float64, error) {
	if salePrice <= 0 || math.IsNaN(salePrice) || math.IsInf(salePrice, 0) {
		return 0, 0, ErrInvalidPrice
	}

	available := l.Available()
	if available == 0 {
		return 0, 0, nil
	}

	if gainAll, err := l.Gain(available, salePrice); err == nil && gainAll <= targetGain {
		units := int(available)
		if units == 0 {
			return 0, 0, nil
		}
		// A fractional tail stays behind; report the exact whole-unit gain.
		gain, err := l.Gain(float64(units), salePrice)
		if err != nil {
			return 0, 0, err
		}
		return units, gain, nil
	}

	low, high := 0.0, available
	var best float64
	for i := 0; i < maxSearchIterations && high-low >= 0.5; i++ {
		mid := (low + high) / 2
		gain, err := l.Gain(mid, salePrice)
		if err != nil {
			// Unsatisfiable probe, shrink from above.
			high = mid
			continue
		}
		if gain <= targetGain {
			best = mid
			low = mid
		} else {
			high = mid
		}
	}

	units := int(best)

	// The search interval converges to the boundary from below, so the
	// truncated result can sit one unit short of it. Step forward while
	// the next whole unit still fits the target.
	for float64(units+1) <= available {
		gain, err := l.Gain(float64(units+1), salePrice)
		if err != nil || gain > targetGain {
			break
		}
		units++
	}

	if units == 0 {
		return 0, 0, nil
	}
	// Midpoint gains are search heuristics; report the exact whole-unit gain.
	gain, err := l.Gain(float64(units), salePrice)
	if err != nil {
		return 0, 0, err
	}
	return units, gain, nil
}

// RevenueResult answers the inverse query: the units needed to raise a
// revenue target, with the resulting proceeds, gain and cost basis.
type RevenueResult struct {
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
	Gain    float64 `json:"gain"`
	Cost    float64 `json:"cost"`
}

// UnitsForRevenue returns how many whole units must be sold at salePrice
// to raise targetRevenue, capped at what the ledger holds. No gain or tax
// ceiling applies; this is the plain "how much cash" question.
func (l Ledger) UnitsForRevenue(salePrice, targetRevenue float64) (RevenueResult, error) {
	if salePrice <= 0 || math.IsNaN(salePrice) || math.IsInf(salePrice, 0) {
		return RevenueResult{}, ErrInvalidPrice
	}

	units := math.Floor(targetRevenue / salePrice)
	if available := l.Available(); units > available {
		units = math.Floor(available)
	}
	if units <= 0 {
		return RevenueResult{}, nil
	}

	res, err := l.Cost(units)
	if err != nil {
		return RevenueResult{}, nil
	}

	revenue := units * salePrice
	return RevenueResult{
		Units:   int(units),
		Revenue: revenue,
		Gain:    revenue - res.Total,
		Cost:    res.Total,
	}, nil
}
