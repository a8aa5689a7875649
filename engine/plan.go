package engine

import (
	"fmt"
	"math"
)

// PlanEntry is one simulated year of a liquidation plan.
type PlanEntry struct {
	Year              int     `json:"year"`
	Price             float64 `json:"price"`
	Limit             float64 `json:"limit"`
	Units             int     `json:"units"`
	Revenue           float64 `json:"revenue"`
	CostBasis         float64 `json:"cost_basis"`
	Gain              float64 `json:"gain"`
	Taxable           float64 `json:"taxable"`
	Tax               float64 `json:"tax"`
	Net               float64 `json:"net"`
	Remaining         float64 `json:"remaining"`
	CumulativeUnits   int     `json:"cumulative_units"`
	CumulativeRevenue float64 `json:"cumulative_revenue"`
	CumulativeTax     float64 `json:"cumulative_tax"`
}

// Plan is a year-by-year liquidation schedule, one entry per simulated
// year. A plan always has exactly the requested number of years; years
// past inventory exhaustion carry zero activity.
type Plan []PlanEntry

// Totals returns the cumulative units, revenue and tax over the whole plan.
func (p Plan) Totals() (units int, revenue, tax float64) {
	if len(p) == 0 {
		return 0, 0, 0
	}
	last := p[len(p)-1]
	return last.CumulativeUnits, last.CumulativeRevenue, last.CumulativeTax
}

// PlanSteadyState simulates selling the maximum tax-free quantity every
// year, with the sale price compounding at growth per year. The caller's
// ledger is never touched; the simulation runs on a deep copy. Inventory
// may outlive the plan.
func PlanSteadyState(l Ledger, salePrice float64, years int, growth float64, params TaxParams) (Plan, error) {
	return plan(l, salePrice, years, growth, params, false)
}

// PlanFullLiquidation is PlanSteadyState except that the final year sells
// every remaining unit regardless of the gain cap.
func PlanFullLiquidation(l Ledger, salePrice float64, years int, growth float64, params TaxParams) (Plan, error) {
	return plan(l, salePrice, years, growth, params, true)
}

func plan(l Ledger, salePrice float64, years int, growth float64, params TaxParams, liquidateFinal bool) (Plan, error) {
	if salePrice <= 0 || math.IsNaN(salePrice) || math.IsInf(salePrice, 0) {
		return nil, ErrInvalidPrice
	}
	if years <= 0 {
		return nil, fmt.Errorf("plan over %d years: %w", years, ErrInvalidQuantity)
	}

	working := l.Copy()
	result := make(Plan, 0, years)
	var cumulativeUnits int
	var cumulativeRevenue, cumulativeTax float64

	for year := 1; year <= years; year++ {
		price := salePrice * math.Pow(1+growth, float64(year-1))
		entry := PlanEntry{
			Year:              year,
			Price:             price,
			Limit:             params.YearlyLimit,
			CumulativeUnits:   cumulativeUnits,
			CumulativeRevenue: cumulativeRevenue,
			CumulativeTax:     cumulativeTax,
		}

		available := working.Available()
		if available <= 0 {
			result = append(result, entry)
			continue
		}

		var units int
		if liquidateFinal && year == years {
			units = int(available)
		} else {
			var err error
			units, _, err = working.MaxSellableForGain(price, params.YearlyLimit)
			if err != nil {
				return nil, err
			}
		}

		if units == 0 {
			entry.Remaining = available
			result = append(result, entry)
			continue
		}

		res, err := working.Apply(float64(units))
		if err != nil {
			return nil, err
		}

		revenue := float64(units) * price
		gain := revenue - res.Total
		taxable, tax := params.Tax(gain)

		cumulativeUnits += units
		cumulativeRevenue += revenue
		cumulativeTax += tax

		entry.Units = units
		entry.Revenue = revenue
		entry.CostBasis = res.Total
		entry.Gain = gain
		entry.Taxable = taxable
		entry.Tax = tax
		entry.Net = revenue - tax
		entry.Remaining = working.Available()
		entry.CumulativeUnits = cumulativeUnits
		entry.CumulativeRevenue = cumulativeRevenue
		entry.CumulativeTax = cumulativeTax
		result = append(result, entry)
	}

	return result, nil
}
