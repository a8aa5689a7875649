package engine

import "math"

// Outcome is the full financial picture of one candidate sale.
type Outcome struct {
	Units     int     `json:"units"`
	CostBasis float64 `json:"cost_basis"`
	Revenue   float64 `json:"revenue"`
	Gain      float64 `json:"gain"`
	Taxable   float64 `json:"taxable"`
	Tax       float64 `json:"tax"`
	Net       float64 `json:"net"`
}

// ScenarioRequest selects the single-year scenarios to analyze. Quantity
// and TargetRevenue are optional; zero leaves the scenario out.
type ScenarioRequest struct {
	SalePrice     float64
	Quantity      int
	TargetRevenue float64
	Params        TaxParams
}

// Scenarios holds the answers for one holding at one sale price.
type Scenarios struct {
	Available     int      `json:"available"`
	TotalCost     float64  `json:"total_cost"`
	SalePrice     float64  `json:"sale_price"`
	WithinLimit   *Outcome `json:"within_limit,omitempty"`
	SellAll       *Outcome `json:"sell_all,omitempty"`
	Quantity      *Outcome `json:"quantity,omitempty"`
	TargetRevenue *Outcome `json:"target_revenue,omitempty"`
}

// Analyze answers the single-year questions for one holding: how much can
// be sold while staying inside the yearly limit, what selling everything
// costs, and optionally the outcome of a fixed quantity or of raising a
// revenue target.
func (l Ledger) Analyze(req ScenarioRequest) (Scenarios, error) {
	if req.SalePrice <= 0 || math.IsNaN(req.SalePrice) || math.IsInf(req.SalePrice, 0) {
		return Scenarios{}, ErrInvalidPrice
	}

	available := l.Available()
	s := Scenarios{
		Available: int(available),
		TotalCost: l.TotalCost(),
		SalePrice: req.SalePrice,
	}
	if available == 0 {
		return s, ErrInsufficientInventory
	}

	maxUnits, _, err := l.MaxSellableForGain(req.SalePrice, req.Params.YearlyLimit)
	if err != nil {
		return s, err
	}
	if maxUnits > 0 {
		s.WithinLimit, err = l.outcome(maxUnits, req.SalePrice, req.Params)
		if err != nil {
			return s, err
		}
	}

	// Scenarios deal in whole units; a fractional tail stays in the ledger.
	s.SellAll, err = l.outcome(int(available), req.SalePrice, req.Params)
	if err != nil {
		return s, err
	}

	if q := req.Quantity; q > 0 && float64(q) <= available {
		s.Quantity, err = l.outcome(q, req.SalePrice, req.Params)
		if err != nil {
			return s, err
		}
	}

	if req.TargetRevenue > 0 {
		rr, err := l.UnitsForRevenue(req.SalePrice, req.TargetRevenue)
		if err != nil {
			return s, err
		}
		if rr.Units > 0 {
			taxable, tax := req.Params.Tax(rr.Gain)
			s.TargetRevenue = &Outcome{
				Units:     rr.Units,
				CostBasis: rr.Cost,
				Revenue:   rr.Revenue,
				Gain:      rr.Gain,
				Taxable:   taxable,
				Tax:       tax,
				Net:       rr.Revenue - tax,
			}
		}
	}

	return s, nil
}

// outcome resolves a whole-unit sale and applies the simple tax rule.
func (l Ledger) outcome(units int, salePrice float64, params TaxParams) (*Outcome, error) {
	res, err := l.Cost(float64(units))
	if err != nil {
		return nil, err
	}
	revenue := float64(units) * salePrice
	gain := revenue - res.Total
	taxable, tax := params.Tax(gain)
	return &Outcome{
		Units:     units,
		CostBasis: res.Total,
		Revenue:   revenue,
		Gain:      gain,
		Taxable:   taxable,
		Tax:       tax,
		Net:       revenue - tax,
	}, nil
}
