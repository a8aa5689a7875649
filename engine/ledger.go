// Package engine computes capital-gains outcomes for security sales under
// FIFO lot accounting and a yearly tax-free allowance with a buffer zone.
//
// The engine is purely computational. It consumes a date-ordered collection
// of purchase lots and tax parameters, and returns plain numeric results.
// It holds no process-wide state and never persists anything; callers own
// their ledgers and decide when a disposal is committed. The only mutating
// operation is Ledger.Apply, and the planners run on a deep copy so a
// simulation can never touch the caller's ledger.
package engine

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/mohae/deepcopy"
)

var (
	// ErrInsufficientInventory signals a disposal larger than the units
	// remaining across all lots. A failed resolution never yields a
	// partial cost.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrInvalidQuantity signals a negative or non-numeric quantity at the
	// engine boundary.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidPrice signals a non-positive or non-numeric price at the
	// engine boundary.
	ErrInvalidPrice = errors.New("invalid price")
)

// Lot is a single purchase event. Remaining starts at Quantity and only
// ever decreases as disposals consume it; a fully consumed lot stays in
// the ledger as a historical record contributing zero availability.
type Lot struct {
	Date      time.Time `json:"date"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Remaining float64   `json:"remaining"`
}

// NewLot validates and builds a purchase lot with Remaining initialized to
// the full quantity.
func NewLot(date time.Time, quantity, price float64) (Lot, error) {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Lot{}, ErrInvalidQuantity
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return Lot{}, ErrInvalidPrice
	}
	return Lot{Date: date, Quantity: quantity, Price: price, Remaining: quantity}, nil
}

// Ledger is the ordered list of purchase lots for one holding, ascending
// by purchase date. Same-date lots keep their insertion order.
type Ledger []Lot

// Add inserts a lot, keeping the ledger sorted by purchase date.
func (l Ledger) Add(lot Lot) Ledger {
	next := append(l, lot)
	sort.SliceStable(next, func(i, j int) bool { return next[i].Date.Before(next[j].Date) })
	return next
}

// Available returns the total units not yet consumed by any disposal.
func (l Ledger) Available() float64 {
	var total float64
	for i := range l {
		total += l[i].Remaining
	}
	return total
}

// TotalCost returns the acquisition cost of all remaining units.
func (l Ledger) TotalCost() float64 {
	var total float64
	for i := range l {
		total += l[i].Remaining * l[i].Price
	}
	return total
}

// Copy returns a deep copy of the ledger. Planners simulate against a copy
// so the caller's lots are never mutated.
func (l Ledger) Copy() Ledger {
	if l == nil {
		return nil
	}
	return deepcopy.Copy(l).(Ledger)
}

// byDate returns lot indices in purchase-date order without reordering the
// ledger itself, so resolution consumes oldest lots first no matter how
// the slice was assembled.
func (l Ledger) byDate() []int {
	idx := make([]int, len(l))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return l[idx[a]].Date.Before(l[idx[b]].Date) })
	return idx
}
