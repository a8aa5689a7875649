// Package store persists portfolios of assets and their purchase lots as a
// single JSON file, optionally sealed with a passphrase. The engine never
// sees any of this; the store hands it plain ledgers and writes accepted
// disposals back.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"meerwaarde/engine"

	"github.com/google/uuid"
)

var (
	// ErrAssetNotFound signals a lookup by a name or ID the portfolio does
	// not contain.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetExists signals an attempt to add an asset under a name that
	// is already taken.
	ErrAssetExists = errors.New("asset already exists")

	// ErrPortfolioSealed signals loading a sealed file without a
	// passphrase. Decoding the envelope as a portfolio would silently
	// yield an empty one, and the next save would overwrite the sealed
	// data with plaintext.
	ErrPortfolioSealed = errors.New("portfolio is sealed; set the passphrase environment variable")
)

// Asset is one holding: a named security and its purchase lots.
type Asset struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	ISIN string        `json:"isin,omitempty"`
	Lots engine.Ledger `json:"lots"`
}

// Portfolio is the root of the stored state.
type Portfolio struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Assets    []*Asset  `json:"assets"`
}

// New creates an empty portfolio.
func New(name string) *Portfolio {
	return &Portfolio{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Asset finds a holding by name or ID.
func (p *Portfolio) Asset(name string) (*Asset, error) {
	for _, a := range p.Assets {
		if a.Name == name || a.ID == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrAssetNotFound)
}

// AddAsset registers a new holding with an empty ledger.
func (p *Portfolio) AddAsset(name, isin string) (*Asset, error) {
	if name == "" {
		return nil, errors.New("asset name is required")
	}
	if _, err := p.Asset(name); err == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrAssetExists)
	}
	a := &Asset{ID: uuid.NewString(), Name: name, ISIN: isin}
	p.Assets = append(p.Assets, a)
	return a, nil
}

// RemoveAsset deletes a holding and its lots.
func (p *Portfolio) RemoveAsset(name string) error {
	for i, a := range p.Assets {
		if a.Name == name || a.ID == name {
			p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrAssetNotFound)
}

// Buy records a purchase lot, keeping the ledger date ordered.
func (a *Asset) Buy(date time.Time, quantity, price float64) error {
	lot, err := engine.NewLot(date, quantity, price)
	if err != nil {
		return err
	}
	a.Lots = a.Lots.Add(lot)
	return nil
}

// Deposit records an amount-only purchase: one unit at the given amount,
// for holdings tracked by invested money rather than share count.
func (a *Asset) Deposit(date time.Time, amount float64) error {
	if amount <= 0 {
		return engine.ErrInvalidPrice
	}
	return a.Buy(date, 1, amount)
}

// Sell applies a real disposal to the stored ledger and returns the FIFO
// cost breakdown. The caller is expected to save the portfolio afterwards;
// this is the one place simulation results become persistent state.
func (a *Asset) Sell(quantity float64) (engine.CostResult, error) {
	if quantity <= 0 {
		return engine.CostResult{}, engine.ErrInvalidQuantity
	}
	return a.Lots.Apply(quantity)
}

// Load reads a portfolio file. With a passphrase the file must be a sealed
// envelope; without one it is read as plain JSON.
func Load(path, passphrase string) (*Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if passphrase != "" {
		raw, err = open(raw, passphrase)
		if err != nil {
			return nil, err
		}
	} else if sealed(raw) {
		return nil, ErrPortfolioSealed
	}

	var p Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding portfolio %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the portfolio, sealed when a passphrase is given. The file
// is written atomically via a rename.
func (p *Portfolio) Save(path, passphrase string) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	if passphrase != "" {
		raw, err = seal(raw, passphrase)
		if err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
