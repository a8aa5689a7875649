package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"meerwaarde/engine"

	"github.com/xuri/excelize/v2"
)

// LotsSheet is the sheet read from tracker spreadsheets.
const LotsSheet = "Lots"

var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"}

// ImportLots reads purchase lots from a CSV file or a tracker spreadsheet.
// CSV rows are date,quantity,price with an optional header line; xlsx
// files are read from the Lots sheet of the tracker template.
func ImportLots(path string) ([]engine.Lot, error) {
	ext := filepath.Ext(path)
	if strings.HasPrefix(ext, ".xls") {
		return readXlsxLots(path)
	}
	return readCSVLots(path)
}

func readCSVLots(path string) ([]engine.Lot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lotsFromRows(path, rows)
}

func readXlsxLots(path string) ([]engine.Lot, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(LotsSheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet of %s: %w", LotsSheet, path, err)
	}
	return lotsFromRows(path, rows)
}

func lotsFromRows(path string, rows [][]string) ([]engine.Lot, error) {
	var lots []engine.Lot
	for i, row := range rows {
		if len(row) < 3 || row[0] == "" {
			continue
		}
		// Skip a header line.
		if i == 0 {
			if _, err := parseDate(row[0]); err != nil {
				continue
			}
		}

		date, err := parseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad quantity %q", path, i+1, row[1])
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad price %q", path, i+1, row[2])
		}

		lot, err := engine.NewLot(date, qty, price)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ImportInto appends imported lots to an asset's ledger, date sorted.
func (a *Asset) ImportInto(path string) (int, error) {
	lots, err := ImportLots(path)
	if err != nil {
		return 0, err
	}
	for _, lot := range lots {
		a.Lots = a.Lots.Add(lot)
	}
	return len(lots), nil
}
