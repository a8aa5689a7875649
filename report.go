package main

import (
	"fmt"
	"os"
	"strconv"

	"meerwaarde/engine"
	"meerwaarde/store"

	"github.com/xuri/excelize/v2"
)

// Reporter is anything that can write itself as spreadsheet rows.
type Reporter interface {
	WriteTo(RowWriter) error
}

// RowWriter writes a list of rows to a named sheet.
type RowWriter interface {
	WriteRows(string, [][]interface{}) error
}

// Report wraps excelize.File and implements the RowWriter interface the
// report types need.
type Report struct {
	f        *excelize.File
	filename string
}

// NewReport creates an empty workbook that Save writes to filename.xlsx.
func NewReport(filename string) *Report {
	return &Report{f: excelize.NewFile(), filename: filename + ".xlsx"}
}

// WriteRows writes rows to the given sheet and styles them as a table.
func (r *Report) WriteRows(sheet string, rows [][]interface{}) error {
	r.f.NewSheet(sheet)

	for i := range rows {
		row := &rows[i]
		if err := r.f.SetSheetRow(sheet, "A"+strconv.Itoa(i+1), row); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	lowerRight := columnLabel(len(rows[0])-1) + strconv.Itoa(len(rows))
	return r.f.AddTable(sheet, "A1", lowerRight, tableOptions())
}

// Save writes the workbook to disk.
func (r *Report) Save() error {
	r.f.DeleteSheet("Sheet1")
	if err := r.f.SaveAs(r.filename); err != nil {
		return err
	}
	fmt.Println(r.filename, "created")
	return nil
}

// writeSheets writes each report to the workbook and saves it.
func writeSheets(r *Report, reports ...Reporter) error {
	for _, rep := range reports {
		if err := rep.WriteTo(r); err != nil {
			return err
		}
	}
	return r.Save()
}

func tableOptions() string {
	return `{
        "table_name": "table",
        "table_style": "TableStyleMedium2",
        "show_first_column": true,
        "show_last_column": false,
        "show_row_stripes": false,
        "show_column_stripes": false
    }`
}

// columnLabel converts a zero-based column index to its Excel label.
func columnLabel(n int) string {
	label := ""
	for n >= 0 {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
	}
	return label
}

// holdingsReport lists every asset's lots with their remaining balances.
type holdingsReport struct {
	portfolio *store.Portfolio
}

func (h holdingsReport) WriteTo(rw RowWriter) error {
	rows := [][]interface{}{{
		"Asset", "ISIN", "Purchased", "Quantity", "Price", "Remaining", "Remaining Cost",
	}}
	for _, a := range h.portfolio.Assets {
		for _, lot := range a.Lots {
			rows = append(rows, []interface{}{
				a.Name,
				a.ISIN,
				lot.Date.Format("2006-01-02"),
				lot.Quantity,
				RoundDec(lot.Price, 2),
				lot.Remaining,
				RoundDec(lot.Remaining*lot.Price, 2),
			})
		}
	}
	return rw.WriteRows("Holdings", rows)
}

// planReport writes one asset's multi-year liquidation schedule.
type planReport struct {
	asset string
	plan  engine.Plan
}

func (p planReport) WriteTo(rw RowWriter) error {
	rows := [][]interface{}{{
		"Year", "Price", "Units", "Revenue", "Cost Basis", "Gain",
		"Taxable", "Tax", "Net", "Remaining", "Cum. Units", "Cum. Revenue", "Cum. Tax",
	}}
	for _, e := range p.plan {
		rows = append(rows, []interface{}{
			e.Year,
			RoundDec(e.Price, 2),
			e.Units,
			RoundDec(e.Revenue, 2),
			RoundDec(e.CostBasis, 2),
			RoundDec(e.Gain, 2),
			RoundDec(e.Taxable, 2),
			RoundDec(e.Tax, 2),
			RoundDec(e.Net, 2),
			e.Remaining,
			e.CumulativeUnits,
			RoundDec(e.CumulativeRevenue, 2),
			RoundDec(e.CumulativeTax, 2),
		})
	}
	return rw.WriteRows(sheetName("Plan "+p.asset), rows)
}

// sweepReport writes one asset's price-sweep analysis.
type sweepReport struct {
	asset string
	sweep engine.Sweep
}

func (s sweepReport) WriteTo(rw RowWriter) error {
	rows := [][]interface{}{{
		"Price", "Max Units Within Limit", "Gain at Max",
		"Gain Sell All", "Tax Sell All", "Net Sell All",
	}}
	for _, pt := range s.sweep.Points {
		rows = append(rows, []interface{}{
			RoundDec(pt.Price, 2),
			pt.MaxUnits,
			RoundDec(pt.GainAtMax, 2),
			RoundDec(pt.GainSellAll, 2),
			RoundDec(pt.TaxSellAll, 2),
			RoundDec(pt.NetSellAll, 2),
		})
	}
	return rw.WriteRows(sheetName("Sweep "+s.asset), rows)
}

// sheetName truncates to the 31-character sheet name limit.
func sheetName(s string) string {
	if len(s) > 31 {
		return s[:31]
	}
	return s
}

// createLotsTemplate writes an empty tracker spreadsheet for bulk lot
// entry, unless the file already exists.
func createLotsTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	f := excelize.NewFile()
	f.NewSheet(store.LotsSheet)
	if err := f.SetSheetRow(store.LotsSheet, "A1", &[]interface{}{"Date", "Quantity", "Price"}); err != nil {
		return err
	}
	if err := f.AddTable(store.LotsSheet, "A1", "C1001", tableOptions()); err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")
	return f.SaveAs(path)
}
