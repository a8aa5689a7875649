package main

import (
	"context"
	"flag"
	"fmt"

	"meerwaarde/engine"

	"github.com/google/subcommands"
)

type planCmd struct {
	asset  string
	price  float64
	years  int
	growth float64
	full   bool
	xlsx   bool
	pdf    bool
	json   bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "simulate a multi-year disposal schedule" }
func (*planCmd) Usage() string {
	return `plan -asset <name> -price <p> [-years <n>] [-growth <rate>] [-full] [-xlsx] [-pdf] [-json]

  Sells the maximum tax-free quantity each year, the price compounding
  at the growth rate. With -full the final year dumps every remaining
  unit regardless of the yearly limit. Years and growth default from
  the config. The stored ledger is never touched.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset name or ID (required)")
	f.Float64Var(&c.price, "price", 0, "sale price per unit in year 1 (required)")
	f.IntVar(&c.years, "years", 0, "years to simulate (default from config)")
	f.Float64Var(&c.growth, "growth", 0, "yearly price growth rate (default from config)")
	f.BoolVar(&c.full, "full", false, "liquidate everything in the final year")
	f.BoolVar(&c.xlsx, "xlsx", false, "also write the plan as a spreadsheet")
	f.BoolVar(&c.pdf, "pdf", false, "also write the plan as a PDF")
	f.BoolVar(&c.json, "json", false, "print JSON instead of a table")
}

func (c *planCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}
	asset, err := a.portfolio.Asset(c.asset)
	if err != nil {
		return fail(err)
	}

	years := c.years
	if years == 0 {
		years = a.cfg.Plan.Years
	}
	growth := c.growth
	if growth == 0 {
		growth = a.cfg.Plan.Growth
	}

	var plan engine.Plan
	if c.full {
		plan, err = engine.PlanFullLiquidation(asset.Lots, c.price, years, growth, a.cfg.Tax)
	} else {
		plan, err = engine.PlanSteadyState(asset.Lots, c.price, years, growth, a.cfg.Tax)
	}
	if err != nil {
		return fail(err)
	}

	if c.json {
		printJSON(plan)
	} else {
		printPlan(asset.Name, plan)
	}

	if c.xlsx {
		r := NewReport(asset.Name + " Plan")
		if err := writeSheets(r, planReport{asset: asset.Name, plan: plan}); err != nil {
			return fail(err)
		}
	}
	if c.pdf {
		p := planPDF{asset: asset.Name, plan: plan, params: a.cfg.Tax, growth: growth}
		if err := p.Write(asset.Name + " Plan.pdf"); err != nil {
			return fail(err)
		}
	}
	return subcommands.ExitSuccess
}

func printPlan(name string, plan engine.Plan) {
	fmt.Printf("%s disposal plan:\n", name)
	fmt.Println("Year     Price  Units      Revenue         Gain          Tax          Net   Left")
	for _, e := range plan {
		fmt.Printf("%4d %9s %6d %12s %12s %12s %12s %6.0f\n",
			e.Year, eur(e.Price), e.Units, eur(e.Revenue), eur(e.Gain), eur(e.Tax), eur(e.Net), e.Remaining)
	}
	units, revenue, tax := plan.Totals()
	fmt.Printf("\nTotal: %d units, revenue %s, tax %s, net %s\n",
		units, eur(revenue), eur(tax), eur(revenue-tax))
}
