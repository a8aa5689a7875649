package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type sweepCmd struct {
	asset string
	min   float64
	max   float64
	steps int
	xlsx  bool
	json  bool
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "evaluate a holding across a price range" }
func (*sweepCmd) Usage() string {
	return `sweep -asset <name> -min <p> -max <p> [-steps <n>] [-xlsx] [-json]

  Computes, for evenly spaced prices in the range, the maximum tax-free
  sale and the outcome of selling everything. Also reports the
  break-even price.
`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset name or ID (required)")
	f.Float64Var(&c.min, "min", 0, "lowest price (required)")
	f.Float64Var(&c.max, "max", 0, "highest price (required)")
	f.IntVar(&c.steps, "steps", 10, "number of price steps")
	f.BoolVar(&c.xlsx, "xlsx", false, "also write the sweep as a spreadsheet")
	f.BoolVar(&c.json, "json", false, "print JSON instead of a table")
}

func (c *sweepCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}
	asset, err := a.portfolio.Asset(c.asset)
	if err != nil {
		return fail(err)
	}

	sweep, err := asset.Lots.PriceSweep(c.min, c.max, c.steps, a.cfg.Tax)
	if err != nil {
		return fail(err)
	}

	if c.json {
		printJSON(sweep)
	} else {
		fmt.Printf("%s: %d units held, cost basis %s, break-even %s\n\n",
			asset.Name, sweep.Available, eur(sweep.TotalCost), eur(sweep.BreakEven))
		fmt.Println("    Price  Max free      Gain     All gain      All tax      All net")
		for _, pt := range sweep.Points {
			fmt.Printf("%9s %9d %9s %12s %12s %12s\n",
				eur(pt.Price), pt.MaxUnits, eur(pt.GainAtMax), eur(pt.GainSellAll), eur(pt.TaxSellAll), eur(pt.NetSellAll))
		}
	}

	if c.xlsx {
		r := NewReport(asset.Name + " Sweep")
		if err := writeSheets(r, sweepReport{asset: asset.Name, sweep: sweep}); err != nil {
			return fail(err)
		}
	}
	return subcommands.ExitSuccess
}
