package main

import (
	"context"
	"flag"
	"fmt"

	"meerwaarde/engine"

	"github.com/google/subcommands"
)

type reportCmd struct {
	out   string
	asset string
	price float64
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the portfolio workbook" }
func (*reportCmd) Usage() string {
	return `report [-out <name>] [-asset <name> -price <p>]

  Writes a spreadsheet with a Holdings sheet listing every lot. With an
  asset and a price, plan and sweep sheets for that holding are added:
  the plan uses the config defaults, the sweep spans half to double the
  given price.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "out", "Portfolio Report", "output file name, without extension")
	f.StringVar(&c.asset, "asset", "", "asset to add plan and sweep sheets for")
	f.Float64Var(&c.price, "price", 0, "sale price for the plan and sweep sheets")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}

	reports := []Reporter{holdingsReport{portfolio: a.portfolio}}

	if c.asset != "" {
		if c.price <= 0 {
			return fail(fmt.Errorf("the -price flag is required with -asset"))
		}
		asset, err := a.portfolio.Asset(c.asset)
		if err != nil {
			return fail(err)
		}

		plan, err := engine.PlanSteadyState(asset.Lots, c.price, a.cfg.Plan.Years, a.cfg.Plan.Growth, a.cfg.Tax)
		if err != nil {
			return fail(err)
		}
		sweep, err := asset.Lots.PriceSweep(c.price/2, c.price*2, 12, a.cfg.Tax)
		if err != nil {
			return fail(err)
		}
		reports = append(reports,
			planReport{asset: asset.Name, plan: plan},
			sweepReport{asset: asset.Name, sweep: sweep})
	}

	if err := writeSheets(NewReport(c.out), reports...); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type templateCmd struct {
	out string
}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "create an empty lot tracker spreadsheet" }
func (*templateCmd) Usage() string {
	return `template [-out <file.xlsx>]

  Creates a tracker spreadsheet with the columns the import command
  expects: Date, Quantity, Price.
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "out", "Lots Tracker.xlsx", "output file")
}

func (c *templateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := createLotsTemplate(c.out); err != nil {
		return fail(err)
	}
	fmt.Println(c.out, "created")
	return subcommands.ExitSuccess
}
