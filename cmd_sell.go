package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type sellCmd struct {
	asset    string
	quantity float64
	price    float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "apply a disposal to the stored ledger" }
func (*sellCmd) Usage() string {
	return `sell -asset <name> -quantity <n> [-price <p>]

  Consumes the oldest lots first and saves the portfolio. This is the
  one command that permanently changes lot balances; use calc to
  simulate. With -price the realized gain and tax are printed too.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset name or ID (required)")
	f.Float64Var(&c.quantity, "quantity", 0, "units to sell (required)")
	f.Float64Var(&c.price, "price", 0, "sale price per unit, for gain reporting")
}

func (c *sellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}
	asset, err := a.portfolio.Asset(c.asset)
	if err != nil {
		return fail(err)
	}

	res, err := asset.Sell(c.quantity)
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}

	fmt.Printf("%s: sold %g, cost basis %s\n", asset.Name, c.quantity, eur(res.Total))
	for _, con := range res.Breakdown {
		fmt.Printf("  %s  %g @ %s\n", con.Date.Format("2006-01-02"), con.Quantity, eur(con.Price))
	}
	if c.price > 0 {
		gain := c.quantity*c.price - res.Total
		taxable, tax := a.cfg.Tax.Tax(gain)
		fmt.Printf("  gain %s, taxable %s, tax %s\n", eur(gain), eur(taxable), eur(tax))
	}
	fmt.Printf("  remaining %g\n", asset.Lots.Available())
	return subcommands.ExitSuccess
}
