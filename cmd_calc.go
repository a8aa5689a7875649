package main

import (
	"context"
	"flag"
	"fmt"

	"meerwaarde/engine"

	"github.com/google/subcommands"
)

type calcCmd struct {
	asset    string
	price    float64
	quantity int
	revenue  float64
	buffer   float64
	json     bool
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "simulate sale scenarios at one price" }
func (*calcCmd) Usage() string {
	return `calc -asset <name> -price <p> [-quantity <n>] [-revenue <sum>] [-json]

  Answers the single-year questions: the maximum tax-free sale, the
  outcome of selling everything, and optionally a fixed quantity or a
  revenue target. Nothing is written; the ledger stays untouched.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset name or ID (required)")
	f.Float64Var(&c.price, "price", 0, "sale price per unit (required)")
	f.IntVar(&c.quantity, "quantity", 0, "also evaluate selling exactly this many units")
	f.Float64Var(&c.revenue, "revenue", 0, "also evaluate raising this revenue")
	f.Float64Var(&c.buffer, "buffer", -1, "apply the buffer-zone rule with this much buffer left")
	f.BoolVar(&c.json, "json", false, "print JSON instead of a table")
}

func (c *calcCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}
	asset, err := a.portfolio.Asset(c.asset)
	if err != nil {
		return fail(err)
	}

	s, err := asset.Lots.Analyze(engine.ScenarioRequest{
		SalePrice:     c.price,
		Quantity:      c.quantity,
		TargetRevenue: c.revenue,
		Params:        a.cfg.Tax,
	})
	if err != nil {
		return fail(err)
	}

	if c.json {
		printJSON(s)
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s: %d units held, cost basis %s, price %s\n\n",
		asset.Name, s.Available, eur(s.TotalCost), eur(s.SalePrice))
	printOutcome("Max tax-free sale", s.WithinLimit)
	printOutcome("Sell everything", s.SellAll)
	printOutcome(fmt.Sprintf("Sell %d units", c.quantity), s.Quantity)
	printOutcome(fmt.Sprintf("Raise %s", eur(c.revenue)), s.TargetRevenue)

	if c.buffer >= 0 && s.SellAll != nil {
		b := a.cfg.Tax.TaxWithBuffer(s.SellAll.Gain, c.buffer)
		fmt.Printf("Sell everything under the buffer rule (%s buffer left):\n", eur(c.buffer))
		fmt.Printf("  taxable %s, tax %s, buffer used %s, buffer remaining %s\n\n",
			eur(b.Taxable), eur(b.Tax), eur(b.BufferUsed), eur(b.BufferRemaining))
	}
	return subcommands.ExitSuccess
}

func printOutcome(label string, o *engine.Outcome) {
	if o == nil {
		return
	}
	fmt.Printf("%s:\n", label)
	fmt.Printf("  units %d, revenue %s, gain %s\n", o.Units, eur(o.Revenue), eur(o.Gain))
	fmt.Printf("  taxable %s, tax %s, net %s\n\n", eur(o.Taxable), eur(o.Tax), eur(o.Net))
}
