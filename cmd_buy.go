package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
)

type buyCmd struct {
	asset    string
	date     string
	quantity float64
	price    float64
	amount   float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase lot" }
func (*buyCmd) Usage() string {
	return `buy -asset <name> [-date <yyyy-mm-dd>] -quantity <n> -price <p>
buy -asset <name> [-date <yyyy-mm-dd>] -amount <sum>

  Records a purchase. With -amount the holding is tracked by invested
  money instead of share count: one unit at the deposited amount.
  The date defaults to today.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset name or ID (required)")
	f.StringVar(&c.date, "date", "", "purchase date, yyyy-mm-dd (default today)")
	f.Float64Var(&c.quantity, "quantity", 0, "units bought")
	f.Float64Var(&c.price, "price", 0, "price per unit")
	f.Float64Var(&c.amount, "amount", 0, "amount deposited (amount-only mode)")
}

func (c *buyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if c.date != "" {
		var err error
		date, err = time.Parse("2006-01-02", c.date)
		if err != nil {
			return fail(fmt.Errorf("parsing date %q: %w", c.date, err))
		}
	}

	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}
	asset, err := a.portfolio.Asset(c.asset)
	if err != nil {
		return fail(err)
	}

	if c.amount > 0 {
		err = asset.Deposit(date, c.amount)
	} else {
		err = asset.Buy(date, c.quantity, c.price)
	}
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}

	if c.amount > 0 {
		fmt.Printf("%s: deposited %s on %s\n", asset.Name, eur(c.amount), date.Format("2006-01-02"))
	} else {
		fmt.Printf("%s: bought %g @ %s on %s\n", asset.Name, c.quantity, eur(c.price), date.Format("2006-01-02"))
	}
	return subcommands.ExitSuccess
}
