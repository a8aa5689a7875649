package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addAssetCmd struct {
	name string
	isin string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "register a new holding" }
func (*addAssetCmd) Usage() string {
	return `add-asset -name <name> [-isin <isin>]

  Registers a holding with an empty lot ledger. Names must be unique.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "asset name (required)")
	f.StringVar(&c.isin, "isin", "", "ISIN identifier")
}

func (c *addAssetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}

	asset, err := a.portfolio.AddAsset(c.name, c.isin)
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}

	fmt.Printf("Added %s (%s)\n", asset.Name, asset.ID)
	return subcommands.ExitSuccess
}

type removeAssetCmd struct {
	name string
}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "delete a holding and its lots" }
func (*removeAssetCmd) Usage() string {
	return `remove-asset -name <name>
`
}

func (c *removeAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "asset name or ID (required)")
}

func (c *removeAssetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}

	if err := a.portfolio.RemoveAsset(c.name); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}

	fmt.Println("Removed", c.name)
	return subcommands.ExitSuccess
}
