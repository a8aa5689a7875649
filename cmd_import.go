package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type importCmd struct {
	asset string
	file  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk-load purchase lots from a file" }
func (*importCmd) Usage() string {
	return `import -asset <name> -file <lots.xlsx|lots.csv>

  Reads date, quantity, price rows from a tracker spreadsheet or a CSV
  file and merges them into the asset's ledger, keeping date order.
  Use the template command to create an empty tracker.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset name or ID (required)")
	f.StringVar(&c.file, "file", "", "file to import (required)")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail(fmt.Errorf("the -file flag is required"))
	}

	a, err := loadApp(true)
	if err != nil {
		return fail(err)
	}
	asset, err := a.portfolio.Asset(c.asset)
	if err != nil {
		return fail(err)
	}

	n, err := asset.ImportInto(c.file)
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}

	fmt.Printf("%s: imported %d lots from %s, %g units held\n",
		asset.Name, n, c.file, asset.Lots.Available())
	return subcommands.ExitSuccess
}
