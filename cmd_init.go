package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"meerwaarde/store"

	"github.com/google/subcommands"
)

type initCmd struct {
	name string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty portfolio file" }
func (*initCmd) Usage() string {
	return `init [-name <name>]

  Creates a new empty portfolio. Refuses to overwrite an existing file.
  Set the passphrase environment variable to store it sealed.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "Portfolio", "portfolio name")
}

func (c *initCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp(false)
	if err != nil {
		return fail(err)
	}

	if _, err := os.Stat(a.file); err == nil {
		return fail(fmt.Errorf("%s already exists", a.file))
	}

	a.portfolio = store.New(c.name)
	if err := a.save(); err != nil {
		return fail(err)
	}

	sealed := "plain"
	if a.passphrase != "" {
		sealed = "sealed"
	}
	fmt.Printf("Created %s portfolio %s (%s)\n", sealed, a.file, c.name)
	return subcommands.ExitSuccess
}
