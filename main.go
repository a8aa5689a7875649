package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"

	"meerwaarde/store"

	"github.com/google/subcommands"
)

var (
	configPath    = flag.String("config", "", "config file (default meerwaarde.yaml when present)")
	portfolioPath = flag.String("file", "", "portfolio file, overrides the config")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&initCmd{}, "portfolio")
	commander.Register(&addAssetCmd{}, "portfolio")
	commander.Register(&removeAssetCmd{}, "portfolio")
	commander.Register(&buyCmd{}, "portfolio")
	commander.Register(&sellCmd{}, "portfolio")
	commander.Register(&importCmd{}, "portfolio")
	commander.Register(&calcCmd{}, "analysis")
	commander.Register(&planCmd{}, "analysis")
	commander.Register(&sweepCmd{}, "analysis")
	commander.Register(&reportCmd{}, "reports")
	commander.Register(&templateCmd{}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// app bundles the loaded config and portfolio every subcommand needs.
type app struct {
	cfg        *Config
	portfolio  *store.Portfolio
	file       string
	passphrase string
}

// loadApp reads the config and, when load is set, the portfolio file.
func loadApp(load bool) (*app, error) {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, file: cfg.PortfolioFile, passphrase: cfg.Passphrase()}
	if *portfolioPath != "" {
		a.file = *portfolioPath
	}

	if load {
		a.portfolio, err = store.Load(a.file, a.passphrase)
		if err != nil {
			return nil, fmt.Errorf("loading portfolio: %w", err)
		}
	}
	return a, nil
}

func (a *app) save() error {
	return a.portfolio.Save(a.file, a.passphrase)
}

// fail prints the error and maps it to a failing exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

func printJSON(a any) {
	s, _ := json.MarshalIndent(a, "", "\t")
	fmt.Println(string(s))
}
