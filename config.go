package main

import (
	_ "embed"
	"fmt"
	"os"

	"meerwaarde/engine"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// Config is the application configuration, read from a YAML file with the
// embedded default as fallback.
type Config struct {
	// PortfolioFile is where the portfolio lives on disk.
	PortfolioFile string `yaml:"portfolio_file"`

	// PassphraseEnv names the environment variable holding the passphrase
	// that seals the portfolio file. An unset variable stores plaintext.
	PassphraseEnv string `yaml:"passphrase_env"`

	Tax  engine.TaxParams `yaml:"tax"`
	Plan PlanDefaults     `yaml:"plan"`
}

// PlanDefaults seed the plan command when flags are not given.
type PlanDefaults struct {
	Years  int     `yaml:"years"`
	Growth float64 `yaml:"growth"`
}

// LoadConfig reads the given config file, or the embedded default when the
// path is empty and no meerwaarde.yaml exists beside the portfolio.
func LoadConfig(path string) (*Config, error) {
	raw := []byte(defaultConfigYAML)

	if path == "" {
		if _, err := os.Stat("meerwaarde.yaml"); err == nil {
			path = "meerwaarde.yaml"
		}
	}
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Tax.YearlyLimit == 0 {
		cfg.Tax = engine.DefaultTaxParams()
	}
	if cfg.Plan.Years == 0 {
		cfg.Plan.Years = 5
	}
	return &cfg, nil
}

// Passphrase resolves the sealing passphrase from the environment.
func (c *Config) Passphrase() string {
	if c.PassphraseEnv == "" {
		return ""
	}
	return os.Getenv(c.PassphraseEnv)
}
