// Package config loads twentyone configuration from HCL or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/twentyone/internal/deck"
)

// Config represents the complete twentyone configuration
type Config struct {
	Rules      Rules              `toml:"rules"`
	UI         UISettings         `toml:"ui"`
	Simulation SimulationSettings `toml:"simulation"`
}

// hclFile mirrors Config with optional blocks
type hclFile struct {
	Rules      *Rules              `hcl:"rules,block"`
	UI         *UISettings         `hcl:"ui,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

func (f hclFile) config() Config {
	var c Config
	if f.Rules != nil {
		c.Rules = *f.Rules
	}
	if f.UI != nil {
		c.UI = *f.UI
	}
	if f.Simulation != nil {
		c.Simulation = *f.Simulation
	}
	return c
}

// Rules are the fixed table rules for a match. A Rules value is copied into
// the engine at construction and never mutated afterwards.
type Rules struct {
	StartingBalance int     `hcl:"starting_balance,optional" toml:"starting_balance"`
	DealerStand     int     `hcl:"dealer_stand,optional" toml:"dealer_stand"`
	Penetration     float64 `hcl:"penetration,optional" toml:"penetration"`
	RichMultiple    int     `hcl:"rich_multiple,optional" toml:"rich_multiple"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional" toml:"log_level"`
	LogFile  string `hcl:"log_file,optional" toml:"log_file"`
	Theme    string `hcl:"theme,optional" toml:"theme"`
	NoColor  bool   `hcl:"no_color,optional" toml:"no_color"`
}

// SimulationSettings configures bot-driven batch play
type SimulationSettings struct {
	Matches  int    `hcl:"matches,optional" toml:"matches"`
	Workers  int    `hcl:"workers,optional" toml:"workers"`
	Strategy string `hcl:"strategy,optional" toml:"strategy"`
	StandOn  int    `hcl:"stand_on,optional" toml:"stand_on"`
	Seed     int64  `hcl:"seed,optional" toml:"seed"`
}

// maxDealerStand is the highest total a dealer can be asked to reach
const maxDealerStand = 21

// DefaultRules returns the standard table rules: a stake of 5, the dealer
// standing on 17 and a reshuffle once 75% of the deck is dealt.
func DefaultRules() Rules {
	return Rules{
		StartingBalance: 5,
		DealerStand:     17,
		Penetration:     0.75,
		RichMultiple:    2,
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Rules: DefaultRules(),
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "twentyone.log",
			Theme:    "default",
		},
		Simulation: SimulationSettings{
			Matches:  1000,
			Workers:  4,
			Strategy: "dealer",
			StandOn:  17,
		},
	}
}

// Load loads configuration from an HCL or TOML file. A missing file yields
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	var config Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		md, err := toml.DecodeFile(filename, &config)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode TOML: unknown keys %v", undecoded)
		}
	default:
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}

		var body hclFile
		diags = gohcl.DecodeBody(file.Body, nil, &body)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
		config = body.config()
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills zero values from DefaultConfig
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Rules.StartingBalance == 0 {
		c.Rules.StartingBalance = defaults.Rules.StartingBalance
	}
	if c.Rules.DealerStand == 0 {
		c.Rules.DealerStand = defaults.Rules.DealerStand
	}
	if c.Rules.Penetration == 0 {
		c.Rules.Penetration = defaults.Rules.Penetration
	}
	if c.Rules.RichMultiple == 0 {
		c.Rules.RichMultiple = defaults.Rules.RichMultiple
	}

	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}

	if c.Simulation.Matches == 0 {
		c.Simulation.Matches = defaults.Simulation.Matches
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = defaults.Simulation.Workers
	}
	if c.Simulation.Strategy == "" {
		c.Simulation.Strategy = defaults.Simulation.Strategy
	}
	if c.Simulation.StandOn == 0 {
		c.Simulation.StandOn = defaults.Simulation.StandOn
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Simulation.Matches <= 0 {
		return fmt.Errorf("simulation matches must be positive")
	}
	if c.Simulation.Workers <= 0 {
		return fmt.Errorf("simulation workers must be positive")
	}

	validStrategies := map[string]bool{
		"dealer":    true,
		"threshold": true,
		"random":    true,
	}
	if !validStrategies[c.Simulation.Strategy] {
		return fmt.Errorf("invalid strategy: %s", c.Simulation.Strategy)
	}

	return nil
}

// Validate checks that the rules describe a playable match
func (r Rules) Validate() error {
	if r.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive")
	}
	if r.RichMultiple < 2 {
		return fmt.Errorf("rich multiple must be at least 2")
	}
	if r.DealerStand <= 0 || r.DealerStand > maxDealerStand {
		return fmt.Errorf("dealer stand must be between 1 and %d", maxDealerStand)
	}
	if r.Penetration <= 0 || r.Penetration >= 1 {
		return fmt.Errorf("penetration must be between 0 and 1 exclusive")
	}
	return nil
}

// RichBalance is the balance at which the player wins the match
func (r Rules) RichBalance() int {
	return r.StartingBalance * r.RichMultiple
}

// ReshuffleThreshold is the remaining-card count at or below which the deck
// is reset before a round
func (r Rules) ReshuffleThreshold() int {
	return deck.ReshuffleThreshold(r.Penetration)
}
