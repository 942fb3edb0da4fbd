package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "twentyone.hcl", `
rules {
  starting_balance = 10
  penetration      = 0.5
}

ui {
  log_level = "debug"
  no_color  = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Rules.StartingBalance)
	assert.Equal(t, 0.5, cfg.Rules.Penetration)
	assert.Equal(t, 17, cfg.Rules.DealerStand, "default applied")
	assert.Equal(t, 20, cfg.Rules.RichBalance())
	assert.Equal(t, 26, cfg.Rules.ReshuffleThreshold())

	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "twentyone.log", cfg.UI.LogFile)

	assert.Equal(t, "dealer", cfg.Simulation.Strategy, "missing block gets defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "twentyone.toml", `
[rules]
dealer_stand = 16

[simulation]
matches  = 50
strategy = "threshold"
stand_on = 15
seed     = 1234
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Rules.DealerStand)
	assert.Equal(t, 5, cfg.Rules.StartingBalance)
	assert.Equal(t, 50, cfg.Simulation.Matches)
	assert.Equal(t, "threshold", cfg.Simulation.Strategy)
	assert.Equal(t, 15, cfg.Simulation.StandOn)
	assert.Equal(t, int64(1234), cfg.Simulation.Seed)
	require.NoError(t, cfg.Validate())
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeFile(t, "broken.hcl", `rules { starting_balance = `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestLoadUnknownAttribute(t *testing.T) {
	path := writeFile(t, "unknown.hcl", `rules { jokers = true }`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	path := writeFile(t, "unknown.toml", `
[rules]
jokers = true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys [rules.jokers]")
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 5, rules.StartingBalance)
	assert.Equal(t, 10, rules.RichBalance())
	assert.Equal(t, 13, rules.ReshuffleThreshold())
	assert.Equal(t, 17, rules.DealerStand)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero balance", func(c *Config) { c.Rules.StartingBalance = 0 }, "starting balance"},
		{"rich multiple", func(c *Config) { c.Rules.RichMultiple = 1 }, "rich multiple"},
		{"dealer above target", func(c *Config) { c.Rules.DealerStand = 22 }, "dealer stand"},
		{"penetration one", func(c *Config) { c.Rules.Penetration = 1 }, "penetration"},
		{"log level", func(c *Config) { c.UI.LogLevel = "trace" }, "invalid log level"},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid theme"},
		{"workers", func(c *Config) { c.Simulation.Workers = 0 }, "workers"},
		{"strategy", func(c *Config) { c.Simulation.Strategy = "cheat" }, "invalid strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
