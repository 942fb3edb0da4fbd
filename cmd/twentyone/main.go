package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command. Flags override the config file.
type Globals struct {
	Config   string `short:"c" default:"twentyone.hcl" env:"TWENTYONE_CONFIG" help:"Config file (.hcl or .toml)"`
	LogLevel string `env:"TWENTYONE_LOG_LEVEL" help:"Log level (debug|info|warn|error)"`
	LogFile  string `env:"TWENTYONE_LOG_FILE" help:"Debug log file for interactive modes"`
	Theme    string `env:"TWENTYONE_THEME" help:"Color theme (default|dark|light)"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable colored output"`
	Seed     int64  `env:"TWENTYONE_SEED" help:"Shuffle seed (0 picks one)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play in the full-screen terminal UI"`
	Console  ConsoleCmd       `cmd:"" help:"Play with line prompts, or watch a bot play"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot matches in parallel and report statistics"`
	Rules    RulesCmd         `cmd:"" help:"Show the table rules"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("twentyone"),
		kong.Description("A single-player game of Twenty-One against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"history": historyFile(),
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the config file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", g.Config, err)
	}

	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.Theme != "" {
		cfg.UI.Theme = g.Theme
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}
	if g.Seed != 0 {
		cfg.Simulation.Seed = g.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	display.ConfigureColor(cfg.UI.NoColor)
	return cfg, nil
}

// newLogger builds the logger for a command. Interactive commands write to
// the debug file so log lines never land on the game screen.
func newLogger(ui config.UISettings, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(ui.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", ui.LogLevel, err)
	}

	if !interactive {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		return logger, func() {}, nil
	}

	debugFile, err := os.OpenFile(ui.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create debug log: %w", err)
	}

	logger := log.NewWithOptions(debugFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
	})
	closeFn := func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}
	return logger, closeFn, nil
}
