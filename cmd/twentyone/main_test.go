package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressMonitor(t *testing.T) {
	var buf bytes.Buffer
	m := NewProgressMonitor(&buf, 10)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.OnMatch(n)
		}(i)
	}
	wg.Wait()
	m.Finish()

	out := buf.String()
	assert.Equal(t, dotsTotal, strings.Count(out, "."))
	assert.Contains(t, out, "10/10 matches")
}

func TestProgressMonitorNil(t *testing.T) {
	var m *ProgressMonitor
	assert.NotPanics(t, func() {
		m.OnMatch(1)
		m.Finish()
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twentyone.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
rules {
  starting_balance = 10
}

ui {
  theme = "dark"
}
`), 0o644))

	g := &Globals{Config: path, Theme: "light", Seed: 42, NoColor: true}
	cfg, err := g.loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Rules.StartingBalance)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twentyone.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
rules {
  dealer_stand = 30
}
`), 0o644))

	g := &Globals{Config: path}
	_, err := g.loadConfig()
	assert.Error(t, err)
}

func TestLoadConfigBadLogLevel(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "chatty"}
	_, err := g.loadConfig()
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewLoggerInteractiveWritesFile(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogFile: filepath.Join(t.TempDir(), "debug.log")}
	cfg, err := g.loadConfig()
	require.NoError(t, err)

	logger, closeLog, err := newLogger(cfg.UI, true)
	require.NoError(t, err)
	logger.Info("hello")
	closeLog()

	data, err := os.ReadFile(cfg.UI.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
