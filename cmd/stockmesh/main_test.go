package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh"
	"github.com/hupe1980/stockmesh/core"
)

func newFlaggedCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log-level", "", "")
	cmd.Flags().String("log-format", "", "")
	return cmd
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, logger, err := loadConfig(newFlaggedCmd())
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, time.Second, cfg.TimeUnit)
	assert.Len(t, cfg.Products(), 5)
}

func TestLoadConfig_FlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))

	cmd := newFlaggedCmd()
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))

	cfg, _, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestFireRandomTrigger_MutatesState(t *testing.T) {
	m := stockmesh.New()
	m.Start()
	defer m.Stop()

	rng := rand.New(rand.NewPCG(1, 1))
	products := m.Products()
	for i := 0; i < 20; i++ {
		fireRandomTrigger(m, rng, products)
	}

	assert.NotEmpty(t, m.Logs(), "twenty triggers must narrate something")
}

func TestWriteEntries_FormatSwitch(t *testing.T) {
	dir := t.TempDir()
	entries := []core.Entry{{Seq: 1, Agent: core.AgentCustomer, Action: core.ActionPurchase, Message: "m"}}

	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, writeEntries("csv", csvPath, entries))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "seq,"))

	jsonlPath := filepath.Join(dir, "out.jsonl")
	require.NoError(t, writeEntries("jsonl", jsonlPath, entries))
	data, err = os.ReadFile(jsonlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
}
