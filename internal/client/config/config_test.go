package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "talenttrack.db", c.DatabasePath)
	assert.Equal(t, "talenttrack.lock", c.LockPath)
	assert.Equal(t, "en", c.Language)
	assert.True(t, c.SeedDemoData)
	assert.InDelta(t, 0.7, c.ApproveProbability, 0.001)
	assert.Equal(t, 10, c.ScoreMin)
	assert.Equal(t, 60, c.ScoreMax)
	assert.Equal(t, 50, c.XPMin)
	assert.Equal(t, 200, c.XPMax)
	assert.Equal(t, 5, c.LeaderboardFloor)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_OverridesOnlyNamedFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"database_path":       "/tmp/custom.db",
		"language":            "ta",
		"approve_probability": 0.5,
	})
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/tmp/custom.db", cfg.DatabasePath)
	assert.Equal(t, "ta", cfg.Language)
	assert.InDelta(t, 0.5, cfg.ApproveProbability, 0.001)
	// Unnamed fields keep their defaults.
	assert.Equal(t, "talenttrack.lock", cfg.LockPath)
	assert.Equal(t, 5, cfg.LeaderboardFloor)
}

func Test_parseJson_NoConfigFlagLeavesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "talenttrack.db", cfg.DatabasePath)
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "/tmp/other.db", "-lang", "hi", "-no-seed"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, "hi", cfg.Language)
	assert.False(t, cfg.SeedDemoData)
}

func Test_parseFlags_IgnoresUnknownArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-unrelated", "x", "-lang", "ta"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "ta", cfg.Language)
	assert.Equal(t, "talenttrack.db", cfg.DatabasePath)
}
