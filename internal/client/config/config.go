// Package config loads runtime settings for the TalentTrack client.
// Values are resolved in three stages: built-in defaults, then a JSON
// config file (if given via -c/-config), then command-line flags. Later
// sources take precedence.
package config

// Config holds runtime settings for the TalentTrack CLI.
type Config struct {
	// DatabasePath is the sqlite file backing the key-value store.
	DatabasePath string
	// LockPath is the lock file enforcing a single running instance.
	LockPath string

	// Language is the startup interface language; the persisted
	// appLanguage selection, when present, wins over it.
	Language string

	// SeedDemoData seeds a demo athlete and ledger into an empty store.
	SeedDemoData bool

	// Review tunables for the mock review sweep: approval probability,
	// score bounds and XP bounds, all inclusive.
	ApproveProbability float64
	ScoreMin, ScoreMax int
	XPMin, XPMax       int

	// LeaderboardFloor is the minimum directory size below which the
	// leaderboard seeds synthetic athletes.
	LeaderboardFloor int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "talenttrack.db"
	c.LockPath = "talenttrack.lock"
	c.Language = "en"
	c.SeedDemoData = true
	c.ApproveProbability = 0.7
	c.ScoreMin, c.ScoreMax = 10, 60
	c.XPMin, c.XPMax = 50, 200
	c.LeaderboardFloor = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
