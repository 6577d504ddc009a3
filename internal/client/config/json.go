package config

import (
	"encoding/json"
	"os"

	"github.com/talenttrack/talenttrack/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values, so a partial config file
// only overrides what it names.
type JsonConfig struct {
	DatabasePath       *string  `json:"database_path"`
	LockPath           *string  `json:"lock_path"`
	Language           *string  `json:"language"`
	SeedDemoData       *bool    `json:"seed_demo_data"`
	ApproveProbability *float64 `json:"approve_probability"`
	ScoreMin           *int     `json:"score_min"`
	ScoreMax           *int     `json:"score_max"`
	XPMin              *int     `json:"xp_min"`
	XPMax              *int     `json:"xp_max"`
	LeaderboardFloor   *int     `json:"leaderboard_floor"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c or -config flags via
// flagx.JsonConfigFlags; if neither is present, nothing is loaded.
// Read or unmarshal errors panic (caller may recover if desired), which
// matches the intended usage: defaults -> parseJson -> parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LockPath != nil {
		cfg.LockPath = *jc.LockPath
	}
	if jc.Language != nil {
		cfg.Language = *jc.Language
	}
	if jc.SeedDemoData != nil {
		cfg.SeedDemoData = *jc.SeedDemoData
	}
	if jc.ApproveProbability != nil {
		cfg.ApproveProbability = *jc.ApproveProbability
	}
	if jc.ScoreMin != nil {
		cfg.ScoreMin = *jc.ScoreMin
	}
	if jc.ScoreMax != nil {
		cfg.ScoreMax = *jc.ScoreMax
	}
	if jc.XPMin != nil {
		cfg.XPMin = *jc.XPMin
	}
	if jc.XPMax != nil {
		cfg.XPMax = *jc.XPMax
	}
	if jc.LeaderboardFloor != nil {
		cfg.LeaderboardFloor = *jc.LeaderboardFloor
	}
}
