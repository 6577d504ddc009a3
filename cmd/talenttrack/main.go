package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/talenttrack/talenttrack/internal/client/cli"
	"github.com/talenttrack/talenttrack/internal/client/config"
	"github.com/talenttrack/talenttrack/internal/common"
	"github.com/talenttrack/talenttrack/internal/filex"
)

// Set via -ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {

	fmt.Printf("TalentTrack Pro %s (built %s)\n", buildVersion, buildDate)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Relative store paths live under ./data so the working directory
	// stays clean.
	dataDir, err := filex.EnsureSubdDir("data")
	if err != nil {
		log.Fatalf("%v", err)
	}
	if !filepath.IsAbs(cfg.DatabasePath) {
		cfg.DatabasePath = filepath.Join(dataDir, cfg.DatabasePath)
	}
	if !filepath.IsAbs(cfg.LockPath) {
		cfg.LockPath = filepath.Join(dataDir, cfg.LockPath)
	}

	app, err := cli.NewApp(cfg)

	if err != nil {
		if errors.Is(err, common.ErrStoreLocked) {
			log.Fatalf("another instance is already running")
		}
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
