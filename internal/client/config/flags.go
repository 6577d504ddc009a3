package config

import (
	"flag"
	"os"

	"github.com/talenttrack/talenttrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string     path to the store database file
//	-lang string  startup interface language (en, ta, hi)
//	-no-seed      skip demo data seeding on an empty store
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-lang", "-no-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the store database file")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "startup interface language")
	noSeed := fs.Bool("no-seed", !cfg.SeedDemoData, "skip demo data seeding")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SeedDemoData = !*noSeed
}
