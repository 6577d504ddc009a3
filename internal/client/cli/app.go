// Package cli implements the interactive TalentTrack client: a page
// router with history-aware navigation, driven by a read-eval-print loop
// whose commands are bound per page.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/talenttrack/talenttrack/internal/capture"
	"github.com/talenttrack/talenttrack/internal/client/config"
	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/services"
	"github.com/talenttrack/talenttrack/internal/client/storage"
	"github.com/talenttrack/talenttrack/internal/i18n"
	"github.com/talenttrack/talenttrack/internal/logging"
)

// App wires the services to the view layer and owns the mutable view
// state: the session user, the in-memory ledger, the selected test, the
// language, and the leaderboard scope. Handlers mutate this state and
// then ask the router to move or re-render; nothing reads ambient
// globals.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	store  *storage.Store
	bundle *i18n.Bundle

	auth  services.AuthService
	subs  services.SubmissionService
	board services.LeaderboardService

	pipeline *capture.Pipeline
	router   *Router

	reader *bufio.Reader
	out    io.Writer

	user        *models.User
	ledger      []models.Submission
	lang        string
	currentTest *models.Test
	scope       services.Scope
	cameraErr   error
}

// NewApp opens the store and constructs a fully wired application.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, err := storage.Open(ctx, cfg.DatabasePath, cfg.LockPath)
	if err != nil {
		return nil, err
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	decide := services.RandomDecision(rng, cfg.ApproveProbability, cfg.ScoreMin, cfg.ScoreMax, cfg.XPMin, cfg.XPMax)

	app := &App{
		cfg:      cfg,
		log:      logger,
		store:    store,
		bundle:   bundle,
		auth:     services.NewAuthService(store, rng),
		subs:     services.NewSubmissionService(store, bundle, decide),
		board:    services.NewLeaderboardService(store, rng, cfg.LeaderboardFloor),
		pipeline: capture.NewPipeline(&capture.SimulatedDevice{}),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		lang:     i18n.Fallback,
		scope:    services.ScopeState,
	}
	app.router = NewRouter(NewStackHistory(), logger)
	app.registerPages()
	return app, nil
}

// registerPages binds every page to its render callback and the shell
// chrome. The explicit bindings are the complete navigation surface;
// anything else is an unknown page the router ignores.
func (a *App) registerPages() {
	a.router.Chrome(a.renderNavBar)
	a.router.Handle(PageSplash, a.renderSplash)
	a.router.Handle(PageAuth, a.renderAuth)
	a.router.Handle(PageHome, a.renderHome)
	a.router.Handle(PageTestSelection, a.renderTestSelection)
	a.router.Handle(PageSubmissionOptions, a.renderSubmissionOptions)
	a.router.Handle(PageRecord, a.renderRecord)
	a.router.Handle(PageUpload, a.renderUpload)
	a.router.Handle(PageSubmissions, a.renderSubmissions)
	a.router.Handle(PageLeaderboard, a.renderLeaderboard)
	a.router.Handle(PageProfile, a.renderProfile)
	a.router.Handle(PageInfo, a.renderInfo)
}

// boot restores persisted state and lands on the first page: home for a
// persisted session, auth otherwise. Neither initial navigation pushes
// history; the landing page replaces the initial entry instead, so back
// never returns into the splash screen.
func (a *App) boot(ctx context.Context) {
	a.loadLanguage(ctx)

	if a.cfg.SeedDemoData {
		seeded, err := services.SeedDemo(ctx, a.store, a.bundle)
		if err != nil {
			a.log.Error(ctx, "demo data seeding failed", "error", err)
		} else if seeded {
			a.log.Info(ctx, "seeded demo data")
		}
	}

	a.router.NavigateTo(ctx, PageSplash, false)

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}
	if user != nil {
		ledger, err := a.subs.Ledger(ctx, user.Email)
		if err != nil {
			a.log.Error(ctx, "ledger load failed", "error", err)
			ledger = []models.Submission{}
		}
		a.user = user
		a.ledger = ledger
		a.router.NavigateTo(ctx, PageHome, false)
	} else {
		a.router.NavigateTo(ctx, PageAuth, false)
	}
	a.router.Replace()
}

// loadLanguage prefers the persisted appLanguage selection over the
// configured default.
func (a *App) loadLanguage(ctx context.Context) {
	a.lang = a.bundle.Match(a.cfg.Language)

	raw, err := a.store.KV().Get(ctx, storage.LanguageKey)
	if err != nil {
		a.log.Error(ctx, "language load failed", "error", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		return
	}
	a.lang = a.bundle.Match(code)
}

// setLanguage switches the interface language and persists the choice.
func (a *App) setLanguage(ctx context.Context, code string) error {
	a.lang = a.bundle.Match(code)

	raw, err := json.Marshal(a.lang)
	if err != nil {
		return err
	}
	return a.store.KV().Set(ctx, storage.LanguageKey, raw)
}

// tr resolves a string-table key in the active language.
func (a *App) tr(key string) string {
	return a.bundle.Lookup(a.lang, key)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run boots the application and serves the REPL until EOF or quit.
func (a *App) Run(ctx context.Context) {
	a.boot(ctx)
	a.repl(ctx)
}

// Close releases the store and its instance lock.
func (a *App) Close() error {
	return a.store.Close()
}
