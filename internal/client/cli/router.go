package cli

import (
	"context"

	"github.com/talenttrack/talenttrack/internal/logging"
)

// Page identifies one screen of the application.
type Page string

const (
	PageSplash            Page = "splash"
	PageAuth              Page = "auth"
	PageHome              Page = "home"
	PageTestSelection     Page = "test-selection"
	PageSubmissionOptions Page = "submission-options"
	PageRecord            Page = "record"
	PageUpload            Page = "upload"
	PageSubmissions       Page = "submissions"
	PageLeaderboard       Page = "leaderboard"
	PageProfile           Page = "profile"
	PageInfo              Page = "info"
)

// InShell reports whether the page belongs to the main shell group, the
// four screens that show the navigation chrome.
func (p Page) InShell() bool {
	switch p {
	case PageHome, PageSubmissions, PageLeaderboard, PageInfo:
		return true
	}
	return false
}

// RenderFunc redraws one page from current state. Pages must never show
// stale data on entry, so the router calls this on every navigation,
// including re-entry into the already-active page.
type RenderFunc func(ctx context.Context)

// Router owns the single source of truth for which page is visible and
// drives page-entry side effects. Navigation state changes only through
// NavigateTo, which keeps exactly one page current at all times.
type Router struct {
	history History
	log     logging.Logger

	current Page
	renders map[Page]RenderFunc
	chrome  func(active Page)
}

// NewRouter returns a Router starting on the splash page.
func NewRouter(history History, log logging.Logger) *Router {
	return &Router{
		history: history,
		log:     log,
		current: PageSplash,
		renders: make(map[Page]RenderFunc),
	}
}

// Handle registers the render callback for a page. Only registered pages
// are navigation targets.
func (r *Router) Handle(p Page, fn RenderFunc) {
	r.renders[p] = fn
}

// Chrome registers the shell chrome renderer, invoked with the active
// page before a main-shell page renders.
func (r *Router) Chrome(fn func(active Page)) {
	r.chrome = fn
}

// Current returns the visible page.
func (r *Router) Current() Page {
	return r.current
}

// NavigateTo makes p the visible page and runs its entry side effects:
// history push (unless responding to history traversal or the initial
// load), shell chrome for main-shell pages, and the page's re-render.
// An unknown page id is ignored without error, leaving the current page
// in place.
func (r *Router) NavigateTo(ctx context.Context, p Page, pushHistory bool) {
	fn, ok := r.renders[p]
	if !ok {
		r.log.Warn(ctx, "ignoring navigation to unknown page", "page", string(p))
		return
	}

	r.current = p

	if pushHistory {
		r.history.Push(HistoryEntry{Page: p})
	}

	if p.InShell() && r.chrome != nil {
		r.chrome(p)
	}
	if fn != nil {
		fn(ctx)
	}
}

// Replace overwrites the current history entry with the visible page.
// Boot calls this after landing so back never leads into the splash or
// the pre-login screen of a restored session.
func (r *Router) Replace() {
	r.history.Replace(HistoryEntry{Page: r.current})
}

// Render redraws the visible page without touching history, for state
// changes that do not move the user, like a language switch.
func (r *Router) Render(ctx context.Context) {
	r.NavigateTo(ctx, r.current, false)
}

// Back responds to a backward history traversal. The target page comes
// from the popped entry, defaulting to auth when the stack has nothing
// older; no new history entry is pushed.
func (r *Router) Back(ctx context.Context) {
	e, ok := r.history.Back()
	target := PageAuth
	if ok && e.Page != "" {
		target = e.Page
	}
	r.NavigateTo(ctx, target, false)
}

// Forward responds to a forward history traversal. With nothing ahead it
// is a no-op.
func (r *Router) Forward(ctx context.Context) {
	e, ok := r.history.Forward()
	if !ok {
		return
	}
	target := PageAuth
	if e.Page != "" {
		target = e.Page
	}
	r.NavigateTo(ctx, target, false)
}
