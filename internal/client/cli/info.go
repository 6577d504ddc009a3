package cli

import (
	"context"
	"fmt"
)

func (a *App) renderSplash(ctx context.Context) {
	fmt.Fprintln(a.out, "TalentTrack Pro")
	fmt.Fprintln(a.out, "Sports Authority of India")
}

func (a *App) renderInfo(ctx context.Context) {
	a.printTitle(a.tr("info-title"))
	fmt.Fprintf(a.out, "%s\n%s\n", a.tr("about-app"), a.tr("about-body"))
	fmt.Fprintf(a.out, "\n%s\n", a.tr("policy-title"))
	for _, key := range []string{"policy-point-1", "policy-point-2", "policy-point-3", "policy-point-4"} {
		fmt.Fprintf(a.out, "  - %s\n", a.tr(key))
	}
}

// renderNavBar prints the shell navigation with the active page marked,
// the bottom bar of the four main screens.
func (a *App) renderNavBar(active Page) {
	tabs := []struct {
		page Page
		key  string
	}{
		{PageHome, "nav-home"},
		{PageSubmissions, "nav-activity"},
		{PageLeaderboard, "nav-leaderboard"},
		{PageInfo, "nav-info"},
	}
	fmt.Fprint(a.out, "\n")
	for i, t := range tabs {
		if i > 0 {
			fmt.Fprint(a.out, " | ")
		}
		if t.page == active {
			fmt.Fprintf(a.out, "[%s]", a.tr(t.key))
		} else {
			fmt.Fprint(a.out, a.tr(t.key))
		}
	}
	fmt.Fprintln(a.out)
}
