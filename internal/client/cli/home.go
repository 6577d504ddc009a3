package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/talenttrack/talenttrack/internal/client/models"
)

func (a *App) renderHome(ctx context.Context) {
	if a.user == nil {
		return
	}
	a.printTitle(fmt.Sprintf("%s %s!", a.tr("home-welcome"), a.user.FirstName()))

	info := models.LevelInfoForXP(a.user.XP)
	fmt.Fprintf(a.out, "%s: %d\n", a.tr("xp-title"), a.user.XP)
	fmt.Fprintf(a.out, "%s %d  %s  %d/%d XP\n",
		a.tr("profile-level"), info.Level,
		progressBar(info.Progress/100, 20),
		a.user.XP, info.XPForNextLevel)

	a.renderBadges()

	fmt.Fprintf(a.out, "\n%s\n", a.tr("missions-title"))
	fmt.Fprintf(a.out, "  - %s\n", a.tr("mission-speed"))
	fmt.Fprintf(a.out, "  - %s\n", a.tr("mission-plank"))

	fmt.Fprintf(a.out, "\ncommands: start (%s)\n", a.tr("start-test-btn"))
}

func (a *App) renderBadges() {
	earned := models.BadgesForXP(a.user.XP)
	if len(earned) == 0 {
		return
	}
	names := make([]string, 0, len(earned))
	for _, b := range earned {
		names = append(names, a.tr("badge-"+b.Id))
	}
	fmt.Fprintf(a.out, "%s: %s\n", a.tr("badges-title"), strings.Join(names, ", "))
}

func (a *App) handleHomeCommand(ctx context.Context, cmd string) {
	switch cmd {
	case "start":
		a.router.NavigateTo(ctx, PageTestSelection, true)
	default:
		a.printUnknown(cmd)
	}
}
