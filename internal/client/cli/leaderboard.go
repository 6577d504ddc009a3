package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/talenttrack/talenttrack/internal/client/services"
)

func (a *App) renderLeaderboard(ctx context.Context) {
	if a.user == nil {
		return
	}
	a.printTitle(a.tr("leaderboard-title"))

	standings, err := a.board.Rank(ctx, a.scope, *a.user)
	if err != nil {
		a.log.Error(ctx, "leaderboard load failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
		return
	}

	fmt.Fprintf(a.out, "scope: %s\n", a.tr("leaderboard-"+string(standings.Scope)))

	rows := make([]table.Row, 0, len(standings.Top))
	for _, e := range standings.Top {
		name := e.User.Name
		if e.User.Email == a.user.Email {
			name += " (you)"
		}
		rows = append(rows, table.Row{e.Rank, name, e.User.State, e.User.XP})
	}
	a.renderTable(
		table.Row{"#", "Athlete", "State", a.tr("leaderboard-xp")},
		rows, rightAligned(1, 4)...)

	if standings.OwnRank > 0 {
		fmt.Fprintf(a.out, "%s: %d / %d\n", a.tr("leaderboard-myrank"), standings.OwnRank, standings.Total)
	}
	fmt.Fprintln(a.out, "commands: district, state, national")
}

func (a *App) handleLeaderboardCommand(ctx context.Context, cmd string) {
	var scope services.Scope
	switch cmd {
	case "district":
		scope = services.ScopeDistrict
	case "state":
		scope = services.ScopeState
	case "national":
		scope = services.ScopeNational
	default:
		a.printUnknown(cmd)
		return
	}
	a.scope = scope
	a.router.NavigateTo(ctx, PageLeaderboard, false)
}
