package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/talenttrack/talenttrack/internal/client/models"
)

func (a *App) renderSubmissions(ctx context.Context) {
	a.printTitle(a.tr("activity-title"))

	if len(a.ledger) == 0 {
		fmt.Fprintln(a.out, a.tr("no-activity"))
		return
	}

	rows := make([]table.Row, 0, len(a.ledger))
	for _, s := range a.ledger {
		rows = append(rows, table.Row{
			s.TestName,
			fmt.Sprintf("%s %s", a.tr("submission-submitted-on"), s.Date),
			a.tr("status-" + strings.ToLower(string(s.Status))),
			a.formatScore(s),
			a.formatXP(s),
		})
	}
	a.renderTable(
		table.Row{"Test", "Date", "Status", a.tr("submission-score"), a.tr("submission-xpearned")},
		rows, rightAligned(5)...)
	fmt.Fprintf(a.out, "commands: refresh (%s)\n", a.tr("refresh-btn"))
}

func (a *App) formatScore(s models.Submission) string {
	switch s.Status {
	case models.StatusApproved:
		if s.Score != nil {
			return fmt.Sprintf("%g", *s.Score)
		}
		return "0"
	case models.StatusRejected:
		return a.tr("submission-rejected-text")
	default:
		return a.tr("submission-pending-text")
	}
}

func (a *App) formatXP(s models.Submission) string {
	if s.Status == models.StatusApproved {
		return fmt.Sprintf("+%d", s.XPEarned)
	}
	return "-"
}

func (a *App) handleSubmissionsCommand(ctx context.Context, cmd string) {
	switch cmd {
	case "refresh":
		a.refreshSubmissions(ctx)
	default:
		a.printUnknown(cmd)
	}
}

// refreshSubmissions runs the review sweep over the visible ledger and
// reports how many items changed status.
func (a *App) refreshSubmissions(ctx context.Context) {
	if a.user == nil {
		return
	}
	count, ledger, err := a.subs.ReviewSweep(ctx, a.user, a.ledger)
	if err != nil {
		a.log.Error(ctx, "review sweep failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
		return
	}
	if count == 0 {
		fmt.Fprintln(a.out, "No pending submissions to refresh.")
		return
	}
	a.ledger = ledger
	fmt.Fprintf(a.out, "%d submission(s) updated. Check your activity.\n", count)
	a.router.NavigateTo(ctx, PageSubmissions, false)
}
