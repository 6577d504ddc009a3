package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/talenttrack/talenttrack/internal/client/models"
)

func (a *App) renderTestSelection(ctx context.Context) {
	a.printTitle(a.tr("test-select-title"))

	rows := make([]table.Row, 0, len(models.Catalog()))
	for i, t := range models.Catalog() {
		rows = append(rows, table.Row{i + 1, a.tr(t.TitleKey), a.tr(t.DescKey)})
	}
	a.renderTable(table.Row{"#", "Test", "Description"}, rows, rightAligned(1)...)
	fmt.Fprintln(a.out, "commands: select <number>")
}

func (a *App) handleTestSelectionCommand(ctx context.Context, cmd string, args []string) {
	if cmd != "select" {
		a.printUnknown(cmd)
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: select <number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(models.Catalog()) {
		fmt.Fprintf(a.out, "pick a number between 1 and %d\n", len(models.Catalog()))
		return
	}
	test := models.Catalog()[n-1]
	a.currentTest = &test
	a.router.NavigateTo(ctx, PageSubmissionOptions, true)
}

func (a *App) renderSubmissionOptions(ctx context.Context) {
	if a.currentTest == nil {
		a.router.NavigateTo(ctx, PageTestSelection, false)
		return
	}
	a.printTitle(fmt.Sprintf("%s: %s", a.tr("submit-title"), a.tr(a.currentTest.TitleKey)))
	fmt.Fprintf(a.out, "%s: %s\n", a.tr("instructions-title"), a.currentTest.Instructions)
	fmt.Fprintf(a.out, "commands: record (%s), upload (%s)\n",
		a.tr("record-video-btn"), a.tr("upload-file-btn"))
}

func (a *App) handleSubmissionOptionsCommand(ctx context.Context, cmd string) {
	switch cmd {
	case "record":
		a.router.NavigateTo(ctx, PageRecord, true)
	case "upload":
		a.router.NavigateTo(ctx, PageUpload, true)
	default:
		a.printUnknown(cmd)
	}
}
