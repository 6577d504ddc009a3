package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/talenttrack/talenttrack/internal/common"
)

// renderRecord acquires the camera stream on entry, mirroring a screen
// that requests camera access as soon as it becomes visible.
func (a *App) renderRecord(ctx context.Context) {
	a.printTitle(a.tr("record-title"))

	if !a.pipeline.HasStream() {
		a.cameraErr = a.pipeline.AcquireStream(ctx)
	}
	if a.cameraErr != nil {
		fmt.Fprintln(a.out, a.tr("camera-error-message"))
		return
	}

	switch {
	case a.pipeline.Recording():
		fmt.Fprintln(a.out, a.tr("record-in-progress"))
	case a.pipeline.Pending() != nil:
		fmt.Fprintln(a.out, a.tr("record-finished"))
	default:
		fmt.Fprintln(a.out, a.tr("recording-status"))
	}
	fmt.Fprintf(a.out, "commands: start (%s), stop (%s), submit (%s)\n",
		a.tr("start-record-btn"), a.tr("stop-record-btn"), a.tr("submit-video-btn"))
}

func (a *App) handleRecordCommand(ctx context.Context, cmd string) {
	switch cmd {
	case "start":
		if err := a.pipeline.StartRecording(); err != nil {
			fmt.Fprintln(a.out, a.tr("camera-error-message"))
			return
		}
		fmt.Fprintln(a.out, a.tr("record-in-progress"))
	case "stop":
		if _, err := a.pipeline.StopRecording(); err != nil {
			fmt.Fprintln(a.out, a.tr("recording-status"))
			return
		}
		fmt.Fprintln(a.out, a.tr("record-finished"))
	case "submit":
		a.submitPending(ctx)
	default:
		a.printUnknown(cmd)
	}
}

func (a *App) renderUpload(ctx context.Context) {
	a.printTitle(a.tr("upload-title"))
	if clip := a.pipeline.Pending(); clip != nil {
		fmt.Fprintf(a.out, "%s: %s\n", a.tr("file-selected"), clip.Name)
	} else {
		fmt.Fprintln(a.out, a.tr("no-file-selected"))
	}
	fmt.Fprintf(a.out, "commands: pick <path> (%s), submit (%s)\n",
		a.tr("choose-file-btn"), a.tr("submit-video-btn"))
}

func (a *App) handleUploadCommand(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "pick":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "usage: pick <path>")
			return
		}
		clip, err := a.pipeline.PickFile(args[0])
		if err != nil {
			if errors.Is(err, common.ErrNotAVideo) {
				fmt.Fprintln(a.out, a.tr("not-a-video"))
			} else {
				fmt.Fprintln(a.out, a.tr("no-file-selected"))
			}
			return
		}
		fmt.Fprintf(a.out, "%s: %s\n", a.tr("file-selected"), clip.Name)
	case "submit":
		a.submitPending(ctx)
	default:
		a.printUnknown(cmd)
	}
}

// submitPending turns the pending clip into a PENDING ledger entry and
// lands on the submissions page. The clip itself is discarded after the
// gate; only the ledger entry survives.
func (a *App) submitPending(ctx context.Context) {
	if a.user == nil {
		return
	}
	if a.currentTest == nil {
		a.log.Warn(ctx, "submit without a selected test", "error", common.ErrNoTestSelected)
		a.router.NavigateTo(ctx, PageTestSelection, true)
		return
	}
	clip := a.pipeline.Pending()
	if clip == nil {
		fmt.Fprintln(a.out, a.tr("no-video-selected"))
		return
	}

	_, ledger, err := a.subs.Submit(ctx, *a.user, a.currentTest.Id, *clip)
	switch {
	case errors.Is(err, common.ErrEmptyClip):
		fmt.Fprintln(a.out, a.tr("no-video-selected"))
		return
	case err != nil:
		a.log.Error(ctx, "submission failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
		return
	}

	a.ledger = ledger
	a.pipeline.Clear()
	fmt.Fprintln(a.out, a.tr("submission-success"))
	a.router.NavigateTo(ctx, PageSubmissions, true)
}
