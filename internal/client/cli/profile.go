package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/filex"
)

func (a *App) renderProfile(ctx context.Context) {
	if a.user == nil {
		return
	}
	a.printTitle(a.tr("profile-title"))

	info := models.LevelInfoForXP(a.user.XP)
	fmt.Fprintf(a.out, "%s\n", a.user.Name)
	fmt.Fprintf(a.out, "%s\n", a.user.Email)
	fmt.Fprintf(a.out, "photo: %s\n", a.user.ProfilePic)
	fmt.Fprintf(a.out, "age: %d  sport: %s  state: %s\n", a.user.Age, a.user.Sport, a.user.State)
	fmt.Fprintf(a.out, "%s %d  %s  %d XP\n",
		a.tr("profile-level"), info.Level, progressBar(info.Progress/100, 20), a.user.XP)
	a.renderBadges()

	fmt.Fprintf(a.out, "commands: edit (%s), photo, logout (%s)\n",
		a.tr("edit-btn"), a.tr("logout-btn"))
}

func (a *App) handleProfileCommand(ctx context.Context, cmd string) {
	switch cmd {
	case "edit":
		a.handleEditProfile(ctx)
	case "photo":
		a.handleProfilePhoto(ctx)
	case "logout":
		a.handleLogout(ctx)
	default:
		a.printUnknown(cmd)
	}
}

// handleEditProfile re-prompts the mutable fields. An empty answer keeps
// the current value.
func (a *App) handleEditProfile(ctx context.Context) {
	fmt.Fprintln(a.out, a.tr("edit-title"))
	updated := *a.user

	if v, err := a.prompt(a.tr("name-placeholder")); err != nil {
		return
	} else if v != "" {
		updated.Name = v
	}
	if v, err := a.prompt(a.tr("age-placeholder")); err != nil {
		return
	} else if v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			updated.Age = n
		}
	}
	if v, err := a.prompt(a.tr("sport-placeholder")); err != nil {
		return
	} else if v != "" {
		updated.Sport = v
	}
	if v, err := a.prompt(a.tr("state-placeholder")); err != nil {
		return
	} else if v != "" {
		updated.State = v
	}

	a.saveProfile(ctx, updated)
}

// handleProfilePhoto stores a local image path as the profile picture.
func (a *App) handleProfilePhoto(ctx context.Context) {
	path, err := a.prompt("Photo path")
	if err != nil {
		return
	}
	if path == "" || !filex.IsRegularFile(path) {
		fmt.Fprintln(a.out, a.tr("no-file-selected"))
		return
	}
	updated := *a.user
	updated.ProfilePic = path
	a.saveProfile(ctx, updated)
}

func (a *App) saveProfile(ctx context.Context, updated models.User) {
	if err := a.auth.UpdateUser(ctx, updated); err != nil {
		a.log.Error(ctx, "profile update failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
		return
	}
	a.user = &updated
	a.router.NavigateTo(ctx, PageProfile, false)
}

func (a *App) handleLogout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return
	}
	a.user = nil
	a.ledger = nil
	a.currentTest = nil
	a.pipeline.Clear()
	a.router.NavigateTo(ctx, PageAuth, true)
}
