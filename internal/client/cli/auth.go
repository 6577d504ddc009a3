package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/services"
	"github.com/talenttrack/talenttrack/internal/common"
)

func (a *App) renderAuth(ctx context.Context) {
	a.printTitle(a.tr("auth-welcome"))
	fmt.Fprintln(a.out, a.tr("auth-subtitle"))
	fmt.Fprintln(a.out, "commands: login, register")
}

func (a *App) handleAuthCommand(ctx context.Context, cmd string) {
	switch cmd {
	case "login":
		a.handleLogin(ctx)
	case "register":
		a.handleRegister(ctx)
	default:
		a.printUnknown(cmd)
	}
}

func (a *App) handleLogin(ctx context.Context) {
	email, err := a.prompt(a.tr("email-placeholder"))
	if err != nil {
		return
	}
	password, err := a.promptPassword(a.tr("password-placeholder"))
	if err != nil {
		return
	}

	user, err := a.auth.Login(ctx, email, password)
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		fmt.Fprintln(a.out, "User not found. Please register.")
		return
	case errors.Is(err, common.ErrInvalidPassword):
		fmt.Fprintln(a.out, "Invalid password.")
		return
	case err != nil:
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
		return
	}
	a.startSession(ctx, user)
}

func (a *App) handleRegister(ctx context.Context) {
	form := services.RegistrationForm{}
	var err error
	if form.Name, err = a.prompt(a.tr("name-placeholder")); err != nil {
		return
	}
	if form.Email, err = a.prompt(a.tr("email-placeholder")); err != nil {
		return
	}
	if form.Password, err = a.promptPassword(a.tr("password-placeholder")); err != nil {
		return
	}
	if form.Age, err = a.promptInt(a.tr("age-placeholder")); err != nil {
		return
	}
	if form.Sport, err = a.prompt(a.tr("sport-placeholder")); err != nil {
		return
	}
	if form.State, err = a.prompt(a.tr("state-placeholder")); err != nil {
		return
	}
	if form.Religion, err = a.prompt(a.tr("religion-placeholder")); err != nil {
		return
	}
	if form.AadhaarLast4, err = a.prompt(a.tr("aadhaar-placeholder")); err != nil {
		return
	}
	if form.Phone, err = a.prompt(a.tr("phone-placeholder")); err != nil {
		return
	}

	user, err := a.auth.Register(ctx, form)
	switch {
	case errors.Is(err, common.ErrFieldsRequired):
		fmt.Fprintln(a.out, "Please fill all fields.")
		return
	case errors.Is(err, common.ErrInvalidEmail):
		fmt.Fprintln(a.out, "Please enter a valid email address.")
		return
	case errors.Is(err, common.ErrInvalidAadhaar):
		fmt.Fprintln(a.out, "Aadhaar must be the last 4 digits.")
		return
	case errors.Is(err, common.ErrInvalidPhone):
		fmt.Fprintln(a.out, "Phone number must be 10 digits.")
		return
	case errors.Is(err, common.ErrDuplicateEmail):
		fmt.Fprintln(a.out, "An account with this email already exists.")
		return
	case err != nil:
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
		return
	}
	a.startSession(ctx, user)
}

// startSession installs the logged-in user, loads their ledger and moves
// to home.
func (a *App) startSession(ctx context.Context, user *models.User) {
	ledger, err := a.subs.Ledger(ctx, user.Email)
	if err != nil {
		a.log.Error(ctx, "ledger load failed", "error", err)
		ledger = []models.Submission{}
	}
	a.user = user
	a.ledger = ledger
	a.router.NavigateTo(ctx, PageHome, true)
}
