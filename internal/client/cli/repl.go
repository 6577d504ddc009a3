package cli

import (
	"context"
	"fmt"
	"strings"
)

// repl reads commands until EOF or quit. Navigation words and language
// switching work everywhere; everything else is dispatched to the page
// the router currently shows.
func (a *App) repl(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "%s> ", a.promptLabel())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(a.out)
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			a.printHelp()
			continue
		case "back":
			a.router.Back(ctx)
			continue
		case "forward":
			a.router.Forward(ctx)
			continue
		case "lang":
			a.handleLang(ctx, args)
			continue
		}

		if a.isLoggedIn() && a.handleShellNav(ctx, cmd) {
			continue
		}

		a.dispatch(ctx, cmd, args)
	}
}

func (a *App) promptLabel() string {
	if a.user != nil {
		return fmt.Sprintf("%s %s", a.router.Current(), a.user.FirstName())
	}
	return string(a.router.Current())
}

// handleShellNav maps the bottom-bar destinations to pages. It returns
// false for words that are not navigation so the page dispatcher gets
// them.
func (a *App) handleShellNav(ctx context.Context, cmd string) bool {
	var page Page
	switch cmd {
	case "home":
		page = PageHome
	case "submissions":
		page = PageSubmissions
	case "leaderboard":
		page = PageLeaderboard
	case "info":
		page = PageInfo
	case "profile":
		page = PageProfile
	default:
		return false
	}
	a.router.NavigateTo(ctx, page, true)
	return true
}

func (a *App) handleLang(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "languages: %s\n", strings.Join(a.bundle.Languages(), ", "))
		return
	}
	if !a.bundle.Supported(args[0]) {
		fmt.Fprintf(a.out, "unsupported language %q, languages: %s\n", args[0], strings.Join(a.bundle.Languages(), ", "))
		return
	}
	if err := a.setLanguage(ctx, args[0]); err != nil {
		a.log.Error(ctx, "language save failed", "error", err)
	}
	a.router.Render(ctx)
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch a.router.Current() {
	case PageAuth:
		a.handleAuthCommand(ctx, cmd)
	case PageHome:
		a.handleHomeCommand(ctx, cmd)
	case PageTestSelection:
		a.handleTestSelectionCommand(ctx, cmd, args)
	case PageSubmissionOptions:
		a.handleSubmissionOptionsCommand(ctx, cmd)
	case PageRecord:
		a.handleRecordCommand(ctx, cmd)
	case PageUpload:
		a.handleUploadCommand(ctx, cmd, args)
	case PageSubmissions:
		a.handleSubmissionsCommand(ctx, cmd)
	case PageLeaderboard:
		a.handleLeaderboardCommand(ctx, cmd)
	case PageProfile:
		a.handleProfileCommand(ctx, cmd)
	default:
		a.printUnknown(cmd)
	}
}

func (a *App) printUnknown(cmd string) {
	fmt.Fprintf(a.out, "unknown command %q, type help\n", cmd)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "global: help, back, forward, lang [code], quit")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "navigate: home, submissions, leaderboard, info, profile")
	}
	switch a.router.Current() {
	case PageAuth:
		fmt.Fprintln(a.out, "here: login, register")
	case PageHome:
		fmt.Fprintln(a.out, "here: start")
	case PageTestSelection:
		fmt.Fprintln(a.out, "here: select <number>")
	case PageSubmissionOptions:
		fmt.Fprintln(a.out, "here: record, upload")
	case PageRecord:
		fmt.Fprintln(a.out, "here: start, stop, submit")
	case PageUpload:
		fmt.Fprintln(a.out, "here: pick <path>, submit")
	case PageSubmissions:
		fmt.Fprintln(a.out, "here: refresh")
	case PageLeaderboard:
		fmt.Fprintln(a.out, "here: district, state, national")
	case PageProfile:
		fmt.Fprintln(a.out, "here: edit, photo, logout")
	}
}
