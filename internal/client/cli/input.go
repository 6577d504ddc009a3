package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// readPassword is a seam so tests can run without a controlling terminal.
var readPassword = term.ReadPassword

// prompt prints a label and reads one trimmed line of input.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads a line and parses it as a non-negative integer. An
// empty line yields zero so optional numeric fields can be skipped.
func (a *App) promptInt(label string) (int, error) {
	for {
		s, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			fmt.Fprintln(a.out, "please enter a number")
			continue
		}
		return n, nil
	}
}

// promptPassword reads without echo when stdin is a terminal and falls
// back to a plain line read otherwise, so piped input keeps working.
func (a *App) promptPassword(label string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return a.prompt(label)
	}
	fmt.Fprintf(a.out, "%s: ", label)
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
