package cli

import (
	"os"

	"golang.org/x/term"
)

// EnvNonInteractive forces non-interactive mode when set.
const EnvNonInteractive = "OSIVIEW_NON_INTERACTIVE"

// hasTTY is swapped in tests.
var hasTTY = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsNonInteractive reports whether prompts and the TUI should be skipped.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv(EnvNonInteractive); ok {
		return true
	}
	return !hasTTY()
}

// IsInteractive reports whether the session can drive the TUI.
func IsInteractive() bool {
	return !IsNonInteractive()
}
