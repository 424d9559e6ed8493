package theme

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Signal reports the system-level color-scheme preference.
type Signal interface {
	// PrefersDark returns the preference and whether it could be detected.
	PrefersDark() (dark bool, ok bool)
}

// SignalFunc adapts a function to Signal.
type SignalFunc func() (bool, bool)

// PrefersDark implements Signal.
func (f SignalFunc) PrefersDark() (bool, bool) {
	return f()
}

// Undetectable is a signal that never detects anything.
var Undetectable Signal = SignalFunc(func() (bool, bool) { return false, false })

// Chain returns a signal that asks each signal in order and reports the
// first one that detects a preference.
func Chain(signals ...Signal) Signal {
	return SignalFunc(func() (bool, bool) {
		for _, s := range signals {
			if s == nil {
				continue
			}
			if dark, ok := s.PrefersDark(); ok {
				return dark, true
			}
		}
		return false, false
	})
}

// Override modes accepted by OverrideSignal.
const (
	OverrideAuto  = "auto"
	OverrideLight = "light"
	OverrideDark  = "dark"
)

// OverrideSignal pins the system signal to a configured value. "auto" (or
// empty) detects nothing so the next signal in a chain is consulted.
func OverrideSignal(mode string) Signal {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case OverrideDark:
		return SignalFunc(func() (bool, bool) { return true, true })
	case OverrideLight:
		return SignalFunc(func() (bool, bool) { return false, true })
	default:
		return Undetectable
	}
}

// EnvColorScheme names the environment variable read by EnvSignal.
const EnvColorScheme = "OSIVIEW_COLOR_SCHEME"

// EnvSignal reads OSIVIEW_COLOR_SCHEME ("dark"/"light"), then the COLORFGBG
// convention ("fg;bg", where background 0-6 and 8 are dark).
func EnvSignal(lookup func(string) (string, bool)) Signal {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return SignalFunc(func() (bool, bool) {
		if value, ok := lookup(EnvColorScheme); ok {
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "dark":
				return true, true
			case "light":
				return false, true
			}
		}
		if value, ok := lookup("COLORFGBG"); ok {
			return parseColorFGBG(value)
		}
		return false, false
	})
}

func parseColorFGBG(value string) (bool, bool) {
	parts := strings.Split(strings.TrimSpace(value), ";")
	if len(parts) < 2 {
		return false, false
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || bg < 0 {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalSignal queries the terminal background color. It detects nothing
// when stdout is not a terminal.
func TerminalSignal() Signal {
	return SignalFunc(func() (bool, bool) {
		if !isTerminal() {
			return false, false
		}
		return lipgloss.HasDarkBackground(), true
	})
}

// SystemSignal is the default detection chain: configured override, the
// environment, the desktop setting and finally the terminal background.
func SystemSignal(override string) Signal {
	return Chain(
		OverrideSignal(override),
		EnvSignal(nil),
		OSSignal(),
		TerminalSignal(),
	)
}
