//go:build linux

package theme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const osProbeTimeout = 500 * time.Millisecond

// OSSignal reads the GNOME color-scheme setting through gsettings.
// Detects nothing when gsettings is missing or reports "default".
func OSSignal() Signal {
	return SignalFunc(func() (bool, bool) {
		if _, err := exec.LookPath("gsettings"); err != nil {
			return false, false
		}

		ctx, cancel := context.WithTimeout(context.Background(), osProbeTimeout)
		defer cancel()

		output, err := exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
		if err != nil {
			return false, false
		}
		return parseGSettingsScheme(string(output))
	})
}

func parseGSettingsScheme(value string) (bool, bool) {
	switch strings.Trim(strings.TrimSpace(value), "'") {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
