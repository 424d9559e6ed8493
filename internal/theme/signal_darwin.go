//go:build darwin

package theme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const osProbeTimeout = 500 * time.Millisecond

// OSSignal reads the macOS AppleInterfaceStyle setting. The key is absent
// in light mode, so a failed read means light.
func OSSignal() Signal {
	return SignalFunc(func() (bool, bool) {
		ctx, cancel := context.WithTimeout(context.Background(), osProbeTimeout)
		defer cancel()

		output, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
		if err != nil {
			if ctx.Err() != nil {
				return false, false
			}
			return false, true
		}
		return strings.TrimSpace(string(output)) == "Dark", true
	})
}
