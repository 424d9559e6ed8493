//go:build !darwin && !linux

package theme

// OSSignal detects nothing on platforms without a known desktop setting.
func OSSignal() Signal {
	return Undetectable
}
