//go:build linux

package theme

import "testing"

func TestParseGSettingsScheme(t *testing.T) {
	tests := []struct {
		in       string
		wantDark bool
		wantOK   bool
	}{
		{in: "'prefer-dark'\n", wantDark: true, wantOK: true},
		{in: "'prefer-light'", wantDark: false, wantOK: true},
		{in: "'default'", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		dark, ok := parseGSettingsScheme(tt.in)
		if dark != tt.wantDark || ok != tt.wantOK {
			t.Errorf("parseGSettingsScheme(%q) = (%v, %v), want (%v, %v)", tt.in, dark, ok, tt.wantDark, tt.wantOK)
		}
	}
}
