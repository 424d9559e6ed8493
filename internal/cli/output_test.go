package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteOutputJSONL(t *testing.T) {
	setupCLI(t)
	jsonlOutput = true

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []map[string]int{{"n": 1}, {"n": 2}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{`{"n":1}`, `{"n":2}`}, lines)
}

func TestWriteOutputYAML(t *testing.T) {
	setupCLI(t)
	yamlOutput = true

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, VersionInfo{Version: "1.0.0"}))
	require.Contains(t, buf.String(), "version: 1.0.0")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &PreflightError{Message: "boom", Hint: "try again", NextStep: "osiview layers"})
	require.Equal(t, "Error: boom\nHint: try again\nNext: osiview layers\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("plain"))
	require.Equal(t, "Error: plain\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"A", "B"}, [][]string{{"1", "two"}}))
	require.Equal(t, "A  B\n1  two\n", buf.String())
}

func TestIsNonInteractive(t *testing.T) {
	setupCLI(t)
	require.True(t, IsNonInteractive(), "no TTY in tests")

	hasTTY = func() bool { return true }
	require.True(t, IsInteractive())

	t.Setenv(EnvNonInteractive, "1")
	require.True(t, IsNonInteractive())
}
