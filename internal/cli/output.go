package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"
)

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// IsYAMLOutput reports whether --yaml was given.
func IsYAMLOutput() bool {
	return yamlOutput
}

// IsStructuredOutput reports whether any machine-readable format was requested.
func IsStructuredOutput() bool {
	return IsJSONOutput() || IsJSONLOutput() || IsYAMLOutput()
}

// WriteOutput encodes value in the requested structured format. JSONL
// writes one line per element when value is a slice.
func WriteOutput(out io.Writer, value any) error {
	switch {
	case IsJSONLOutput():
		return writeJSONL(out, value)
	case IsYAMLOutput():
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

func writeJSONL(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return enc.Encode(value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := enc.Encode(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("failed to encode json line: %w", err)
		}
	}
	return nil
}
