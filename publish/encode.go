package publish

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a supported configuration encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath derives the encoding from the file extension. Supported
// extensions are .yaml, .yml, and .json.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported configuration file %q: expected .yaml, .yml, or .json", path)
	}
}

// Unmarshal decodes a configuration document. Decode failures, including
// mistyped fields, are reported as a *ValidationError.
func Unmarshal(data []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ValidationError{Field: "document", Reason: fmt.Sprintf("parse YAML: %v", err), Err: err}
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ValidationError{Field: "document", Reason: fmt.Sprintf("parse JSON: %v", err), Err: err}
		}
	default:
		return Config{}, fmt.Errorf("unsupported format %q", format)
	}
	return cfg, nil
}

// Marshal encodes the configuration in the requested format.
func Marshal(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Save validates the configuration and writes it to path, choosing the
// encoding by file extension. It is the counterpart of Load.
func Save(path string, cfg Config) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
