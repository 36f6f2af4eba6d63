package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// unwantedKeys are stripped from every loaded document. The original
// workflow injects them into its own namespace and they must never leak
// into the resolved mapping.
var unwantedKeys = []string{"maindir", "workflow"}

// LoadFile parses a YAML config file at the given path into a flat mapping.
//
// An empty document yields an empty (non-nil) map. A malformed document
// fails fast with a parse error; there is no partial recovery. Unknown keys
// are kept as-is so pipeline-specific extensions survive loading.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if m == nil {
		m = make(map[string]any)
	}

	for _, k := range unwantedKeys {
		delete(m, k)
	}

	return m, nil
}

// Decode applies the key-value pairs in m onto cfg.
//
// Keys with a declared schema type are decoded strictly: a value of the
// wrong type (e.g. a non-integer bin_size) returns a type error naming the
// offending key. Keys outside the schema are preserved in cfg.Extra with
// their original values.
func Decode(m map[string]any, cfg *Config) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   cfg,
	})
	if err != nil {
		return fmt.Errorf("build config decoder: %w", err)
	}

	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	for _, key := range md.Unused {
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}
		cfg.Extra[key] = m[key]
	}

	return nil
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Shipped defaults file (defaultsPath)
//  3. User override file (userPath)
//  4. CLI overrides (cliOverrides map)
//
// Any path that is empty is silently skipped; a non-empty path must be
// loadable. Null values in an override layer never clobber lower layers.
func LoadWithPrecedence(defaultsPath, userPath string, cliOverrides map[string]any) (*Config, error) {
	merged := make(map[string]any)

	if defaultsPath != "" {
		m, err := LoadFile(defaultsPath)
		if err != nil {
			return nil, fmt.Errorf("defaults file: %w", err)
		}
		merged = Merge(merged, m)
	}

	if userPath != "" {
		m, err := LoadFile(userPath)
		if err != nil {
			return nil, fmt.Errorf("user config: %w", err)
		}
		merged = Merge(merged, m)
	}

	merged = Merge(merged, cliOverrides)

	cfg := NewDefaultConfig()
	if err := Decode(merged, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
