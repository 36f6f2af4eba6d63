package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToMap flattens cfg into the mapping form used by config files.
//
// All schema keys appear under their file names, with unset optionals
// emitted as explicit nulls, followed by any preserved unknown keys.
// Serializing the result and reparsing it yields an identical mapping.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("flatten config: %w", err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("flatten config: %w", err)
	}

	for k, v := range cfg.Extra {
		m[k] = v
	}

	return m, nil
}

// WriteFile serializes the resolved configuration to a YAML file at path.
// Keys are emitted in sorted order so backups diff cleanly between runs.
func WriteFile(path string, cfg *Config) error {
	m, err := ToMap(cfg)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
