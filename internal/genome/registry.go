package genome

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hicpipe/hicpipe/internal/config"
)

// requiredKeys are the organism config entries the Hi-C workflow cannot run
// without.
var requiredKeys = []string{"genome_fasta", "bwa_index", "genome_size"}

// Organism is a loaded genome configuration: the resolved name, the file it
// was read from, and the raw key-value data for downstream consumers.
type Organism struct {
	Name string
	Path string
	Data map[string]any
}

// Locate resolves a genome name to its organism config file.
//
// Search order:
//  1. <maindir>/shared/organisms/<name>.yaml (registered organism)
//  2. name itself, taken as a path to a user-supplied organism file
func Locate(name, maindir string) (string, error) {
	if maindir != "" {
		registered := filepath.Join(maindir, "shared", "organisms", name+".yaml")
		if _, err := os.Stat(registered); err == nil {
			return registered, nil
		}
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("genome configuration not found for %q", name)
}

// Load locates and parses the organism config for the given genome name.
func Load(name, maindir string) (*Organism, error) {
	path, err := Locate(name, maindir)
	if err != nil {
		return nil, err
	}

	data, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("genome config: %w", err)
	}

	return &Organism{Name: name, Path: path, Data: data}, nil
}

// Validate checks that the organism config declares every key the workflow
// requires, naming the first missing one.
func (o *Organism) Validate() error {
	for _, k := range requiredKeys {
		v, ok := o.Data[k]
		if !ok || v == nil {
			return fmt.Errorf("genome config %s is missing required key %q", o.Path, k)
		}
	}
	return nil
}

// String returns the value of key as a string, or "" when the key is unset
// or not a string.
func (o *Organism) String(key string) string {
	if s, ok := o.Data[key].(string); ok {
		return s
	}
	return ""
}
