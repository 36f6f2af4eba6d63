// Package rundir manages the on-disk layout of a pipeline run: the output
// directory, the resolved-configuration backup, the scratch temp directory,
// and log cleanup.
package rundir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hicpipe/hicpipe/internal/config"
)

const (
	configBackupName = "config.yaml"
	clusterLogsDir   = "cluster_logs"
)

// Setup creates the output directory and its cluster log directory.
func Setup(outdir string) error {
	if outdir == "" {
		return fmt.Errorf("output directory is not set")
	}
	if err := os.MkdirAll(filepath.Join(outdir, clusterLogsDir), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// WriteConfigBackup writes the resolved configuration into the output
// directory and returns the backup path. The backup is what the workflow
// engine is pointed at, so a run can always be reproduced from its outdir.
func WriteConfigBackup(outdir string, cfg *config.Config) (string, error) {
	path := filepath.Join(outdir, configBackupName)
	if err := config.WriteFile(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// MakeTempDir creates a scratch directory under prefix, falling back to
// fallback when the preferred prefix is not writable (a cluster node may
// mount scratch storage read-only).
func MakeTempDir(prefix, fallback string) (string, error) {
	dir, err := os.MkdirTemp(prefix, "tmp.hicpipe.*")
	if err == nil {
		return dir, nil
	}

	dir, ferr := os.MkdirTemp(fallback, "tmp.hicpipe.*")
	if ferr != nil {
		return "", fmt.Errorf("create temp dir under %s (and fallback %s): %w", prefix, fallback, ferr)
	}
	return dir, nil
}

// CleanLogs removes empty log files below outdir, both in cluster_logs/
// and in any */logs/ directory, mirroring the layout the engine leaves
// behind. Non-empty logs are kept.
func CleanLogs(outdir string) error {
	patterns := []string{
		filepath.Join(outdir, clusterLogsDir, "*"),
		filepath.Join(outdir, "*", "logs", "*"),
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("scan logs: %w", err)
		}
		for _, f := range matches {
			info, err := os.Stat(f)
			if err != nil || info.IsDir() {
				continue
			}
			if info.Size() == 0 {
				if err := os.Remove(f); err != nil {
					return fmt.Errorf("remove empty log %s: %w", f, err)
				}
			}
		}
	}

	return nil
}
