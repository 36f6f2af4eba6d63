package config

import "fmt"

// Validate checks the resolved configuration for structural and
// dependent-key errors. It performs no I/O; path existence is checked by
// the CLI layer before the run starts.
//
// Rules:
//   - max_jobs must be at least 1.
//   - bin_size must be a positive number of base pairs.
//   - reads must list exactly two read-pair suffix markers.
//   - nbins_toMerge must not be negative (0 disables merging).
//   - downsample, when set, must be a positive read count.
//   - merge_samples requires sampleSheet to be set.
func Validate(cfg *Config) error {
	if cfg.MaxJobs < 1 {
		return fmt.Errorf("max_jobs must be >= 1, got %d", cfg.MaxJobs)
	}

	if cfg.BinSize <= 0 {
		return fmt.Errorf("bin_size must be a positive number of base pairs, got %d", cfg.BinSize)
	}

	if len(cfg.Reads) != 2 {
		return fmt.Errorf("reads must list exactly 2 read-pair suffix markers, got %d", len(cfg.Reads))
	}

	if cfg.NBinsToMerge < 0 {
		return fmt.Errorf("nbins_toMerge must not be negative, got %d", cfg.NBinsToMerge)
	}

	if cfg.Downsample != nil && *cfg.Downsample <= 0 {
		return fmt.Errorf("downsample must be a positive read count, got %d", *cfg.Downsample)
	}

	if cfg.MergeSamples && (cfg.SampleSheet == nil || *cfg.SampleSheet == "") {
		return fmt.Errorf("merge_samples is enabled but sampleSheet is not set")
	}

	return nil
}
