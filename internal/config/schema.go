// Package config defines the hicpipe configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < shipped defaults file < user override file <
// CLI flag overrides. The resolved mapping is built once at startup and is
// treated as immutable afterwards; every downstream stage receives the same
// resolved Config.
package config

// Config holds every configuration key of the Hi-C workflow.
//
// Keys that may legitimately be unset use pointer or nil-slice types so that
// "unset" stays distinguishable from an explicit falsy value (false, 0, "",
// or an empty list). Unknown keys found in a config file are preserved in
// Extra rather than rejected.
type Config struct {
	// Input/output locations.
	Indir  string `yaml:"indir" mapstructure:"indir"`
	Outdir string `yaml:"outdir" mapstructure:"outdir"`
	Genome string `yaml:"genome" mapstructure:"genome"`

	// Scheduler parameters, consumed by the external workflow engine.
	Local            bool    `yaml:"local" mapstructure:"local"`
	MaxJobs          int     `yaml:"max_jobs" mapstructure:"max_jobs"`
	SnakemakeOptions *string `yaml:"snakemake_options" mapstructure:"snakemake_options"`
	ClusterConfig    *string `yaml:"cluster_configfile" mapstructure:"cluster_configfile"`
	Tempdir          string  `yaml:"tempdir" mapstructure:"tempdir"`

	// Input file naming.
	Ext   string   `yaml:"ext" mapstructure:"ext"`
	Reads []string `yaml:"reads" mapstructure:"reads"`

	// Read preprocessing.
	Downsample  *int    `yaml:"downsample" mapstructure:"downsample"`
	Trim        bool    `yaml:"trim" mapstructure:"trim"`
	TrimProg    string  `yaml:"trim_prog" mapstructure:"trim_prog"`
	TrimOptions *string `yaml:"trim_options" mapstructure:"trim_options"`
	FastQC      bool    `yaml:"fastqc" mapstructure:"fastqc"`

	// Contact matrix construction. Chromosomes is a pointer so that an
	// unset restriction (nil, all chromosomes) serializes as null and stays
	// distinct from an explicit empty list; a plain nil slice would be
	// emitted as [] and come back as an empty restriction after a round
	// trip through the config backup.
	BinSize        int       `yaml:"bin_size" mapstructure:"bin_size"`
	RFResolution   bool      `yaml:"RF_resolution" mapstructure:"RF_resolution"`
	Enzyme         string    `yaml:"enzyme" mapstructure:"enzyme"`
	RestrictRegion *string   `yaml:"restrict_region" mapstructure:"restrict_region"`
	NBinsToMerge   int       `yaml:"nbins_toMerge" mapstructure:"nbins_toMerge"`
	Chromosomes    *[]string `yaml:"chromosomes" mapstructure:"chromosomes"`

	// Sample merging.
	MergeSamples bool    `yaml:"merge_samples" mapstructure:"merge_samples"`
	SampleSheet  *string `yaml:"sampleSheet" mapstructure:"sampleSheet"`

	// Downstream analysis toggles.
	TADParams         string  `yaml:"tadparams" mapstructure:"tadparams"`
	NoTAD             bool    `yaml:"noTAD" mapstructure:"noTAD"`
	NoCorrect         bool    `yaml:"noCorrect" mapstructure:"noCorrect"`
	DistVsCount       bool    `yaml:"distVsCount" mapstructure:"distVsCount"`
	DistVsCountParams *string `yaml:"distVsCountParams" mapstructure:"distVsCountParams"`

	// Runtime flags.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Extra preserves unknown keys from config files so that
	// workflow-specific extensions survive the load/merge/serialize cycle.
	Extra map[string]any `yaml:"-" mapstructure:"-"`
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Local:        false,
		MaxJobs:      5,
		Tempdir:      "/tmp",
		Ext:          ".fastq.gz",
		Reads:        []string{"_R1", "_R2"},
		Trim:         false,
		TrimProg:     "cutadapt",
		FastQC:       false,
		BinSize:      10000,
		RFResolution: false,
		Enzyme:       "HindIII",
		NBinsToMerge: 0,
		MergeSamples: false,
		TADParams:    "--minDepth 150000 --maxDepth 300000 --step 150000 --thresholdComparisons 0.01 --delta 0.01",
		NoTAD:        false,
		NoCorrect:    false,
		DistVsCount:  false,
		Verbose:      false,
	}
}
