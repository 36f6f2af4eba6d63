// Package cli provides flag binding and validation for the hicpipe CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hicpipe/hicpipe/internal/genome"
)

// Flags holds the raw CLI flag values before they are folded into the
// configuration precedence chain. Only flags the user explicitly set (per
// cobra's Changed tracking) become overrides, so config file values are
// never clobbered by flag defaults.
type Flags struct {
	// Config sources (CLI-only, never part of the resolved mapping).
	DefaultsFile string
	ConfigFile   string

	// Input/output locations.
	Input  string
	Output string

	// Scheduler parameters.
	Local            bool
	MaxJobs          int
	SnakemakeOptions string
	ClusterConfig    string
	Tempdir          string

	// Read preprocessing.
	Downsample  int
	Trim        bool
	TrimProg    string
	TrimOptions string
	FastQC      bool

	// Matrix construction.
	BinSize        int
	RFResolution   bool
	Enzyme         string
	RestrictRegion string
	NBinsToMerge   int
	Chromosomes    []string

	// Sample merging.
	MergeSamples bool
	SampleSheet  string

	// Downstream analysis.
	TADParams         string
	NoTAD             bool
	NoCorrect         bool
	DistVsCount       bool
	DistVsCountParams string

	// Runtime.
	Verbose bool
	DryRun  bool
}

// BindFlags registers all CLI flags on the given cobra command.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, f *Flags) {
	flags := cmd.Flags()

	// Config sources
	flags.StringVar(&f.DefaultsFile, "defaults", "", "Path to the shipped defaults file")
	flags.StringVarP(&f.ConfigFile, "configfile", "c", "", "Path to a user override config file")

	// Input/output
	flags.StringVarP(&f.Input, "input-dir", "i", "", "Directory with fastq input files")
	flags.StringVarP(&f.Output, "output-dir", "o", "", "Output directory for the run")

	// Scheduler
	flags.BoolVar(&f.Local, "local", false, "Run on the local machine instead of submitting to a cluster")
	flags.IntVarP(&f.MaxJobs, "jobs", "j", 5, "Maximum number of concurrently submitted jobs")
	flags.StringVar(&f.SnakemakeOptions, "snakemake-options", "", "Extra options passed through to the workflow engine")
	flags.StringVar(&f.ClusterConfig, "cluster-config", "", "Cluster resource config passed to the workflow engine")
	flags.StringVar(&f.Tempdir, "tempdir", "/tmp", "Prefix for the scratch temp directory")

	// Read preprocessing
	flags.IntVar(&f.Downsample, "downsample", 0, "Downsample each sample to this many reads")
	flags.BoolVar(&f.Trim, "trim", false, "Enable adapter trimming")
	flags.StringVar(&f.TrimProg, "trim-prog", "cutadapt", "Trimming program to use")
	flags.StringVar(&f.TrimOptions, "trim-options", "", "Extra options for the trimming program")
	flags.BoolVar(&f.FastQC, "fastqc", false, "Run FastQC on the input reads")

	// Matrix construction
	flags.IntVar(&f.BinSize, "bin-size", 10000, "Contact matrix bin width in base pairs")
	flags.BoolVar(&f.RFResolution, "rf-resolution", false, "Bin the matrix by restriction fragment instead of fixed size")
	flags.StringVar(&f.Enzyme, "enzyme", "HindIII", "Restriction enzyme used in the assay")
	flags.StringVar(&f.RestrictRegion, "restrict-region", "", "Restrict matrix building to this genomic region")
	flags.IntVar(&f.NBinsToMerge, "nbins-to-merge", 0, "Number of neighbouring bins to merge (0 disables)")
	flags.StringSliceVar(&f.Chromosomes, "chromosomes", nil, "Restrict the matrix to these chromosomes")

	// Sample merging
	flags.BoolVar(&f.MergeSamples, "merge-samples", false, "Merge samples according to the sample sheet")
	flags.StringVar(&f.SampleSheet, "sample-sheet", "", "Sample sheet (TSV with name and condition columns)")

	// Downstream analysis
	flags.StringVar(&f.TADParams, "tad-params", "", "Parameters for TAD calling")
	flags.BoolVar(&f.NoTAD, "no-tad", false, "Skip TAD calling")
	flags.BoolVar(&f.NoCorrect, "no-correct", false, "Skip matrix correction")
	flags.BoolVar(&f.DistVsCount, "dist-vs-count", false, "Plot contact counts against genomic distance")
	flags.StringVar(&f.DistVsCountParams, "dist-vs-count-params", "", "Parameters for the distance-vs-counts plot")

	// Runtime
	flags.BoolVarP(&f.Verbose, "verbose", "v", false, "Print the resolved configuration and debug output")
	flags.BoolVarP(&f.DryRun, "dry-run", "n", false, "Compose the engine invocation without running it")
}

// BuildOverrides collects the flags the user explicitly set into a config
// override map keyed by config file key names. The genome positional
// argument is folded in as well when non-empty.
func BuildOverrides(cmd *cobra.Command, f *Flags, genomeArg string) map[string]any {
	overrides := make(map[string]any)

	if genomeArg != "" {
		overrides["genome"] = genomeArg
	}

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"input-dir":            {"indir", f.Input},
		"output-dir":           {"outdir", f.Output},
		"snakemake-options":    {"snakemake_options", f.SnakemakeOptions},
		"cluster-config":       {"cluster_configfile", f.ClusterConfig},
		"tempdir":              {"tempdir", f.Tempdir},
		"trim-prog":            {"trim_prog", f.TrimProg},
		"trim-options":         {"trim_options", f.TrimOptions},
		"enzyme":               {"enzyme", f.Enzyme},
		"restrict-region":      {"restrict_region", f.RestrictRegion},
		"sample-sheet":         {"sampleSheet", f.SampleSheet},
		"tad-params":           {"tadparams", f.TADParams},
		"dist-vs-count-params": {"distVsCountParams", f.DistVsCountParams},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	intFlags := map[string]struct {
		key string
		val int
	}{
		"jobs":           {"max_jobs", f.MaxJobs},
		"downsample":     {"downsample", f.Downsample},
		"bin-size":       {"bin_size", f.BinSize},
		"nbins-to-merge": {"nbins_toMerge", f.NBinsToMerge},
	}
	for flag, mapping := range intFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"local":         {"local", f.Local},
		"trim":          {"trim", f.Trim},
		"fastqc":        {"fastqc", f.FastQC},
		"rf-resolution": {"RF_resolution", f.RFResolution},
		"merge-samples": {"merge_samples", f.MergeSamples},
		"no-tad":        {"noTAD", f.NoTAD},
		"no-correct":    {"noCorrect", f.NoCorrect},
		"dist-vs-count": {"distVsCount", f.DistVsCount},
		"verbose":       {"verbose", f.Verbose},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	if cmd.Flags().Changed("chromosomes") {
		overrides["chromosomes"] = f.Chromosomes
	}

	return overrides
}

// ValidateFlags checks for invalid flag values and combinations after
// parsing. Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, f *Flags) error {
	// --configfile must exist if provided
	if f.ConfigFile != "" {
		if _, err := os.Stat(f.ConfigFile); err != nil {
			return fmt.Errorf("--configfile: %w", err)
		}
	}

	// --defaults must exist if provided
	if f.DefaultsFile != "" {
		if _, err := os.Stat(f.DefaultsFile); err != nil {
			return fmt.Errorf("--defaults: %w", err)
		}
	}

	// --cluster-config must exist if provided
	if f.ClusterConfig != "" {
		if _, err := os.Stat(f.ClusterConfig); err != nil {
			return fmt.Errorf("--cluster-config: %w", err)
		}
	}

	// --sample-sheet must exist if provided
	if f.SampleSheet != "" {
		if _, err := os.Stat(f.SampleSheet); err != nil {
			return fmt.Errorf("--sample-sheet: %w", err)
		}
	}

	// The enzyme must be one the matrix builder knows how to digest with.
	if cmd.Flags().Changed("enzyme") {
		if err := genome.ValidateEnzyme(f.Enzyme); err != nil {
			return fmt.Errorf("--enzyme: %w", err)
		}
	}

	return nil
}
