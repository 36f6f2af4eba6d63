// Package engine composes and runs the external workflow-engine invocation.
//
// The engine owns scheduling and rule resolution; hicpipe only decides which
// top-level targets are requested (from the config toggles) and how the
// engine is parameterized (jobs limit, config file, cluster submission).
package engine

import (
	"strconv"
	"strings"

	"github.com/hicpipe/hicpipe/internal/config"
)

// Invocation describes a single workflow-engine run.
type Invocation struct {
	Snakefile     string
	ConfigFile    string
	Workdir       string
	Jobs          int
	Local         bool
	ClusterConfig string
	DryRun        bool
	ExtraOpts     string
	Targets       []string
}

// clusterSubmit is the submission command used when not running locally.
// Job logs land in cluster_logs/ inside the working directory.
const clusterSubmit = "qsub -e cluster_logs -o cluster_logs"

// Targets derives the requested top-level targets from the resolved
// configuration:
//
//   - Mapping and matrix building always run.
//   - Matrix correction runs unless noCorrect is set.
//   - TAD calling runs unless noTAD is set; it also needs a corrected
//     matrix, so noCorrect implies it is skipped.
//   - The distance-vs-counts plot is added when distVsCount is set. The
//     toggle is independent of noTAD: plots still run when TAD calling
//     is skipped.
//   - FastQC and trimming targets are added when their toggles are on.
func Targets(cfg *config.Config) []string {
	targets := []string{}

	if cfg.FastQC {
		targets = append(targets, "fastqc")
	}
	if cfg.Trim {
		targets = append(targets, "trim")
	}

	targets = append(targets, "mapping", "matrix")

	if cfg.MergeSamples {
		targets = append(targets, "merge_samples")
	}
	if cfg.NBinsToMerge > 0 {
		targets = append(targets, "merge_bins")
	}
	if !cfg.NoCorrect {
		targets = append(targets, "correct")
		if !cfg.NoTAD {
			targets = append(targets, "tads")
		}
	}
	if cfg.DistVsCount {
		targets = append(targets, "dist_vs_counts")
	}

	return targets
}

// NewInvocation builds the engine invocation for the given resolved
// configuration, workflow definition and config backup path.
func NewInvocation(cfg *config.Config, snakefile, configBackup string, dryRun bool) *Invocation {
	inv := &Invocation{
		Snakefile:  snakefile,
		ConfigFile: configBackup,
		Workdir:    cfg.Outdir,
		Jobs:       cfg.MaxJobs,
		Local:      cfg.Local,
		DryRun:     dryRun,
		Targets:    Targets(cfg),
	}
	if cfg.SnakemakeOptions != nil {
		inv.ExtraOpts = *cfg.SnakemakeOptions
	}
	if cfg.ClusterConfig != nil {
		inv.ClusterConfig = *cfg.ClusterConfig
	}
	return inv
}

// Args renders the invocation as a snakemake argument vector.
func (inv *Invocation) Args() []string {
	args := []string{
		"--snakefile", inv.Snakefile,
		"--configfile", inv.ConfigFile,
		"--directory", inv.Workdir,
		"--jobs", strconv.Itoa(inv.Jobs),
	}

	if !inv.Local {
		args = append(args, "--cluster", clusterSubmit)
		if inv.ClusterConfig != "" {
			args = append(args, "--cluster-config", inv.ClusterConfig)
		}
	}
	if inv.DryRun {
		args = append(args, "--dry-run")
	}
	if inv.ExtraOpts != "" {
		args = append(args, strings.Fields(inv.ExtraOpts)...)
	}

	args = append(args, inv.Targets...)
	return args
}
