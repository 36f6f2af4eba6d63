package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpipe/hicpipe/internal/config"
	"github.com/hicpipe/hicpipe/internal/engine"
)

// ---------------------------------------------------------------------------
// Target selection tests
// ---------------------------------------------------------------------------

func TestTargetsDefaults(t *testing.T) {
	got := engine.Targets(config.NewDefaultConfig())
	assert.Equal(t, []string{"mapping", "matrix", "correct", "tads"}, got)
}

func TestTargetsNoTADSkipsTADCalling(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.NoTAD = true

	got := engine.Targets(cfg)
	assert.NotContains(t, got, "tads")
	assert.Contains(t, got, "correct")
}

func TestTargetsNoCorrectSkipsCorrectionAndTADs(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.NoCorrect = true

	got := engine.Targets(cfg)
	assert.NotContains(t, got, "correct")
	assert.NotContains(t, got, "tads")
}

func TestTargetsDistVsCountIndependentOfNoTAD(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.NoTAD = true
	cfg.DistVsCount = true

	got := engine.Targets(cfg)
	assert.Contains(t, got, "dist_vs_counts")
	assert.NotContains(t, got, "tads")
}

func TestTargetsPreprocessingToggles(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.FastQC = true
	cfg.Trim = true
	cfg.NBinsToMerge = 5

	got := engine.Targets(cfg)
	assert.Equal(t, "fastqc", got[0])
	assert.Contains(t, got, "trim")
	assert.Contains(t, got, "merge_bins")
}

// ---------------------------------------------------------------------------
// Invocation rendering tests
// ---------------------------------------------------------------------------

func testInvocation(t *testing.T, mutate func(*config.Config)) *engine.Invocation {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Outdir = "/runs/hic1"
	if mutate != nil {
		mutate(cfg)
	}
	return engine.NewInvocation(cfg, "/opt/hicpipe/Snakefile", "/runs/hic1/config.yaml", false)
}

func TestArgsCoreParameters(t *testing.T) {
	args := testInvocation(t, nil).Args()

	require.GreaterOrEqual(t, len(args), 8)
	assert.Equal(t, []string{
		"--snakefile", "/opt/hicpipe/Snakefile",
		"--configfile", "/runs/hic1/config.yaml",
		"--directory", "/runs/hic1",
		"--jobs", "5",
	}, args[:8])
}

func TestArgsClusterModeByDefault(t *testing.T) {
	args := testInvocation(t, nil).Args()
	assert.Contains(t, args, "--cluster")
}

func TestArgsLocalModeSkipsCluster(t *testing.T) {
	args := testInvocation(t, func(cfg *config.Config) {
		cfg.Local = true
		cc := "/etc/hicpipe/cluster.yaml"
		cfg.ClusterConfig = &cc
	}).Args()
	assert.NotContains(t, args, "--cluster")
	assert.NotContains(t, args, "--cluster-config")
}

func TestArgsClusterConfigPassedInClusterMode(t *testing.T) {
	args := testInvocation(t, func(cfg *config.Config) {
		cc := "/etc/hicpipe/cluster.yaml"
		cfg.ClusterConfig = &cc
	}).Args()

	assert.Contains(t, args, "--cluster-config")
	assert.Contains(t, args, "/etc/hicpipe/cluster.yaml")
}

func TestArgsNoClusterConfigWhenUnset(t *testing.T) {
	args := testInvocation(t, nil).Args()
	assert.NotContains(t, args, "--cluster-config")
}

func TestArgsSplitsExtraOptions(t *testing.T) {
	args := testInvocation(t, func(cfg *config.Config) {
		opts := "--rerun-incomplete --keep-going"
		cfg.SnakemakeOptions = &opts
	}).Args()

	assert.Contains(t, args, "--rerun-incomplete")
	assert.Contains(t, args, "--keep-going")
}

func TestArgsDryRun(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Outdir = "/runs/hic1"
	inv := engine.NewInvocation(cfg, "/opt/hicpipe/Snakefile", "/runs/hic1/config.yaml", true)

	assert.Contains(t, inv.Args(), "--dry-run")
}

func TestArgsEndWithTargets(t *testing.T) {
	inv := testInvocation(t, nil)
	args := inv.Args()

	n := len(inv.Targets)
	assert.Equal(t, inv.Targets, args[len(args)-n:])
}
