package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpipe/hicpipe/internal/config"
)

func TestValidateDefaultsPass(t *testing.T) {
	err := config.Validate(config.NewDefaultConfig())
	assert.NoError(t, err)
}

func TestValidateRejectsZeroMaxJobs(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.MaxJobs = 0

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_jobs")
}

func TestValidateRejectsNonPositiveBinSize(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.BinSize = -200

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bin_size")
}

func TestValidateRejectsWrongReadMarkerCount(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Reads = []string{"_R1"}

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reads")
}

func TestValidateRejectsNegativeNBinsToMerge(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.NBinsToMerge = -1

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nbins_toMerge")
}

func TestValidateRejectsNonPositiveDownsample(t *testing.T) {
	cfg := config.NewDefaultConfig()
	n := 0
	cfg.Downsample = &n

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "downsample")
}

func TestValidateMergeSamplesRequiresSampleSheet(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.MergeSamples = true

	err := config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sampleSheet")
}

func TestValidateMergeSamplesWithSheetPasses(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.MergeSamples = true
	sheet := "samples.tsv"
	cfg.SampleSheet = &sheet

	assert.NoError(t, config.Validate(cfg))
}
