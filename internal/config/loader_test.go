package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpipe/hicpipe/internal/config"
)

// writeFile is a test helper that creates a temporary file with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

// ---------------------------------------------------------------------------
// LoadFile tests
// ---------------------------------------------------------------------------

func TestLoadFileBasicDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "defaults.yaml", "bin_size: 5000\nenzyme: DpnII\ntrim: true\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, m["bin_size"])
	assert.Equal(t, "DpnII", m["enzyme"])
	assert.Equal(t, true, m["trim"])
}

func TestLoadFileEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "")

	m, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestLoadFileKeepsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.yaml", "bin_size: 10000\nmy_plugin_option: 42\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42, m["my_plugin_option"])
}

func TestLoadFileStripsNamespaceKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.yaml", "maindir: /opt/pipelines\nworkflow: HiC\nbin_size: 10000\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, m, "maindir")
	assert.NotContains(t, m, "workflow")
	assert.Equal(t, 10000, m["bin_size"])
}

func TestLoadFileKeepsNullValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.yaml", "sampleSheet:\nchromosomes: null\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	require.Contains(t, m, "sampleSheet")
	assert.Nil(t, m["sampleSheet"])
}

func TestLoadFileMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", "bin_size: [10000, 5000\n")

	_, err := config.LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileReturnsErrorForMissingFile(t *testing.T) {
	_, err := config.LoadFile("/nonexistent/path/defaults.yaml")
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Decode tests
// ---------------------------------------------------------------------------

func TestDecodeTypedKeys(t *testing.T) {
	cfg := config.NewDefaultConfig()
	err := config.Decode(map[string]any{
		"bin_size":    25000,
		"enzyme":      "MboI",
		"local":       true,
		"reads":       []any{"_1", "_2"},
		"sampleSheet": "samples.tsv",
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 25000, cfg.BinSize)
	assert.Equal(t, "MboI", cfg.Enzyme)
	assert.True(t, cfg.Local)
	assert.Equal(t, []string{"_1", "_2"}, cfg.Reads)
	require.NotNil(t, cfg.SampleSheet)
	assert.Equal(t, "samples.tsv", *cfg.SampleSheet)
}

func TestDecodeTypeMismatchNamesKey(t *testing.T) {
	cfg := config.NewDefaultConfig()
	err := config.Decode(map[string]any{"bin_size": "ten thousand"}, cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bin_size")
}

func TestDecodePreservesUnknownKeys(t *testing.T) {
	cfg := config.NewDefaultConfig()
	err := config.Decode(map[string]any{
		"bin_size":         5000,
		"my_plugin_option": 42,
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Extra["my_plugin_option"])
	assert.NotContains(t, cfg.Extra, "bin_size")
}

func TestDecodeDistinguishesUnsetFromEmptyList(t *testing.T) {
	unset := config.NewDefaultConfig()
	err := config.Decode(map[string]any{}, unset)
	require.NoError(t, err)
	assert.Nil(t, unset.Chromosomes)

	empty := config.NewDefaultConfig()
	err = config.Decode(map[string]any{"chromosomes": []any{}}, empty)
	require.NoError(t, err)
	require.NotNil(t, empty.Chromosomes)
	assert.Empty(t, *empty.Chromosomes)
}

// ---------------------------------------------------------------------------
// Precedence tests
// ---------------------------------------------------------------------------

func TestLoadWithPrecedenceDefaultsOnly(t *testing.T) {
	cfg, err := config.LoadWithPrecedence("", "", nil)
	require.NoError(t, err)

	expected := config.NewDefaultConfig()
	assert.Equal(t, expected.BinSize, cfg.BinSize)
	assert.Equal(t, expected.Enzyme, cfg.Enzyme)
	assert.Equal(t, expected.MaxJobs, cfg.MaxJobs)
	assert.Nil(t, cfg.SampleSheet)
}

func TestLoadWithPrecedenceUserOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	defaults := writeFile(t, dir, "defaults.yaml", "bin_size: 10000\nenzyme: HindIII\n")
	user := writeFile(t, dir, "user.yaml", "bin_size: 5000\n")

	cfg, err := config.LoadWithPrecedence(defaults, user, nil)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.BinSize)
	assert.Equal(t, "HindIII", cfg.Enzyme)
}

func TestLoadWithPrecedenceCLIWinsOverFiles(t *testing.T) {
	dir := t.TempDir()
	defaults := writeFile(t, dir, "defaults.yaml", "bin_size: 10000\n")
	user := writeFile(t, dir, "user.yaml", "bin_size: 5000\nenzyme: DpnII\n")

	cfg, err := config.LoadWithPrecedence(defaults, user, map[string]any{"bin_size": 2500})
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.BinSize)
	assert.Equal(t, "DpnII", cfg.Enzyme)
}

func TestLoadWithPrecedenceNullNeverClobbers(t *testing.T) {
	dir := t.TempDir()
	defaults := writeFile(t, dir, "defaults.yaml", "enzyme: DpnII\n")
	user := writeFile(t, dir, "user.yaml", "enzyme:\n")

	cfg, err := config.LoadWithPrecedence(defaults, user, nil)
	require.NoError(t, err)
	assert.Equal(t, "DpnII", cfg.Enzyme)
}

func TestLoadWithPrecedenceMissingUserFileFails(t *testing.T) {
	_, err := config.LoadWithPrecedence("", "/nonexistent/user.yaml", nil)
	assert.Error(t, err)
}
