package exitcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hicpipe/hicpipe/internal/exitcode"
)

func TestCodeValues(t *testing.T) {
	assert.Equal(t, 0, exitcode.Success)
	assert.Equal(t, 1, exitcode.Error)
	assert.Equal(t, 2, exitcode.ConfigInvalid)
	assert.Equal(t, 3, exitcode.GenomeNotFound)
	assert.Equal(t, 4, exitcode.NoSamples)
	assert.Equal(t, 5, exitcode.EngineFailed)
	assert.Equal(t, 130, exitcode.Interrupted)
}

func TestName(t *testing.T) {
	assert.Equal(t, "Success", exitcode.Name(exitcode.Success))
	assert.Equal(t, "ConfigInvalid", exitcode.Name(exitcode.ConfigInvalid))
	assert.Equal(t, "Interrupted", exitcode.Name(exitcode.Interrupted))
	assert.Equal(t, "unknown", exitcode.Name(42))
}
