package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError(t *testing.T) {
	err := NewCommandError(1)
	assert.Equal(t, "command failed", err.Error())
	assert.Equal(t, 1, err.ExitCode())

	err = NewCommandError(42)
	assert.Equal(t, 42, err.ExitCode())

	var asError error = NewCommandError(1)
	cmdErr, ok := asError.(*CommandError)
	assert.True(t, ok)
	assert.Equal(t, 1, cmdErr.ExitCode())
}
