package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// PTY tests only exercise exit mapping; interactive passthrough needs a
// real terminal.

func TestSpawnPTY_ExitMapping(t *testing.T) {
	r := New()

	res := r.SpawnPTY("true")
	assert.True(t, res.Success)
	assert.Equal(t, "Process completed", res.Message)

	res = r.SpawnPTY("sh -c 'exit 2'")
	assert.False(t, res.Success)
	assert.Equal(t, "Process failed with code 2", res.Message)
}

func TestSpawnPTY_MissingExecutable(t *testing.T) {
	res := New().SpawnPTY("definitely-not-a-real-command-xyz")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}
