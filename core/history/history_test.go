package history

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/runx/core/runner"
)

func newTestStore(t *testing.T) *Store {
	return NewStore(filepath.Join(t.TempDir(), "history.yaml"))
}

func TestStore_AppendAndList(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.Append("exec", "echo hello", runner.Result{Success: true, Message: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.When.IsZero())

	_, err = store.Append("run", "false", runner.Result{Success: false, Message: "Process failed with code 1"})
	require.NoError(t, err)

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "exec", records[0].Mode)
	assert.Equal(t, "echo hello", records[0].Command)
	assert.True(t, records[0].Success)
	assert.Equal(t, "hello", records[0].Message)

	assert.Equal(t, "run", records[1].Mode)
	assert.False(t, records[1].Success)

	// IDs are unique per record
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestStore_ListLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.Append("exec", fmt.Sprintf("echo %d", i), runner.Result{Success: true})
		require.NoError(t, err)
	}

	records, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Most recent records, oldest first
	assert.Equal(t, "echo 3", records[0].Command)
	assert.Equal(t, "echo 4", records[1].Command)
}

func TestStore_EmptyAndClear(t *testing.T) {
	store := newTestStore(t)

	records, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Clear on a missing file is a no-op
	require.NoError(t, store.Clear())

	_, err = store.Append("ssh", "ssh ...", runner.Result{Success: true})
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	records, err = store.List(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
