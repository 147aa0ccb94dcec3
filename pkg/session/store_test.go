package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/history"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewStore(path)

	snap := calc.Snapshot{
		Display:  "42",
		Equation: "7 * ",
		Memory:   8,
		History: []history.Entry{
			{Expression: "7 + 3", Result: "10", Timestamp: 1700000000000},
		},
	}
	require.NoError(t, store.Save(snap))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err), "missing file should surface as not-exist")
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.False(t, os.IsNotExist(err))
}

func TestStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	require.NoError(t, store.Save(calc.Snapshot{Display: "1"}))
	require.NoError(t, store.Save(calc.Snapshot{Display: "2"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "2", got.Display)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
