package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsEmpty(t *testing.T) {
	t.Parallel()

	hist, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, hist.Entries)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	in := &File{Entries: []Entry{
		{ID: "abc_20260101_120000", Project: "soil-monitor", Status: StatusCompleted, Files: 12, CreatedAt: time.Now().UTC().Truncate(time.Second)},
	}}
	require.NoError(t, Save(stateDir, in))

	out, err := Load(stateDir)
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, in.Entries[0].ID, out.Entries[0].ID)
	assert.Equal(t, StatusCompleted, out.Entries[0].Status)
}

func TestSave_CreatesStateDir(t *testing.T) {
	t.Parallel()

	stateDir := filepath.Join(t.TempDir(), "nested", "state")
	require.NoError(t, Save(stateDir, &File{}))
	_, err := os.Stat(filepath.Join(stateDir, FileName))
	assert.NoError(t, err)
}

func TestLoad_CorruptedFileIsBackedUp(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	historyPath := filepath.Join(stateDir, FileName)
	require.NoError(t, os.WriteFile(historyPath, []byte("not json{"), 0644))

	hist, err := Load(stateDir)
	require.NoError(t, err)
	assert.Empty(t, hist.Entries)

	backup, err := os.ReadFile(historyPath + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "not json{", string(backup))
}

func TestClear(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	require.NoError(t, Save(stateDir, &File{Entries: []Entry{{ID: "x"}}}))
	require.NoError(t, Clear(stateDir))

	hist, err := Load(stateDir)
	require.NoError(t, err)
	assert.Empty(t, hist.Entries)
}

func TestGenerateID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestWriter_StartAndComplete(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 10)
	id, err := w.WriteStart("soil-monitor", "/tmp/proj", "openai", "gpt-4o")
	require.NoError(t, err)

	hist, err := Load(w.StateDir)
	require.NoError(t, err)
	require.Len(t, hist.Entries, 1)
	assert.Equal(t, StatusRunning, hist.Entries[0].Status)
	assert.Equal(t, "openai", hist.Entries[0].Provider)
	assert.Nil(t, hist.Entries[0].CompletedAt)

	require.NoError(t, w.UpdateComplete(id, StatusCompleted, 9, nil, 2*time.Second))

	hist, err = Load(w.StateDir)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, hist.Entries[0].Status)
	assert.Equal(t, 9, hist.Entries[0].Files)
	assert.Equal(t, "2s", hist.Entries[0].Duration)
	assert.NotNil(t, hist.Entries[0].CompletedAt)
}

func TestWriter_CompleteWithError(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 10)
	id, err := w.WriteStart("proj", "/tmp/proj", "", "")
	require.NoError(t, err)

	require.NoError(t, w.UpdateComplete(id, StatusFailed, 0, assert.AnError, time.Second))

	hist, err := Load(w.StateDir)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, hist.Entries[0].Status)
	assert.Equal(t, assert.AnError.Error(), hist.Entries[0].Error)
}

func TestWriter_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 10)
	err := w.UpdateComplete("missing", StatusCompleted, 0, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry not found")
}

func TestWriter_PrunesOldEntries(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), 3)
	for i := 0; i < 5; i++ {
		_, err := w.WriteStart("proj", "/tmp/proj", "", "")
		require.NoError(t, err)
	}

	hist, err := Load(w.StateDir)
	require.NoError(t, err)
	assert.Len(t, hist.Entries, 3)
}
