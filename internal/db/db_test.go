package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/daylist/internal/models"
)

func openMemory(t *testing.T) *Journal {
	t.Helper()
	j, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournal_RecordAndEntries(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "submit", TaskID: 1}))
	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "toggle", TaskID: 1}))
	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "delete", TaskID: 9, Outcome: models.OutcomeNoop}))

	entries, err := j.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "submit", entries[0].Action)
	assert.Equal(t, models.OutcomeOK, entries[0].Outcome, "empty outcome defaults to ok")
	assert.Equal(t, "toggle", entries[1].Action)
	assert.Equal(t, models.OutcomeNoop, entries[2].Outcome)
	assert.Less(t, entries[0].ID, entries[1].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestJournal_RecordRequiresAction(t *testing.T) {
	j := openMemory(t)

	err := j.Record(context.Background(), models.JournalEntry{TaskID: 1})
	assert.Error(t, err)
}

func TestJournal_EntriesForTask(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "submit", TaskID: 1}))
	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "submit", TaskID: 2}))
	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "toggle", TaskID: 2}))

	entries, err := j.EntriesForTask(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "submit", entries[0].Action)
	assert.Equal(t, "toggle", entries[1].Action)
}

func TestJournal_Summary(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	for _, e := range []models.JournalEntry{
		{Action: "submit", Outcome: models.OutcomeOK},
		{Action: "submit", Outcome: models.OutcomeRejected},
		{Action: "submit", Outcome: models.OutcomeOK},
		{Action: "delete", Outcome: models.OutcomeNoop},
	} {
		require.NoError(t, j.Record(ctx, e))
	}

	counts, err := j.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.JournalCount{
		{Action: "delete", Outcome: models.OutcomeNoop, Count: 1},
		{Action: "submit", Outcome: models.OutcomeOK, Count: 2},
		{Action: "submit", Outcome: models.OutcomeRejected, Count: 1},
	}, counts)
}

func TestJournal_MemoryIsPerOpen(t *testing.T) {
	ctx := context.Background()
	first := openMemory(t)
	require.NoError(t, first.Record(ctx, models.JournalEntry{Action: "submit"}))

	second := openMemory(t)
	entries, err := second.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournal_FileDSN(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Ping(ctx))
	require.NoError(t, j.Record(ctx, models.JournalEntry{Action: "open"}))
	require.NoError(t, j.Close())

	assert.FileExists(t, path)
}

func TestJournal_CloseNil(t *testing.T) {
	var j *Journal
	assert.NoError(t, j.Close())
}
