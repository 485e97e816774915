package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopigraph/kopigraph/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "kopi.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestRecordAndListHistory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.RecordQuery(ctx, service.HistoryEntry{
		Question: "What coffees are from Italy?",
		Cypher:   "MATCH (c:Coffee)-[:ORIGINATES_FROM]->(o:Origin {code: 'italy'}) RETURN c.name",
		Answer:   "Seven coffees come from Italy.",
		Success:  true,
	})
	require.NoError(t, err)

	entries, err := store.ListHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "What coffees are from Italy?", entries[0].Question)
	assert.True(t, entries[0].Success)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRecordQuery_RequiresQuestion(t *testing.T) {
	store := newTestStorage(t)

	err := store.RecordQuery(context.Background(), service.HistoryEntry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question is required")
}

func TestListHistory_NewestFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.RecordQuery(ctx, service.HistoryEntry{
			Question: fmt.Sprintf("question %d", i),
		}))
	}

	entries, err := store.ListHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "question 3", entries[0].Question)
	assert.Equal(t, "question 1", entries[2].Question)
}

func TestRecordQuery_PrunesBeyondCap(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for i := 1; i <= maxHistoryEntries+5; i++ {
		require.NoError(t, store.RecordQuery(ctx, service.HistoryEntry{
			Question: fmt.Sprintf("question %d", i),
		}))
	}

	entries, err := store.ListHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, maxHistoryEntries)

	// Oldest entries are gone.
	assert.Equal(t, fmt.Sprintf("question %d", maxHistoryEntries+5), entries[0].Question)
	assert.Equal(t, "question 6", entries[len(entries)-1].Question)
}

func TestClearHistory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.RecordQuery(ctx, service.HistoryEntry{Question: "q"}))
	require.NoError(t, store.ClearHistory(ctx))

	entries, err := store.ListHistory(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.Error(t, err)
}
