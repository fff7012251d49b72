package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(score int, op question.Operation, at time.Time) history.Record {
	return history.Record{
		Score:     score,
		Accuracy:  80,
		Op:        op,
		Level:     question.Level1,
		MaxStreak: 4,
		TotalTime: 45 * time.Second,
		Grade:     "B",
		Stars:     3,
		Timestamp: at,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='session_results'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "session_results", name)
}

func TestSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	// Empty store yields no records.
	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, "session-1", testRecord(85, question.Addition, at)))

	records, err = repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 85, rec.Score)
	assert.Equal(t, 80, rec.Accuracy)
	assert.Equal(t, question.Addition, rec.Op)
	assert.Equal(t, question.Level1, rec.Level)
	assert.Equal(t, 4, rec.MaxStreak)
	assert.Equal(t, 45*time.Second, rec.TotalTime)
	assert.Equal(t, "B", rec.Grade)
	assert.Equal(t, 3, rec.Stars)
	assert.True(t, rec.Timestamp.Equal(at))
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord(10*(i+1), question.Subtraction, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Save(ctx, "session", rec))
	}

	// Only the newest 3, returned oldest first.
	records, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 30, records[0].Score)
	assert.Equal(t, 40, records[1].Score)
	assert.Equal(t, 50, records[2].Score)
}

func TestRecentDefaultLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < history.MaxRecords+5; i++ {
		rec := testRecord(i, question.Multiplication, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Save(ctx, "session", rec))
	}

	records, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, history.MaxRecords)
}

func TestCountAndClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, "session", testRecord(50, question.Division, time.Now().UTC())))
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, repo.Clear(ctx))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
