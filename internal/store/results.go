package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
)

// ResultRepo stores and retrieves session results.
type ResultRepo struct {
	db *sql.DB
}

// Save appends one finished session, identified by its session ID.
func (r *ResultRepo) Save(ctx context.Context, sessionID string, rec history.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_results
			(session_id, operation, level, score, accuracy, max_streak, total_ms, grade, stars, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID,
		string(rec.Op),
		int(rec.Level),
		rec.Score,
		rec.Accuracy,
		rec.MaxStreak,
		rec.TotalTime.Milliseconds(),
		rec.Grade,
		rec.Stars,
		rec.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save session result: %w", err)
	}
	return nil
}

// Recent returns up to limit results, oldest first, ready to seed a
// history tracker.
func (r *ResultRepo) Recent(ctx context.Context, limit int) ([]history.Record, error) {
	if limit <= 0 {
		limit = history.MaxRecords
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT operation, level, score, accuracy, max_streak, total_ms, grade, stars, created_at
		FROM (
			SELECT * FROM session_results ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session results: %w", err)
	}
	defer rows.Close()

	var records []history.Record
	for rows.Next() {
		var (
			op      string
			level   int
			totalMS int64
			created string
			rec     history.Record
		)
		if err := rows.Scan(&op, &level, &rec.Score, &rec.Accuracy, &rec.MaxStreak, &totalMS, &rec.Grade, &rec.Stars, &created); err != nil {
			return nil, fmt.Errorf("scan session result: %w", err)
		}
		rec.Op = question.Operation(op)
		rec.Level = question.Level(level)
		rec.TotalTime = time.Duration(totalMS) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			rec.Timestamp = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the total number of stored results.
func (r *ResultRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_results`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count session results: %w", err)
	}
	return n, nil
}

// Clear deletes all stored results.
func (r *ResultRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_results`); err != nil {
		return fmt.Errorf("clear session results: %w", err)
	}
	return nil
}
