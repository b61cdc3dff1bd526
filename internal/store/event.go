package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own table, so per-table
// auto-increment IDs can't establish cross-type ordering. This shared counter
// assigns a single increasing sequence to every event regardless of type,
// enabling:
//
//   - Cross-type ordering (e.g. did the coin award land before or after the quiz?)
//   - Append-only guarantees (events are never reordered)
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with raw SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// eventWhere builds the WHERE/ORDER/LIMIT suffix shared by event queries.
// hasStudent controls whether the student_id filter applies.
func eventWhere(opts QueryOpts, hasStudent bool) (string, []any) {
	clause := " WHERE 1=1"
	var args []any
	if opts.After > 0 {
		clause += " AND sequence > ?"
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		clause += " AND sequence < ?"
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		clause += " AND timestamp >= ?"
		args = append(args, opts.From.UTC().Format(time.RFC3339))
	}
	if !opts.To.IsZero() {
		clause += " AND timestamp <= ?"
		args = append(args, opts.To.UTC().Format(time.RFC3339))
	}
	if hasStudent && opts.StudentID != "" {
		clause += " AND student_id = ?"
		args = append(args, opts.StudentID)
	}
	clause += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		clause += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	return clause, args
}

func parseEventTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
