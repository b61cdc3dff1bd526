package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/vidya/internal/ledger"
)

func (r *eventRepo) AppendCoinEvent(ctx context.Context, data ledger.CoinEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO coin_events (sequence, timestamp, student_id, delta, balance, reason)
		VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339),
		data.StudentID,
		data.Delta,
		data.Balance,
		data.Reason,
	)
	if err != nil {
		return fmt.Errorf("save coin event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCoinEvents(ctx context.Context, opts QueryOpts) ([]CoinEventRecord, error) {
	clause, args := eventWhere(opts, true)
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, student_id, delta, balance, reason
		FROM coin_events`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query coin events: %w", err)
	}
	defer rows.Close()

	var records []CoinEventRecord
	for rows.Next() {
		var rec CoinEventRecord
		var ts string
		if err := rows.Scan(&rec.Sequence, &ts, &rec.StudentID, &rec.Delta, &rec.Balance, &rec.Reason); err != nil {
			return nil, fmt.Errorf("scan coin event: %w", err)
		}
		rec.Timestamp = parseEventTime(ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coin events: %w", err)
	}
	return records, nil
}
