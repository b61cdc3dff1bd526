package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_events
		(sequence, timestamp, student_id, session_id, subject, grade, difficulty, score, total, percentage, time_taken)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339),
		data.StudentID,
		data.SessionID,
		data.Subject,
		data.Grade,
		data.Difficulty,
		data.Score,
		data.Total,
		data.Percentage,
		data.TimeTaken,
	)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	clause, args := eventWhere(opts, true)
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, student_id, session_id, subject, grade, difficulty, score, total, percentage, time_taken
		FROM quiz_events`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var records []QuizEventRecord
	for rows.Next() {
		var rec QuizEventRecord
		var ts string
		if err := rows.Scan(
			&rec.Sequence, &ts, &rec.StudentID, &rec.SessionID,
			&rec.Subject, &rec.Grade, &rec.Difficulty,
			&rec.Score, &rec.Total, &rec.Percentage, &rec.TimeTaken,
		); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		rec.Timestamp = parseEventTime(ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz events: %w", err)
	}
	return records, nil
}
