package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/vidya/internal/progress"
)

// progressRepo implements ProgressRepo over the progress_records table,
// one JSON document per student/subject/grade.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Save(ctx context.Context, studentID string, rec *progress.Record) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress_records (student_id, subject, grade, data, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(student_id, subject, grade) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		studentID, rec.Key.Subject, rec.Key.Grade, string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, studentID string, key progress.Key) (*progress.Record, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress_records WHERE student_id = ? AND subject = ? AND grade = ?`,
		studentID, key.Subject, key.Grade,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress record: %w", err)
	}

	var rec progress.Record
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal progress record: %w", err)
	}
	return &rec, nil
}

func (r *progressRepo) ListForStudent(ctx context.Context, studentID string) ([]*progress.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM progress_records WHERE student_id = ? ORDER BY subject, grade`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list progress records: %w", err)
	}
	defer rows.Close()

	var records []*progress.Record
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan progress record: %w", err)
		}
		var rec progress.Record
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal progress record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress records: %w", err)
	}
	return records, nil
}
