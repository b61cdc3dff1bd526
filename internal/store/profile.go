package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/vidya/internal/ledger"
)

// profileRepo implements ProfileRepo over the student_profiles table. Each
// profile is one JSON document; the ledger owns the schema, the store only
// round-trips it.
type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Save(ctx context.Context, p *ledger.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO student_profiles (student_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		p.StudentID, string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Get(ctx context.Context, studentID string) (*ledger.Profile, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM student_profiles WHERE student_id = ?`, studentID,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p ledger.Profile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) List(ctx context.Context) ([]*ledger.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM student_profiles ORDER BY student_id`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*ledger.Profile
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		var p ledger.Profile
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}
