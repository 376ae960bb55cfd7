package resumes

import (
	"context"
	"database/sql"
	"errors"

	"resume-builder/internal/resume"
)

// PGRepo implements Repo using Postgres. Resume content is stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume row.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (id, user_id, title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	content, err := resume.Encode(rec.Content)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Title,
		content,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID fetches one resume owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Record, error) {
	const query = `
SELECT id, user_id, title, content, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`

	var rec Record
	var content []byte
	err := r.DB.QueryRowContext(ctx, query, userID, resumeID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Title,
		&content,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	doc, err := resume.Decode(content)
	if err != nil {
		return Record{}, err
	}
	rec.Content = doc
	return rec, nil
}

// ListByUser lists resumes newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, title, content, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var content []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Title,
			&content,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		doc, err := resume.Decode(content)
		if err != nil {
			return nil, err
		}
		rec.Content = doc
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update rewrites title and content for an existing resume.
func (r *PGRepo) Update(ctx context.Context, rec Record) error {
	const query = `
UPDATE resumes
SET title = $1, content = $2, updated_at = $3
WHERE user_id = $4 AND id = $5`

	content, err := resume.Encode(rec.Content)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		rec.Title,
		content,
		rec.UpdatedAt,
		rec.UserID,
		rec.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one resume owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, resumeID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllByUser removes every resume for a user and returns the removed ids.
func (r *PGRepo) DeleteAllByUser(ctx context.Context, userID string) ([]string, error) {
	const query = `DELETE FROM resumes WHERE user_id = $1 RETURNING id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
