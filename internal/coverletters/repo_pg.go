package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres. The UNIQUE constraint on resume_id
// makes regeneration an update rather than a second row.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the cover letter for a resume and returns the
// stored row. A regenerated letter keeps its original id and created_at.
func (r *PGRepo) Upsert(ctx context.Context, l Letter) (Letter, error) {
	const query = `
INSERT INTO cover_letters (id, user_id, resume_id, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (resume_id) DO UPDATE
SET content = EXCLUDED.content,
    updated_at = EXCLUDED.updated_at
RETURNING id, user_id, resume_id, content, created_at, updated_at`

	var stored Letter
	err := r.DB.QueryRowContext(ctx, query,
		l.ID,
		l.UserID,
		l.ResumeID,
		l.Content,
		l.CreatedAt,
		l.UpdatedAt,
	).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.ResumeID,
		&stored.Content,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		return Letter{}, err
	}
	return stored, nil
}

// GetByResume fetches the cover letter attached to a resume.
func (r *PGRepo) GetByResume(ctx context.Context, userID, resumeID string) (Letter, error) {
	const query = `
SELECT id, user_id, resume_id, content, created_at, updated_at
FROM cover_letters
WHERE user_id = $1 AND resume_id = $2
LIMIT 1`

	var l Letter
	err := r.DB.QueryRowContext(ctx, query, userID, resumeID).Scan(
		&l.ID,
		&l.UserID,
		&l.ResumeID,
		&l.Content,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Letter{}, ErrNotFound
		}
		return Letter{}, err
	}
	return l, nil
}

// DeleteAllByUser removes every cover letter for a user.
func (r *PGRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM cover_letters WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
