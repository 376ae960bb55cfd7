package jobsearches

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a saved search.
func (r *PGRepo) Create(ctx context.Context, s JobSearch) error {
	const query = `
INSERT INTO job_searches (id, user_id, job_title, location, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.UserID, s.JobTitle, s.Location, s.CreatedAt)
	return err
}

// ListByUser lists saved searches newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]JobSearch, error) {
	const query = `
SELECT id, user_id, job_title, location, created_at
FROM job_searches
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobSearch
	for rows.Next() {
		var s JobSearch
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobTitle, &s.Location, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes one saved search owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, searchID string) error {
	const query = `DELETE FROM job_searches WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, searchID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllByUser removes every saved search for a user.
func (r *PGRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM job_searches WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
