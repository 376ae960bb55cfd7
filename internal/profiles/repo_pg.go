package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get fetches the profile for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, full_name, desired_role, career_motivation, career_goal, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`

	var p Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&p.FullName,
		&p.DesiredRole,
		&p.CareerMotivation,
		&p.CareerGoal,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

// Upsert creates or replaces the profile row for a user.
func (r *PGRepo) Upsert(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (user_id, full_name, desired_role, career_motivation, career_goal, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE
SET full_name = EXCLUDED.full_name,
    desired_role = EXCLUDED.desired_role,
    career_motivation = EXCLUDED.career_motivation,
    career_goal = EXCLUDED.career_goal,
    updated_at = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, query,
		p.UserID,
		p.FullName,
		p.DesiredRole,
		p.CareerMotivation,
		p.CareerGoal,
		p.UpdatedAt,
	)
	return err
}

// Delete removes the profile row for a user. Missing rows are not an error.
func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
