package profiles

import "context"

// Repo defines persistence operations for profiles. Each user has at most one
// profile row.
type Repo interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
	Delete(ctx context.Context, userID string) error
}
