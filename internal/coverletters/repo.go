package coverletters

import "context"

// Repo defines persistence operations for cover letters.
type Repo interface {
	Upsert(ctx context.Context, l Letter) (Letter, error)
	GetByResume(ctx context.Context, userID, resumeID string) (Letter, error)
	DeleteAllByUser(ctx context.Context, userID string) error
}
