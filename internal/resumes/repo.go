package resumes

import "context"

// Repo defines persistence operations for resumes. All lookups are scoped to
// the owning user.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, userID, resumeID string) (Record, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, userID, resumeID string) error
	DeleteAllByUser(ctx context.Context, userID string) ([]string, error)
}
