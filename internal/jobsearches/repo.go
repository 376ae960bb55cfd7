package jobsearches

import "context"

// Repo defines persistence operations for saved job searches.
type Repo interface {
	Create(ctx context.Context, s JobSearch) error
	ListByUser(ctx context.Context, userID string) ([]JobSearch, error)
	Delete(ctx context.Context, userID, searchID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}
