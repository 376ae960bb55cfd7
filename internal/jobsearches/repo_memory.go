package jobsearches

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]JobSearch // userID -> searches
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]JobSearch)}
}

// Create stores a saved search.
func (r *MemoryRepo) Create(ctx context.Context, s JobSearch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[s.UserID] = append(r.data[s.UserID], s)
	return nil
}

// ListByUser returns saved searches newest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]JobSearch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	userSearches := r.data[userID]
	r.mu.RUnlock()

	out := make([]JobSearch, len(userSearches))
	copy(out, userSearches)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes one saved search.
func (r *MemoryRepo) Delete(ctx context.Context, userID, searchID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	searches := r.data[userID]
	for i := range searches {
		if searches[i].ID == searchID {
			r.data[userID] = append(searches[:i], searches[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAllByUser removes every saved search for a user.
func (r *MemoryRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
