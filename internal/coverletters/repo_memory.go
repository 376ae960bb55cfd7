package coverletters

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, keyed by resume id.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Letter // resumeID -> letter
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Letter)}
}

// Upsert inserts or replaces the letter for a resume.
func (r *MemoryRepo) Upsert(ctx context.Context, l Letter) (Letter, error) {
	if err := ctx.Err(); err != nil {
		return Letter{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.data[l.ResumeID]; ok {
		l.ID = existing.ID
		l.CreatedAt = existing.CreatedAt
	}
	r.data[l.ResumeID] = l
	return l, nil
}

// GetByResume returns the letter attached to a resume.
func (r *MemoryRepo) GetByResume(ctx context.Context, userID, resumeID string) (Letter, error) {
	if err := ctx.Err(); err != nil {
		return Letter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.data[resumeID]
	if !ok || l.UserID != userID {
		return Letter{}, ErrNotFound
	}
	return l, nil
}

// DeleteAllByUser removes every letter owned by the user.
func (r *MemoryRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for resumeID, l := range r.data {
		if l.UserID == userID {
			delete(r.data, resumeID)
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
