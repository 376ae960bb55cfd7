package jobsearches

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for saved job searches.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save stores a new search.
func (s *Service) Save(ctx context.Context, userID, jobTitle, location string) (JobSearch, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	location = strings.TrimSpace(location)
	if jobTitle == "" {
		return JobSearch{}, ErrInvalidInput
	}

	search := JobSearch{
		ID:        uuid.NewString(),
		UserID:    userID,
		JobTitle:  jobTitle,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, search); err != nil {
		return JobSearch{}, err
	}
	return search, nil
}

// List returns the user's saved searches, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]JobSearch, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes one saved search.
func (s *Service) Delete(ctx context.Context, userID, searchID string) error {
	return s.Repo.Delete(ctx, userID, searchID)
}

// DeleteAllByUser removes every saved search for a user.
func (s *Service) DeleteAllByUser(ctx context.Context, userID string) error {
	return s.Repo.DeleteAllByUser(ctx, userID)
}
