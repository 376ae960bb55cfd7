package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"resume-builder/internal/llm"
)

// Service contains business logic for profiles.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the profile for a user. Users without a saved profile get an
// empty one rather than an error, matching the settings page which always
// renders a form.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	p, err := s.Repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Profile{UserID: userID}, nil
	}
	return p, err
}

// Save creates or replaces the profile for a user.
func (s *Service) Save(ctx context.Context, userID string, p Profile) (Profile, error) {
	p.UserID = userID
	p.FullName = strings.TrimSpace(p.FullName)
	p.DesiredRole = strings.TrimSpace(p.DesiredRole)
	p.CareerMotivation = strings.TrimSpace(p.CareerMotivation)
	p.CareerGoal = strings.TrimSpace(p.CareerGoal)
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// DeleteAllByUser removes the user's profile.
func (s *Service) DeleteAllByUser(ctx context.Context, userID string) error {
	return s.Repo.Delete(ctx, userID)
}

// HintsFor exposes the profile as generation hints.
func (s *Service) HintsFor(ctx context.Context, userID string) (llm.ProfileHints, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return llm.ProfileHints{}, err
	}
	return llm.ProfileHints{
		FullName:         p.FullName,
		DesiredRole:      p.DesiredRole,
		CareerMotivation: p.CareerMotivation,
		CareerGoal:       p.CareerGoal,
	}, nil
}
