package account

import (
	"context"
	"errors"
	"strings"

	"resume-builder/internal/shared/telemetry"
)

// Wiper removes all rows a user owns in one store.
type Wiper interface {
	DeleteAllByUser(ctx context.Context, userID string) error
}

// Service deletes a user's data across stores. The four deletes run
// sequentially and are not a transaction; a failure aborts the remaining
// steps and may leave earlier deletions in place.
type Service struct {
	Resumes      Wiper
	CoverLetters Wiper
	JobSearches  Wiper
	Profiles     Wiper
}

// NewService constructs a Service.
func NewService(resumes, coverLetters, jobSearches, profiles Wiper) *Service {
	return &Service{
		Resumes:      resumes,
		CoverLetters: coverLetters,
		JobSearches:  jobSearches,
		Profiles:     profiles,
	}
}

// DeleteAll removes every resume, cover letter, saved search, and the profile
// owned by the user, in that order.
func (s *Service) DeleteAll(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("userID is required")
	}

	steps := []struct {
		name  string
		wiper Wiper
	}{
		{"resumes", s.Resumes},
		{"cover_letters", s.CoverLetters},
		{"job_searches", s.JobSearches},
		{"profiles", s.Profiles},
	}
	for _, step := range steps {
		if step.wiper == nil {
			continue
		}
		if err := step.wiper.DeleteAllByUser(ctx, userID); err != nil {
			telemetry.Error("account.delete_failed", map[string]any{
				"user_id": userID,
				"store":   step.name,
				"error":   err.Error(),
			})
			return err
		}
	}

	telemetry.Info("account.deleted", map[string]any{"user_id": userID})
	return nil
}
