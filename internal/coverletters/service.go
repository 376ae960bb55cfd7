package coverletters

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
)

// ResumeSource resolves the resume a letter is written for. The resumes
// service implements it.
type ResumeSource interface {
	Get(ctx context.Context, userID, resumeID string) (resumes.Record, error)
}

// Service contains business logic for cover letters.
type Service struct {
	Repo    Repo
	Resumes ResumeSource
	LLM     llm.Client
	Hints   resumes.HintsSource
}

// Generate drafts a cover letter for a resume and stores it, replacing any
// previous letter for the same resume.
func (s *Service) Generate(ctx context.Context, userID, resumeID string) (Letter, error) {
	rec, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return Letter{}, err
	}

	hints := llm.ProfileHints{}
	if s.Hints != nil {
		h, err := s.Hints.HintsFor(ctx, userID)
		if err == nil {
			hints = h
		}
	}

	metrics.IncGenerationStarted()
	started := time.Now()
	body, err := s.LLM.GenerateCoverLetter(ctx, llm.CoverLetterInput{
		Resume:  rec.Content,
		Profile: hints,
	})
	metrics.ObserveGenerationDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return Letter{}, err
	}
	metrics.IncGenerationCompleted()

	now := time.Now().UTC()
	return s.Repo.Upsert(ctx, Letter{
		ID:        uuid.NewString(),
		UserID:    userID,
		ResumeID:  resumeID,
		Content:   body,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Get returns the letter attached to a resume. The resume is resolved first
// so a missing resume reports as such rather than as a missing letter.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Letter, error) {
	if _, err := s.Resumes.Get(ctx, userID, resumeID); err != nil {
		return Letter{}, err
	}
	return s.Repo.GetByResume(ctx, userID, resumeID)
}

// DeleteAllByUser removes every cover letter owned by the user.
func (s *Service) DeleteAllByUser(ctx context.Context, userID string) error {
	return s.Repo.DeleteAllByUser(ctx, userID)
}
