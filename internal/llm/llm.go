// Package llm defines the caller-side contract for the external AI
// text-generation service. Both operations are single-shot request/response
// calls with no retry, streaming or caching; "Regenerate" in the UI is a
// manual retry.
package llm

import (
	"context"

	"resume-builder/internal/resume"
)

// ProfileHints carries the onboarding profile fields folded into prompts.
type ProfileHints struct {
	FullName         string
	DesiredRole      string
	CareerMotivation string
	CareerGoal       string
}

// GenerateResumeInput is the request for drafting a resume from a bio.
type GenerateResumeInput struct {
	Bio     string
	Profile ProfileHints
}

// CoverLetterInput is the request for drafting a cover letter from an
// existing resume document.
type CoverLetterInput struct {
	Resume  resume.Document
	Profile ProfileHints
}

// Client abstracts the generation gateway providers.
type Client interface {
	GenerateResume(ctx context.Context, input GenerateResumeInput) (resume.Document, error)
	GenerateCoverLetter(ctx context.Context, input CoverLetterInput) (string, error)
}

// PlaceholderClient is a stub implementation used when no provider is
// configured. Every call fails with ErrNotConfigured.
type PlaceholderClient struct{}

func (PlaceholderClient) GenerateResume(ctx context.Context, input GenerateResumeInput) (resume.Document, error) {
	_ = ctx
	_ = input
	return resume.Document{}, ErrNotConfigured
}

func (PlaceholderClient) GenerateCoverLetter(ctx context.Context, input CoverLetterInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}
