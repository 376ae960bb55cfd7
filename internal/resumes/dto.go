package resumes

import (
	"time"

	"resume-builder/internal/resume"
)

// RecordResponse is the outward-facing representation of a stored resume.
type RecordResponse struct {
	ResumeID  string          `json:"resumeId"`
	Title     string          `json:"title"`
	Content   resume.Document `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SummaryResponse omits content for list and search views.
type SummaryResponse struct {
	ResumeID  string    `json:"resumeId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(rec Record) RecordResponse {
	return RecordResponse{
		ResumeID:  rec.ID,
		Title:     rec.Title,
		Content:   rec.Content.Normalized(),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toSummary(rec Record) SummaryResponse {
	return SummaryResponse{
		ResumeID:  rec.ID,
		Title:     rec.Title,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
