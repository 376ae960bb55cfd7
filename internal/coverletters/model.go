package coverletters

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Letter is a stored cover letter. Each resume has at most one.
type Letter struct {
	ID        string
	UserID    string
	ResumeID  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response is the outward-facing representation of a cover letter.
type Response struct {
	CoverLetterID string    `json:"coverLetterId"`
	ResumeID      string    `json:"resumeId"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toResponse(l Letter) Response {
	return Response{
		CoverLetterID: l.ID,
		ResumeID:      l.ResumeID,
		Content:       l.Content,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
