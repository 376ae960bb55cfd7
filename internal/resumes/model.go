package resumes

import (
	"time"

	"resume-builder/internal/resume"
)

// Record is a stored resume owned by a user.
type Record struct {
	ID        string
	UserID    string
	Title     string
	Content   resume.Document
	CreatedAt time.Time
	UpdatedAt time.Time
}
