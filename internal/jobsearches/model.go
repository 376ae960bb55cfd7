package jobsearches

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// JobSearch is a saved search a user wants to revisit.
type JobSearch struct {
	ID        string
	UserID    string
	JobTitle  string
	Location  string
	CreatedAt time.Time
}

// Response is the outward-facing representation of a saved search.
type Response struct {
	JobSearchID string    `json:"jobSearchId"`
	JobTitle    string    `json:"jobTitle"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(s JobSearch) Response {
	return Response{
		JobSearchID: s.ID,
		JobTitle:    s.JobTitle,
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
	}
}
