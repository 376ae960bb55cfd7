package profiles

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Profile holds career preferences that steer generation.
type Profile struct {
	UserID           string
	FullName         string
	DesiredRole      string
	CareerMotivation string
	CareerGoal       string
	UpdatedAt        time.Time
}

// Response is the outward-facing representation of a profile.
type Response struct {
	FullName         string    `json:"fullName"`
	DesiredRole      string    `json:"desiredRole"`
	CareerMotivation string    `json:"careerMotivation"`
	CareerGoal       string    `json:"careerGoal"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toResponse(p Profile) Response {
	return Response{
		FullName:         p.FullName,
		DesiredRole:      p.DesiredRole,
		CareerMotivation: p.CareerMotivation,
		CareerGoal:       p.CareerGoal,
		UpdatedAt:        p.UpdatedAt,
	}
}
