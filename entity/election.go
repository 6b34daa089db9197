package entity

import (
	"time"
)

// Election statuses. Only active elections inside their window accept votes.
const (
	ElectionDraft  = "draft"
	ElectionActive = "active"
	ElectionClosed = "closed"
)

// Election represents one election
type Election struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Status    string    `db:"status" json:"status"`
	StartsAt  time.Time `db:"starts_at" json:"starts_at"`
	EndsAt    time.Time `db:"ends_at" json:"ends_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TableName returns the table name for the Election entity
func (Election) TableName() string {
	return "elections"
}

// OpenAt reports whether the election accepts votes at the given instant
func (e *Election) OpenAt(t time.Time) bool {
	return e.Status == ElectionActive && !t.Before(e.StartsAt) && t.Before(e.EndsAt)
}

// CreateElectionRequest represents the request to create an election.
// Schedule fields accept RFC3339 or the localized display form.
type CreateElectionRequest struct {
	Name     string `json:"name" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=draft active closed"`
	StartsAt string `json:"starts_at" validate:"required"`
	EndsAt   string `json:"ends_at" validate:"required"`
}

// UpdateElectionRequest represents an election update
type UpdateElectionRequest struct {
	Name     string `json:"name" validate:"omitempty"`
	Status   string `json:"status" validate:"omitempty,oneof=draft active closed"`
	StartsAt string `json:"starts_at" validate:"omitempty"`
	EndsAt   string `json:"ends_at" validate:"omitempty"`
}
