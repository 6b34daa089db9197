package entity

import (
	"time"
)

// Candidate statuses
const (
	CandidateActive   = "active"
	CandidateInactive = "inactive"
)

// Premium states for a candidate profile
const (
	PremiumNone     = "none"
	PremiumPending  = "pending"
	PremiumApproved = "approved"
)

// Candidate represents a candidate profile
type Candidate struct {
	ID           int       `db:"id" json:"id"`
	CandidateID  string    `db:"candidate_id" json:"candidate_id"`
	Name         string    `db:"name" json:"name"`
	Party        string    `db:"party" json:"party"`
	Type         string    `db:"candidate_type" json:"candidate_type"`
	Status       string    `db:"status" json:"status"`
	IsPremium    bool      `db:"is_premium" json:"is_premium"`
	PremiumState string    `db:"premium_state" json:"premium_state"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// TableName returns the table name for the Candidate entity
func (Candidate) TableName() string {
	return "candidates"
}

// CreateCandidateRequest represents the request to register a candidate
type CreateCandidateRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Party       string `json:"party" validate:"required"`
	Type        string `json:"candidate_type" validate:"omitempty,oneof=Male Female"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateCandidateRequest represents a candidate profile update
type UpdateCandidateRequest struct {
	Name         string `json:"name" validate:"omitempty"`
	Party        string `json:"party" validate:"omitempty"`
	Type         string `json:"candidate_type" validate:"omitempty,oneof=Male Female"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
	PremiumState string `json:"premium_state" validate:"omitempty,oneof=none pending approved"`
}

// CandidateResponse represents the candidate response
type CandidateResponse struct {
	ID          int       `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Name        string    `json:"name"`
	Party       string    `json:"party"`
	Type        string    `json:"candidate_type"`
	Status      string    `json:"status"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`
}

// CountersResponse represents the public roster counters
type CountersResponse struct {
	TotalCandidates  int `json:"total_candidates"`
	FemaleCandidates int `json:"female_candidates"`
	MaleCandidates   int `json:"male_candidates"`
}

// AdminCountersResponse represents the admin dashboard counters
type AdminCountersResponse struct {
	TotalCandidates   int `json:"total_candidates"`
	FemaleCandidates  int `json:"female_candidates"`
	MaleCandidates    int `json:"male_candidates"`
	PremiumCandidates int `json:"premium_candidates"`
	TotalVotes        int `json:"total_votes"`
	TotalRevenue      int `json:"total_revenue"`
}
