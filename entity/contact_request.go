package entity

import (
	"time"
)

// Contact request statuses
const (
	ContactPending   = "pending"
	ContactApproved  = "approved"
	ContactCancelled = "cancelled"
)

// ContactRequest represents a paid request to contact a candidate
type ContactRequest struct {
	ID             int       `db:"id" json:"id"`
	CandidateID    string    `db:"candidate_id" json:"candidate_id"`
	RequesterName  string    `db:"requester_name" json:"requester_name"`
	RequesterEmail string    `db:"requester_email" json:"requester_email"`
	Status         string    `db:"status" json:"status"`
	AmountPaid     int       `db:"amount_paid" json:"amount_paid"`
	Reference      string    `db:"reference" json:"reference"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// TableName returns the table name for the ContactRequest entity
func (ContactRequest) TableName() string {
	return "contact_requests"
}

// CreateContactRequest represents the request to open a contact request.
// The requester's email comes from the caller identity, never the body.
type CreateContactRequest struct {
	CandidateID     string `json:"candidate_id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// ContactRequestResponse represents one contact request
type ContactRequestResponse struct {
	ID             int       `json:"id"`
	CandidateID    string    `json:"candidate_id"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	Status         string    `json:"status"`
	AmountPaid     int       `json:"amount_paid"`
	Reference      string    `json:"reference"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedAtLocal string    `json:"created_at_local"`
}

// ContactRequestsListResponse wraps a list of contact requests
type ContactRequestsListResponse struct {
	Requests []ContactRequestResponse `json:"requests"`
	Total    int                      `json:"total"`
}
