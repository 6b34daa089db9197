package repository

import (
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/jmoiron/sqlx"
)

// ContactRequestRepository interface defines contact request data operations
type ContactRequestRepository interface {
	Create(request *entity.ContactRequest) (*entity.ContactRequest, error)
	ListByEmail(email string) ([]entity.ContactRequest, error)
	ListByStatus(status string) ([]entity.ContactRequest, error)
	UpdateStatus(id int, status string) error
	Delete(id int) error
	DeleteByIDAndEmail(id int, email string) error
	ApprovedRevenue() (int, error)
}

// contactRequestRepository implements ContactRequestRepository interface
type contactRequestRepository struct {
	db *sqlx.DB
}

// NewContactRequestRepository creates a new contact request repository instance
func NewContactRequestRepository(db *sqlx.DB) ContactRequestRepository {
	return &contactRequestRepository{
		db: db,
	}
}

// Create creates a new pending contact request
func (r *contactRequestRepository) Create(request *entity.ContactRequest) (*entity.ContactRequest, error) {
	query := `
		INSERT INTO contact_requests (candidate_id, requester_name, requester_email, status, amount_paid, reference, created_at)
		VALUES (:candidate_id, :requester_name, :requester_email, :status, :amount_paid, :reference, :created_at)
		RETURNING id, candidate_id, requester_name, requester_email, status, amount_paid, reference, created_at
	`

	request.Status = entity.ContactPending
	request.CreatedAt = time.Now()

	rows, err := r.db.NamedQuery(query, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created contact request")
	}

	var created entity.ContactRequest
	if err := rows.StructScan(&created); err != nil {
		return nil, fmt.Errorf("failed to scan created contact request: %w", err)
	}

	return &created, nil
}

// ListByEmail retrieves all contact requests opened by a requester
func (r *contactRequestRepository) ListByEmail(email string) ([]entity.ContactRequest, error) {
	query := `
		SELECT id, candidate_id, requester_name, requester_email, status, amount_paid, reference, created_at
		FROM contact_requests
		WHERE requester_email = $1
		ORDER BY created_at DESC
	`

	var requests []entity.ContactRequest
	err := r.db.Select(&requests, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}

	return requests, nil
}

// ListByStatus retrieves all contact requests in a given status
func (r *contactRequestRepository) ListByStatus(status string) ([]entity.ContactRequest, error) {
	query := `
		SELECT id, candidate_id, requester_name, requester_email, status, amount_paid, reference, created_at
		FROM contact_requests
		WHERE status = $1
		ORDER BY created_at ASC
	`

	var requests []entity.ContactRequest
	err := r.db.Select(&requests, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests by status: %w", err)
	}

	return requests, nil
}

// UpdateStatus moves a contact request to a new status
func (r *contactRequestRepository) UpdateStatus(id int, status string) error {
	result, err := r.db.Exec(`UPDATE contact_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update contact request status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrContactRequestNotFound
	}

	return nil
}

// Delete removes a contact request by id
func (r *contactRequestRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM contact_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrContactRequestNotFound
	}

	return nil
}

// DeleteByIDAndEmail removes a contact request only if it belongs to the requester
func (r *contactRequestRepository) DeleteByIDAndEmail(id int, email string) error {
	result, err := r.db.Exec(`DELETE FROM contact_requests WHERE id = $1 AND requester_email = $2`, id, email)
	if err != nil {
		return fmt.Errorf("failed to delete contact request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrContactRequestNotFound
	}

	return nil
}

// ApprovedRevenue sums the amounts paid on approved contact requests
func (r *contactRequestRepository) ApprovedRevenue() (int, error) {
	query := `
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM contact_requests
		WHERE status = $1
	`

	var total int
	err := r.db.Get(&total, query, entity.ContactApproved)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved revenue: %w", err)
	}

	return total, nil
}
