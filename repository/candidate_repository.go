package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/jmoiron/sqlx"
)

// CandidateCounts holds roster rollups for the counters endpoints
type CandidateCounts struct {
	Total   int `db:"total"`
	Male    int `db:"male"`
	Female  int `db:"female"`
	Premium int `db:"premium"`
}

// CandidateRepository interface defines candidate data operations
type CandidateRepository interface {
	Create(candidate *entity.Candidate) (*entity.Candidate, error)
	GetByID(id int) (*entity.Candidate, error)
	GetByCandidateID(candidateID string) (*entity.Candidate, error)
	List() ([]entity.Candidate, error)
	ListPremiumPending() ([]entity.Candidate, error)
	Update(candidate *entity.Candidate) (*entity.Candidate, error)
	MakePremium(id int) error
	Delete(id int) error
	Counts() (*CandidateCounts, error)
}

// candidateRepository implements CandidateRepository interface
type candidateRepository struct {
	db *sqlx.DB
}

// NewCandidateRepository creates a new candidate repository instance
func NewCandidateRepository(db *sqlx.DB) CandidateRepository {
	return &candidateRepository{
		db: db,
	}
}

// Create creates a new candidate
func (r *candidateRepository) Create(candidate *entity.Candidate) (*entity.Candidate, error) {
	query := `
		INSERT INTO candidates (candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at)
		VALUES (:candidate_id, :name, :party, :candidate_type, :status, :is_premium, :premium_state, :created_at)
		RETURNING id, candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at
	`

	candidate.CreatedAt = time.Now()
	if candidate.Status == "" {
		candidate.Status = entity.CandidateActive
	}
	if candidate.PremiumState == "" {
		candidate.PremiumState = entity.PremiumNone
	}

	rows, err := r.db.NamedQuery(query, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created candidate")
	}

	var created entity.Candidate
	if err := rows.StructScan(&created); err != nil {
		return nil, fmt.Errorf("failed to scan created candidate: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a candidate by its internal row ID
func (r *candidateRepository) GetByID(id int) (*entity.Candidate, error) {
	query := `
		SELECT id, candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at
		FROM candidates
		WHERE id = $1
	`

	var candidate entity.Candidate
	err := r.db.Get(&candidate, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &candidate, nil
}

// GetByCandidateID retrieves a candidate by its public identifier
func (r *candidateRepository) GetByCandidateID(candidateID string) (*entity.Candidate, error) {
	query := `
		SELECT id, candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at
		FROM candidates
		WHERE candidate_id = $1
	`

	var candidate entity.Candidate
	err := r.db.Get(&candidate, query, candidateID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &candidate, nil
}

// List retrieves all candidates, newest public identifier first
func (r *candidateRepository) List() ([]entity.Candidate, error) {
	query := `
		SELECT id, candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at
		FROM candidates
		ORDER BY candidate_id DESC
	`

	var candidates []entity.Candidate
	err := r.db.Select(&candidates, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// ListPremiumPending retrieves candidates waiting for premium approval
func (r *candidateRepository) ListPremiumPending() ([]entity.Candidate, error) {
	query := `
		SELECT id, candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at
		FROM candidates
		WHERE premium_state = $1
		ORDER BY created_at ASC
	`

	var candidates []entity.Candidate
	err := r.db.Select(&candidates, query, entity.PremiumPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list premium requests: %w", err)
	}

	return candidates, nil
}

// Update updates an existing candidate
func (r *candidateRepository) Update(candidate *entity.Candidate) (*entity.Candidate, error) {
	query := `
		UPDATE candidates
		SET name = :name, party = :party, candidate_type = :candidate_type,
		    status = :status, premium_state = :premium_state
		WHERE id = :id
		RETURNING id, candidate_id, name, party, candidate_type, status, is_premium, premium_state, created_at
	`

	rows, err := r.db.NamedQuery(query, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, entity.ErrCandidateNotFound
	}

	var updated entity.Candidate
	if err := rows.StructScan(&updated); err != nil {
		return nil, fmt.Errorf("failed to scan updated candidate: %w", err)
	}

	return &updated, nil
}

// MakePremium approves a candidate's premium request
func (r *candidateRepository) MakePremium(id int) error {
	query := `UPDATE candidates SET is_premium = TRUE, premium_state = $2 WHERE id = $1`

	result, err := r.db.Exec(query, id, entity.PremiumApproved)
	if err != nil {
		return fmt.Errorf("failed to make candidate premium: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrCandidateNotFound
	}

	return nil
}

// Delete removes a candidate
func (r *candidateRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrCandidateNotFound
	}

	return nil
}

// Counts returns candidate roster rollups
func (r *candidateRepository) Counts() (*CandidateCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE candidate_type = 'Male') AS male,
			COUNT(*) FILTER (WHERE candidate_type = 'Female') AS female,
			COUNT(*) FILTER (WHERE is_premium) AS premium
		FROM candidates
	`

	var counts CandidateCounts
	err := r.db.Get(&counts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	return &counts, nil
}
