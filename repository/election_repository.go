package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/jmoiron/sqlx"
)

// ElectionRepository interface defines election data operations
type ElectionRepository interface {
	Create(election *entity.Election) (*entity.Election, error)
	GetByID(id int) (*entity.Election, error)
	List() ([]entity.Election, error)
	Update(election *entity.Election) (*entity.Election, error)
}

// electionRepository implements ElectionRepository interface
type electionRepository struct {
	db *sqlx.DB
}

// NewElectionRepository creates a new election repository instance
func NewElectionRepository(db *sqlx.DB) ElectionRepository {
	return &electionRepository{
		db: db,
	}
}

// Create creates a new election
func (r *electionRepository) Create(election *entity.Election) (*entity.Election, error) {
	query := `
		INSERT INTO elections (name, status, starts_at, ends_at, created_at)
		VALUES (:name, :status, :starts_at, :ends_at, :created_at)
		RETURNING id, name, status, starts_at, ends_at, created_at
	`

	election.CreatedAt = time.Now()
	if election.Status == "" {
		election.Status = entity.ElectionDraft
	}

	rows, err := r.db.NamedQuery(query, election)
	if err != nil {
		return nil, fmt.Errorf("failed to create election: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created election")
	}

	var created entity.Election
	if err := rows.StructScan(&created); err != nil {
		return nil, fmt.Errorf("failed to scan created election: %w", err)
	}

	return &created, nil
}

// GetByID retrieves an election by ID
func (r *electionRepository) GetByID(id int) (*entity.Election, error) {
	query := `
		SELECT id, name, status, starts_at, ends_at, created_at
		FROM elections
		WHERE id = $1
	`

	var election entity.Election
	err := r.db.Get(&election, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	return &election, nil
}

// List retrieves all elections, newest first
func (r *electionRepository) List() ([]entity.Election, error) {
	query := `
		SELECT id, name, status, starts_at, ends_at, created_at
		FROM elections
		ORDER BY created_at DESC
	`

	var elections []entity.Election
	err := r.db.Select(&elections, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}

	return elections, nil
}

// Update updates an existing election
func (r *electionRepository) Update(election *entity.Election) (*entity.Election, error) {
	query := `
		UPDATE elections
		SET name = :name, status = :status, starts_at = :starts_at, ends_at = :ends_at
		WHERE id = :id
		RETURNING id, name, status, starts_at, ends_at, created_at
	`

	rows, err := r.db.NamedQuery(query, election)
	if err != nil {
		return nil, fmt.Errorf("failed to update election: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, entity.ErrElectionNotFound
	}

	var updated entity.Election
	if err := rows.StructScan(&updated); err != nil {
		return nil, fmt.Errorf("failed to scan updated election: %w", err)
	}

	return &updated, nil
}
