package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code raised when an insert breaks a
// unique constraint.
const uniqueViolation = "23505"

// VoteRepository interface defines vote ledger operations. Votes are
// immutable once inserted; the unique index on (voter_id, election_id) is
// the authoritative one-vote-per-election guard.
type VoteRepository interface {
	Create(vote *entity.Vote) (*entity.Vote, error)
	GetByVoterAndElection(voterID, electionID int) (*entity.Vote, error)
	Exists(voterID, electionID int) (bool, error)
	Results(electionID int) ([]entity.TallyEntry, error)
	CountAll() (int, error)
}

// voteRepository implements VoteRepository interface
type voteRepository struct {
	db *sqlx.DB
}

// NewVoteRepository creates a new vote repository instance
func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Create inserts a vote. A unique-constraint violation means another request
// for the same (voter, election) pair won the race and is surfaced as
// entity.ErrDuplicateVote.
func (r *voteRepository) Create(vote *entity.Vote) (*entity.Vote, error) {
	query := `
		INSERT INTO votes (voter_id, election_id, candidate_id, voted_at)
		VALUES (:voter_id, :election_id, :candidate_id, :voted_at)
		RETURNING id, voter_id, election_id, candidate_id, voted_at
	`

	rows, err := r.db.NamedQuery(query, vote)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, entity.ErrDuplicateVote
		}
		return nil, fmt.Errorf("failed to create vote: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created vote")
	}

	var createdVote entity.Vote
	if err := rows.StructScan(&createdVote); err != nil {
		return nil, fmt.Errorf("failed to scan created vote: %w", err)
	}

	return &createdVote, nil
}

// GetByVoterAndElection retrieves the vote a voter cast in an election
func (r *voteRepository) GetByVoterAndElection(voterID, electionID int) (*entity.Vote, error) {
	query := `
		SELECT id, voter_id, election_id, candidate_id, voted_at
		FROM votes
		WHERE voter_id = $1 AND election_id = $2
	`

	var vote entity.Vote
	err := r.db.Get(&vote, query, voterID, electionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &vote, nil
}

// Exists reports whether a voter has already voted in an election. This is
// the fast-path check only; Create's constraint handling is authoritative.
func (r *voteRepository) Exists(voterID, electionID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM votes WHERE voter_id = $1 AND election_id = $2)`

	var exists bool
	err := r.db.Get(&exists, query, voterID, electionID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}

	return exists, nil
}

// Results aggregates the vote ledger for an election into ranked candidate
// totals. The aggregation is vote-record-driven: candidates without votes do
// not appear. The id tie-break keeps equal counts in a stable order.
func (r *voteRepository) Results(electionID int) ([]entity.TallyEntry, error) {
	query := `
		SELECT c.candidate_id, c.name, c.party, c.status, COUNT(v.id) AS votes
		FROM votes v
		JOIN candidates c ON c.id = v.candidate_id
		WHERE v.election_id = $1
		GROUP BY c.id, c.candidate_id, c.name, c.party, c.status
		ORDER BY votes DESC, c.id ASC
	`

	var results []entity.TallyEntry
	err := r.db.Select(&results, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute results: %w", err)
	}

	return results, nil
}

// CountAll returns the total number of votes across all elections
func (r *voteRepository) CountAll() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM votes`)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	return count, nil
}
