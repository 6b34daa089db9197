package entity

import (
	"time"
)

// Vote represents one accepted ballot. Rows are immutable; the unique index
// on (voter_id, election_id) makes the first writer win.
type Vote struct {
	ID          int       `db:"id" json:"id"`
	VoterID     int       `db:"voter_id" json:"voter_id"`
	ElectionID  int       `db:"election_id" json:"election_id"`
	CandidateID int       `db:"candidate_id" json:"candidate_id"`
	VotedAt     time.Time `db:"voted_at" json:"voted_at"`
}

// TableName returns the table name for the Vote entity
func (Vote) TableName() string {
	return "votes"
}

// CastVoteRequest represents the request to cast a vote. The candidate is
// addressed by its public candidate_id, not the row id.
type CastVoteRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
}

// CastVoteResponse acknowledges an accepted vote
type CastVoteResponse struct {
	Message      string    `json:"message"`
	ElectionID   int       `json:"election_id"`
	VotedAt      time.Time `json:"voted_at"`
	VotedAtLocal string    `json:"voted_at_local"`
}

// CheckVotedResponse reports whether a voter has voted and for whom
type CheckVotedResponse struct {
	Voted     bool               `json:"voted"`
	Candidate *CandidateResponse `json:"candidate,omitempty"`
}

// TallyEntry is one row of the ranked results for an election
type TallyEntry struct {
	CandidateID string `db:"candidate_id" json:"candidate_id"`
	Name        string `db:"name" json:"name"`
	Party       string `db:"party" json:"party"`
	Status      string `db:"status" json:"status"`
	Votes       int    `db:"votes" json:"votes"`
}

// ResultsResponse is the full tally snapshot for an election
type ResultsResponse struct {
	ElectionID int          `json:"election_id"`
	Results    []TallyEntry `json:"results"`
	ComputedAt time.Time    `json:"computed_at"`
}
