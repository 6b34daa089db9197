package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVoteRepository(db)

	votedAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "voter_id", "election_id", "candidate_id", "voted_at"}).
		AddRow(1, 10, 20, 30, votedAt)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO votes")).
		WithArgs(10, 20, 30, votedAt).
		WillReturnRows(rows)

	created, err := repo.Create(&entity.Vote{
		VoterID:     10,
		ElectionID:  20,
		CandidateID: 30,
		VotedAt:     votedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_Create_UniqueViolationIsDuplicateVote(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVoteRepository(db)

	votedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO votes")).
		WithArgs(10, 20, 31, votedAt).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "votes_voter_id_election_id_key"})

	_, err := repo.Create(&entity.Vote{
		VoterID:     10,
		ElectionID:  20,
		CandidateID: 31,
		VotedAt:     votedAt,
	})

	assert.ErrorIs(t, err, entity.ErrDuplicateVote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(10, 20)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_Results_RankedDescending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVoteRepository(db)

	rows := sqlmock.NewRows([]string{"candidate_id", "name", "party", "status", "votes"}).
		AddRow("C-2", "Beatrix", "Unity", "active", 5).
		AddRow("C-1", "Arman", "Progress", "active", 3).
		AddRow("C-3", "Chandra", "Reform", "active", 3)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY votes DESC, c.id ASC")).
		WithArgs(20).
		WillReturnRows(rows)

	results, err := repo.Results(20)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "C-2", results[0].CandidateID)
	assert.Equal(t, 5, results[0].Votes)

	total := 0
	for _, entry := range results {
		total += entry.Votes
	}
	assert.Equal(t, 11, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_GetByVoterAndElection_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM votes")).
		WithArgs(10, 99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "voter_id", "election_id", "candidate_id", "voted_at"}))

	vote, err := repo.GetByVoterAndElection(10, 99)
	require.NoError(t, err)
	assert.Nil(t, vote)
	assert.NoError(t, mock.ExpectationsWereMet())
}
