package service

import (
	"sync"
	"testing"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContactRepo is an in-memory contact request store
type fakeContactRepo struct {
	mu       sync.Mutex
	nextID   int
	requests []entity.ContactRequest
}

func (f *fakeContactRepo) Create(request *entity.ContactRequest) (*entity.ContactRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *request
	stored.ID = f.nextID
	if stored.Status == "" {
		stored.Status = entity.ContactPending
	}
	stored.CreatedAt = time.Now()
	f.requests = append(f.requests, stored)
	return &stored, nil
}

func (f *fakeContactRepo) ListByEmail(email string) ([]entity.ContactRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.ContactRequest
	for _, request := range f.requests {
		if request.RequesterEmail == email {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) ListByStatus(status string) ([]entity.ContactRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.ContactRequest
	for _, request := range f.requests {
		if request.Status == status {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) UpdateStatus(id int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			return nil
		}
	}
	return entity.ErrContactRequestNotFound
}

func (f *fakeContactRepo) Delete(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return entity.ErrContactRequestNotFound
}

func (f *fakeContactRepo) DeleteByIDAndEmail(id int, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID == id && f.requests[i].RequesterEmail == email {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return entity.ErrContactRequestNotFound
}

func (f *fakeContactRepo) ApprovedRevenue() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, request := range f.requests {
		if request.Status == entity.ContactApproved {
			total += request.AmountPaid
		}
	}
	return total, nil
}

func TestComputeResults(t *testing.T) {
	log := newTestLogger(t)
	voteRepo := newFakeVoteRepo()
	electionRepo := newFakeElectionRepo()

	election, err := electionRepo.Create(&entity.Election{
		Name:   "General Election 2026",
		Status: entity.ElectionActive,
	})
	require.NoError(t, err)

	// Ranked rows as the aggregation query returns them: highest first,
	// zero-vote candidates absent
	voteRepo.tally[election.ID] = []entity.TallyEntry{
		{CandidateID: "BB-102", Name: "Candidate Two", Party: "Progress Party", Status: "active", Votes: 5},
		{CandidateID: "BB-101", Name: "Candidate One", Party: "Unity Party", Status: "active", Votes: 2},
	}

	svc := NewTallyService(voteRepo, electionRepo, newFakeCandidateRepo(), &fakeContactRepo{}, log)

	results, err := svc.ComputeResults(election.ID)
	require.NoError(t, err)
	assert.Equal(t, election.ID, results.ElectionID)
	require.Len(t, results.Results, 2)
	assert.Equal(t, "BB-102", results.Results[0].CandidateID)
	assert.Equal(t, 5, results.Results[0].Votes)
	assert.GreaterOrEqual(t, results.Results[0].Votes, results.Results[1].Votes)
	assert.False(t, results.ComputedAt.IsZero())
}

func TestComputeResults_EmptyElection(t *testing.T) {
	log := newTestLogger(t)
	voteRepo := newFakeVoteRepo()
	electionRepo := newFakeElectionRepo()

	election, err := electionRepo.Create(&entity.Election{Name: "Quiet Election", Status: entity.ElectionActive})
	require.NoError(t, err)

	svc := NewTallyService(voteRepo, electionRepo, newFakeCandidateRepo(), &fakeContactRepo{}, log)

	results, err := svc.ComputeResults(election.ID)
	require.NoError(t, err)
	assert.NotNil(t, results.Results)
	assert.Empty(t, results.Results)
}

func TestComputeResults_ElectionNotFound(t *testing.T) {
	log := newTestLogger(t)
	svc := NewTallyService(newFakeVoteRepo(), newFakeElectionRepo(), newFakeCandidateRepo(), &fakeContactRepo{}, log)

	_, err := svc.ComputeResults(404)
	assert.ErrorIs(t, err, entity.ErrElectionNotFound)
}

func TestCounters(t *testing.T) {
	log := newTestLogger(t)
	candidateRepo := newFakeCandidateRepo()

	_, err := candidateRepo.Create(&entity.Candidate{CandidateID: "BB-101", Name: "One", Type: "Male"})
	require.NoError(t, err)
	_, err = candidateRepo.Create(&entity.Candidate{CandidateID: "BB-102", Name: "Two", Type: "Female"})
	require.NoError(t, err)
	_, err = candidateRepo.Create(&entity.Candidate{CandidateID: "BB-103", Name: "Three", Type: "Female"})
	require.NoError(t, err)

	svc := NewTallyService(newFakeVoteRepo(), newFakeElectionRepo(), candidateRepo, &fakeContactRepo{}, log)

	counters, err := svc.Counters()
	require.NoError(t, err)
	assert.Equal(t, 3, counters.TotalCandidates)
	assert.Equal(t, 2, counters.FemaleCandidates)
	assert.Equal(t, 1, counters.MaleCandidates)
}

func TestAdminCounters(t *testing.T) {
	log := newTestLogger(t)
	voteRepo := newFakeVoteRepo()
	candidateRepo := newFakeCandidateRepo()
	contactRepo := &fakeContactRepo{}

	candidate, err := candidateRepo.Create(&entity.Candidate{CandidateID: "BB-101", Name: "One", Type: "Male"})
	require.NoError(t, err)
	require.NoError(t, candidateRepo.MakePremium(candidate.ID))

	_, err = voteRepo.Create(&entity.Vote{VoterID: 1, ElectionID: 1, CandidateID: candidate.ID})
	require.NoError(t, err)
	_, err = voteRepo.Create(&entity.Vote{VoterID: 2, ElectionID: 1, CandidateID: candidate.ID})
	require.NoError(t, err)

	approved, err := contactRepo.Create(&entity.ContactRequest{
		CandidateID: "BB-101", RequesterEmail: "a@example.com", AmountPaid: 5,
	})
	require.NoError(t, err)
	require.NoError(t, contactRepo.UpdateStatus(approved.ID, entity.ContactApproved))
	_, err = contactRepo.Create(&entity.ContactRequest{
		CandidateID: "BB-101", RequesterEmail: "b@example.com", AmountPaid: 5,
	})
	require.NoError(t, err)

	svc := NewTallyService(voteRepo, newFakeElectionRepo(), candidateRepo, contactRepo, log)

	counters, err := svc.AdminCounters()
	require.NoError(t, err)
	assert.Equal(t, 1, counters.TotalCandidates)
	assert.Equal(t, 1, counters.PremiumCandidates)
	assert.Equal(t, 2, counters.TotalVotes)
	// Only the approved request counts toward revenue
	assert.Equal(t, 5, counters.TotalRevenue)
}
