package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVoteRepo is an in-memory ballot store enforcing one vote per
// (voter, election), the same guarantee the unique index provides
type fakeVoteRepo struct {
	mu     sync.Mutex
	nextID int
	votes  []entity.Vote
	tally  map[int][]entity.TallyEntry
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{tally: make(map[int][]entity.TallyEntry)}
}

func (f *fakeVoteRepo) Create(vote *entity.Vote) (*entity.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.votes {
		if f.votes[i].VoterID == vote.VoterID && f.votes[i].ElectionID == vote.ElectionID {
			return nil, entity.ErrDuplicateVote
		}
	}
	f.nextID++
	stored := *vote
	stored.ID = f.nextID
	f.votes = append(f.votes, stored)
	return &stored, nil
}

func (f *fakeVoteRepo) GetByVoterAndElection(voterID, electionID int) (*entity.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.votes {
		if f.votes[i].VoterID == voterID && f.votes[i].ElectionID == electionID {
			found := f.votes[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeVoteRepo) Exists(voterID, electionID int) (bool, error) {
	vote, err := f.GetByVoterAndElection(voterID, electionID)
	return vote != nil, err
}

func (f *fakeVoteRepo) Results(electionID int) ([]entity.TallyEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tally[electionID], nil
}

func (f *fakeVoteRepo) CountAll() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.votes), nil
}

// fakeElectionRepo is an in-memory election store
type fakeElectionRepo struct {
	mu        sync.Mutex
	nextID    int
	elections map[int]*entity.Election
}

func newFakeElectionRepo() *fakeElectionRepo {
	return &fakeElectionRepo{elections: make(map[int]*entity.Election)}
}

func (f *fakeElectionRepo) Create(election *entity.Election) (*entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *election
	stored.ID = f.nextID
	if stored.Status == "" {
		stored.Status = entity.ElectionDraft
	}
	f.elections[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeElectionRepo) GetByID(id int) (*entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	election, ok := f.elections[id]
	if !ok {
		return nil, nil
	}
	found := *election
	return &found, nil
}

func (f *fakeElectionRepo) List() ([]entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var elections []entity.Election
	for _, election := range f.elections {
		elections = append(elections, *election)
	}
	return elections, nil
}

func (f *fakeElectionRepo) Update(election *entity.Election) (*entity.Election, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.elections[election.ID]; !ok {
		return nil, entity.ErrElectionNotFound
	}
	stored := *election
	f.elections[election.ID] = &stored
	return &stored, nil
}

// fakeCandidateRepo is an in-memory candidate store
type fakeCandidateRepo struct {
	mu         sync.Mutex
	nextID     int
	candidates map[string]*entity.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]*entity.Candidate)}
}

func (f *fakeCandidateRepo) Create(candidate *entity.Candidate) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *candidate
	stored.ID = f.nextID
	if stored.Status == "" {
		stored.Status = entity.CandidateActive
	}
	if stored.PremiumState == "" {
		stored.PremiumState = entity.PremiumNone
	}
	f.candidates[stored.CandidateID] = &stored
	return &stored, nil
}

func (f *fakeCandidateRepo) GetByID(id int) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, candidate := range f.candidates {
		if candidate.ID == id {
			found := *candidate
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) GetByCandidateID(candidateID string) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	candidate, ok := f.candidates[candidateID]
	if !ok {
		return nil, nil
	}
	found := *candidate
	return &found, nil
}

func (f *fakeCandidateRepo) List() ([]entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var candidates []entity.Candidate
	for _, candidate := range f.candidates {
		candidates = append(candidates, *candidate)
	}
	return candidates, nil
}

func (f *fakeCandidateRepo) ListPremiumPending() ([]entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var candidates []entity.Candidate
	for _, candidate := range f.candidates {
		if candidate.PremiumState == entity.PremiumPending {
			candidates = append(candidates, *candidate)
		}
	}
	return candidates, nil
}

func (f *fakeCandidateRepo) Update(candidate *entity.Candidate) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.candidates[candidate.CandidateID]; !ok {
		return nil, entity.ErrCandidateNotFound
	}
	stored := *candidate
	f.candidates[candidate.CandidateID] = &stored
	return &stored, nil
}

func (f *fakeCandidateRepo) MakePremium(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, candidate := range f.candidates {
		if candidate.ID == id {
			candidate.IsPremium = true
			candidate.PremiumState = entity.PremiumApproved
			return nil
		}
	}
	return entity.ErrCandidateNotFound
}

func (f *fakeCandidateRepo) Delete(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, candidate := range f.candidates {
		if candidate.ID == id {
			delete(f.candidates, key)
			return nil
		}
	}
	return entity.ErrCandidateNotFound
}

func (f *fakeCandidateRepo) Counts() (*repository.CandidateCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := &repository.CandidateCounts{}
	for _, candidate := range f.candidates {
		counts.Total++
		switch candidate.Type {
		case "Male":
			counts.Male++
		case "Female":
			counts.Female++
		}
		if candidate.IsPremium {
			counts.Premium++
		}
	}
	return counts, nil
}

// fakePublisher records broadcast tallies
type fakePublisher struct {
	mu        sync.Mutex
	published []*entity.ResultsResponse
	done      chan struct{}
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{done: make(chan struct{}, 16)}
}

func (f *fakePublisher) PublishResults(results *entity.ResultsResponse) error {
	f.mu.Lock()
	f.published = append(f.published, results)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakePublisher) waitForPublish(t *testing.T) *entity.ResultsResponse {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for results broadcast")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.published[len(f.published)-1]
}

type voteFixture struct {
	svc           *voteService
	voteRepo      *fakeVoteRepo
	electionRepo  *fakeElectionRepo
	candidateRepo *fakeCandidateRepo
	userRepo      *fakeUserRepo
	publisher     *fakePublisher
	election      *entity.Election
	candidate     *entity.Candidate
	voter         *entity.User
	now           time.Time
}

func newVoteFixture(t *testing.T) *voteFixture {
	t.Helper()
	log := newTestLogger(t)
	zone := newTestZone(t)
	voteRepo := newFakeVoteRepo()
	electionRepo := newFakeElectionRepo()
	candidateRepo := newFakeCandidateRepo()
	userRepo := newFakeUserRepo()
	publisher := newFakePublisher()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	election, err := electionRepo.Create(&entity.Election{
		Name:     "General Election 2026",
		Status:   entity.ElectionActive,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	candidate, err := candidateRepo.Create(&entity.Candidate{
		CandidateID: "BB-101",
		Name:        "Candidate One",
		Party:       "Unity Party",
	})
	require.NoError(t, err)

	voter, err := userRepo.Create(&entity.User{Email: "voter@example.com"})
	require.NoError(t, err)

	tally := NewTallyService(voteRepo, electionRepo, candidateRepo, nil, log)
	svc := NewVoteService(voteRepo, electionRepo, candidateRepo, userRepo, tally, publisher, log, zone).(*voteService)
	svc.now = func() time.Time { return now }

	return &voteFixture{
		svc:           svc,
		voteRepo:      voteRepo,
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		election:      election,
		candidate:     candidate,
		voter:         voter,
		now:           now,
	}
}

func TestCastVote(t *testing.T) {
	fx := newVoteFixture(t)

	resp, err := fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	require.NoError(t, err)
	assert.Equal(t, fx.election.ID, resp.ElectionID)
	assert.Equal(t, fx.now, resp.VotedAt)
	assert.NotEmpty(t, resp.VotedAtLocal)

	published := fx.publisher.waitForPublish(t)
	assert.Equal(t, fx.election.ID, published.ElectionID)
}

func TestCastVote_ElectionNotFound(t *testing.T) {
	fx := newVoteFixture(t)

	_, err := fx.svc.CastVote(fx.voter, 999, "BB-101")
	assert.ErrorIs(t, err, entity.ErrElectionNotFound)
}

func TestCastVote_ElectionClosed(t *testing.T) {
	fx := newVoteFixture(t)

	fx.election.Status = entity.ElectionClosed
	_, err := fx.electionRepo.Update(fx.election)
	require.NoError(t, err)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	assert.ErrorIs(t, err, entity.ErrElectionClosed)
}

func TestCastVote_OutsideWindow(t *testing.T) {
	fx := newVoteFixture(t)

	fx.election.EndsAt = fx.now.Add(-time.Minute)
	_, err := fx.electionRepo.Update(fx.election)
	require.NoError(t, err)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	assert.ErrorIs(t, err, entity.ErrElectionClosed)
}

func TestCastVote_CandidateNotFound(t *testing.T) {
	fx := newVoteFixture(t)

	_, err := fx.svc.CastVote(fx.voter, fx.election.ID, "BB-404")
	assert.ErrorIs(t, err, entity.ErrCandidateNotFound)
}

func TestCastVote_InactiveCandidate(t *testing.T) {
	fx := newVoteFixture(t)

	fx.candidate.Status = entity.CandidateInactive
	_, err := fx.candidateRepo.Update(fx.candidate)
	require.NoError(t, err)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	assert.ErrorIs(t, err, entity.ErrCandidateNotFound)
}

func TestCastVote_Duplicate(t *testing.T) {
	fx := newVoteFixture(t)

	_, err := fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	require.NoError(t, err)
	fx.publisher.waitForPublish(t)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	assert.ErrorIs(t, err, entity.ErrDuplicateVote)

	// Trying a different candidate changes nothing: one ballot per election
	another, err := fx.candidateRepo.Create(&entity.Candidate{
		CandidateID: "BB-102",
		Name:        "Candidate Two",
		Party:       "Progress Party",
	})
	require.NoError(t, err)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, another.CandidateID)
	assert.ErrorIs(t, err, entity.ErrDuplicateVote)

	count, err := fx.voteRepo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCastVote_OtherElectionStillAllowed(t *testing.T) {
	fx := newVoteFixture(t)

	second, err := fx.electionRepo.Create(&entity.Election{
		Name:     "Local Election 2026",
		Status:   entity.ElectionActive,
		StartsAt: fx.now.Add(-time.Hour),
		EndsAt:   fx.now.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	require.NoError(t, err)
	fx.publisher.waitForPublish(t)

	_, err = fx.svc.CastVote(fx.voter, second.ID, "BB-101")
	require.NoError(t, err)
	fx.publisher.waitForPublish(t)

	count, err := fx.voteRepo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCheckVoted(t *testing.T) {
	fx := newVoteFixture(t)

	resp, err := fx.svc.CheckVoted(fx.voter.Email, fx.election.ID)
	require.NoError(t, err)
	assert.False(t, resp.Voted)
	assert.Nil(t, resp.Candidate)

	_, err = fx.svc.CastVote(fx.voter, fx.election.ID, "BB-101")
	require.NoError(t, err)
	fx.publisher.waitForPublish(t)

	resp, err = fx.svc.CheckVoted(fx.voter.Email, fx.election.ID)
	require.NoError(t, err)
	assert.True(t, resp.Voted)
	require.NotNil(t, resp.Candidate)
	assert.Equal(t, "BB-101", resp.Candidate.CandidateID)
}

func TestCheckVoted_UnknownUser(t *testing.T) {
	fx := newVoteFixture(t)

	_, err := fx.svc.CheckVoted("ghost@example.com", fx.election.ID)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestCastVote_ConcurrentCastsOneWinner(t *testing.T) {
	fx := newVoteFixture(t)

	const casters = 8
	candidateIDs := make([]string, casters)
	candidateIDs[0] = fx.candidate.CandidateID
	for i := 1; i < casters; i++ {
		created, err := fx.candidateRepo.Create(&entity.Candidate{
			CandidateID: fmt.Sprintf("BB-2%02d", i),
			Name:        fmt.Sprintf("Candidate %d", i),
			Party:       "Unity Party",
		})
		require.NoError(t, err)
		candidateIDs[i] = created.CandidateID
	}

	// Everyone races the same ballot slot; whoever slips past the
	// fast-path check is still caught by the store-level uniqueness guard.
	start := make(chan struct{})
	results := make([]error, casters)
	var wg sync.WaitGroup
	for i := 0; i < casters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = fx.svc.CastVote(fx.voter, fx.election.ID, candidateIDs[i])
		}(i)
	}
	close(start)
	wg.Wait()

	var wins, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, entity.ErrDuplicateVote):
			duplicates++
		default:
			t.Fatalf("unexpected cast error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, casters-1, duplicates)

	count, err := fx.voteRepo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fx.publisher.waitForPublish(t)
}
