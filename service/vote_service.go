package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/localtime"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/realtime"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// VoteService interface defines ballot operations
type VoteService interface {
	CastVote(voter *entity.User, electionID int, candidateID string) (*entity.CastVoteResponse, error)
	CheckVoted(voterEmail string, electionID int) (*entity.CheckVotedResponse, error)
}

// voteService implements VoteService interface
type voteService struct {
	voteRepo      repository.VoteRepository
	electionRepo  repository.ElectionRepository
	candidateRepo repository.CandidateRepository
	userRepo      repository.UserRepository
	tally         TallyService
	publisher     realtime.Publisher
	logger        *logger.Logger
	zone          *localtime.Zone
	now           func() time.Time
}

// NewVoteService creates a new vote service instance
func NewVoteService(
	voteRepo repository.VoteRepository,
	electionRepo repository.ElectionRepository,
	candidateRepo repository.CandidateRepository,
	userRepo repository.UserRepository,
	tally TallyService,
	publisher realtime.Publisher,
	logger *logger.Logger,
	zone *localtime.Zone,
) VoteService {
	return &voteService{
		voteRepo:      voteRepo,
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		tally:         tally,
		publisher:     publisher,
		logger:        logger,
		zone:          zone,
		now:           time.Now,
	}
}

// CastVote records a single ballot for the voter in the given election.
// The existence check is a fast path; the unique constraint on
// (voter_id, election_id) is what actually guarantees one ballot per
// voter, so a concurrent duplicate still surfaces as a duplicate vote.
func (s *voteService) CastVote(voter *entity.User, electionID int, candidateID string) (*entity.CastVoteResponse, error) {
	election, err := s.electionRepo.GetByID(electionID)
	if err != nil {
		s.logger.Errorw("Failed to get election", "election_id", electionID, "error", err)
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	if election == nil {
		return nil, entity.ErrElectionNotFound
	}

	now := s.now()
	if !election.OpenAt(now) {
		return nil, entity.ErrElectionClosed
	}

	candidate, err := s.candidateRepo.GetByCandidateID(candidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "candidate_id", candidateID, "error", err)
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil || candidate.Status != entity.CandidateActive {
		return nil, entity.ErrCandidateNotFound
	}

	exists, err := s.voteRepo.Exists(voter.ID, electionID)
	if err != nil {
		s.logger.Errorw("Failed to check existing vote", "voter_id", voter.ID, "election_id", electionID, "error", err)
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if exists {
		return nil, entity.ErrDuplicateVote
	}

	vote := &entity.Vote{
		VoterID:     voter.ID,
		ElectionID:  electionID,
		CandidateID: candidate.ID,
		VotedAt:     now,
	}

	created, err := s.voteRepo.Create(vote)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateVote) {
			return nil, entity.ErrDuplicateVote
		}
		s.logger.Errorw("Failed to record vote", "voter_id", voter.ID, "election_id", electionID, "error", err)
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	s.logger.Infow("Vote recorded", "voter_id", voter.ID, "election_id", electionID, "candidate_id", candidateID)

	go s.publishResults(electionID)

	return &entity.CastVoteResponse{
		Message:      "Vote recorded successfully",
		ElectionID:   electionID,
		VotedAt:      created.VotedAt,
		VotedAtLocal: s.zone.Format(created.VotedAt),
	}, nil
}

// publishResults pushes a fresh tally to live subscribers. Broadcast
// failures never affect the already-recorded ballot.
func (s *voteService) publishResults(electionID int) {
	results, err := s.tally.ComputeResults(electionID)
	if err != nil {
		s.logger.Warnw("Failed to compute results for broadcast", "election_id", electionID, "error", err)
		return
	}
	if err := s.publisher.PublishResults(results); err != nil {
		s.logger.Warnw("Failed to publish results", "election_id", electionID, "error", err)
	}
}

// CheckVoted reports whether the voter already holds a ballot in the
// election and, if so, which candidate it was for.
func (s *voteService) CheckVoted(voterEmail string, electionID int) (*entity.CheckVotedResponse, error) {
	user, err := s.userRepo.GetByEmail(voterEmail)
	if err != nil {
		s.logger.Errorw("Failed to get user", "email", voterEmail, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	vote, err := s.voteRepo.GetByVoterAndElection(user.ID, electionID)
	if err != nil {
		s.logger.Errorw("Failed to get vote", "voter_id", user.ID, "election_id", electionID, "error", err)
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	if vote == nil {
		return &entity.CheckVotedResponse{Voted: false}, nil
	}

	candidate, err := s.candidateRepo.GetByID(vote.CandidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "id", vote.CandidateID, "error", err)
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	resp := &entity.CheckVotedResponse{Voted: true}
	if candidate != nil {
		resp.Candidate = &entity.CandidateResponse{
			ID:          candidate.ID,
			CandidateID: candidate.CandidateID,
			Name:        candidate.Name,
			Party:       candidate.Party,
			Type:        candidate.Type,
			Status:      candidate.Status,
			IsPremium:   candidate.IsPremium,
			CreatedAt:   candidate.CreatedAt,
		}
	}

	return resp, nil
}
