package service

import (
	"fmt"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// TallyService interface defines result aggregation operations
type TallyService interface {
	ComputeResults(electionID int) (*entity.ResultsResponse, error)
	Counters() (*entity.CountersResponse, error)
	AdminCounters() (*entity.AdminCountersResponse, error)
}

// tallyService implements TallyService interface
type tallyService struct {
	voteRepo     repository.VoteRepository
	electionRepo repository.ElectionRepository
	candRepo     repository.CandidateRepository
	contactRepo  repository.ContactRequestRepository
	logger       *logger.Logger
	now          func() time.Time
}

// NewTallyService creates a new tally service instance
func NewTallyService(
	voteRepo repository.VoteRepository,
	electionRepo repository.ElectionRepository,
	candRepo repository.CandidateRepository,
	contactRepo repository.ContactRequestRepository,
	logger *logger.Logger,
) TallyService {
	return &tallyService{
		voteRepo:     voteRepo,
		electionRepo: electionRepo,
		candRepo:     candRepo,
		contactRepo:  contactRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// ComputeResults returns the ranked tally for an election. Candidates with
// zero votes carry no rows in the ledger and therefore do not appear.
func (s *tallyService) ComputeResults(electionID int) (*entity.ResultsResponse, error) {
	election, err := s.electionRepo.GetByID(electionID)
	if err != nil {
		s.logger.Errorw("Failed to get election", "election_id", electionID, "error", err)
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	if election == nil {
		return nil, entity.ErrElectionNotFound
	}

	results, err := s.voteRepo.Results(electionID)
	if err != nil {
		s.logger.Errorw("Failed to compute results", "election_id", electionID, "error", err)
		return nil, fmt.Errorf("failed to compute results: %w", err)
	}
	if results == nil {
		results = []entity.TallyEntry{}
	}

	return &entity.ResultsResponse{
		ElectionID: electionID,
		Results:    results,
		ComputedAt: s.now(),
	}, nil
}

// Counters returns the public roster rollups
func (s *tallyService) Counters() (*entity.CountersResponse, error) {
	counts, err := s.candRepo.Counts()
	if err != nil {
		s.logger.Errorw("Failed to count candidates", "error", err)
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	return &entity.CountersResponse{
		TotalCandidates:  counts.Total,
		FemaleCandidates: counts.Female,
		MaleCandidates:   counts.Male,
	}, nil
}

// AdminCounters returns the dashboard rollups, including vote volume and
// revenue from approved contact requests
func (s *tallyService) AdminCounters() (*entity.AdminCountersResponse, error) {
	counts, err := s.candRepo.Counts()
	if err != nil {
		s.logger.Errorw("Failed to count candidates", "error", err)
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	totalVotes, err := s.voteRepo.CountAll()
	if err != nil {
		s.logger.Errorw("Failed to count votes", "error", err)
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	revenue, err := s.contactRepo.ApprovedRevenue()
	if err != nil {
		s.logger.Errorw("Failed to sum contact request revenue", "error", err)
		return nil, fmt.Errorf("failed to sum contact request revenue: %w", err)
	}

	return &entity.AdminCountersResponse{
		TotalCandidates:   counts.Total,
		FemaleCandidates:  counts.Female,
		MaleCandidates:    counts.Male,
		PremiumCandidates: counts.Premium,
		TotalVotes:        totalVotes,
		TotalRevenue:      revenue,
	}, nil
}
