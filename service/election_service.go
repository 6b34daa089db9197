package service

import (
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/localtime"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// ElectionService interface defines election lifecycle operations
type ElectionService interface {
	Create(req *entity.CreateElectionRequest) (*entity.Election, error)
	GetByID(id int) (*entity.Election, error)
	List() ([]entity.Election, error)
	Update(id int, req *entity.UpdateElectionRequest) (*entity.Election, error)
}

// electionService implements ElectionService interface
type electionService struct {
	electionRepo repository.ElectionRepository
	logger       *logger.Logger
	zone         *localtime.Zone
}

// NewElectionService creates a new election service instance
func NewElectionService(electionRepo repository.ElectionRepository, logger *logger.Logger, zone *localtime.Zone) ElectionService {
	return &electionService{
		electionRepo: electionRepo,
		logger:       logger,
		zone:         zone,
	}
}

// Create creates a new election. Schedule fields accept RFC3339 or the
// localized display form; either way the stored instants are canonical.
func (s *electionService) Create(req *entity.CreateElectionRequest) (*entity.Election, error) {
	startsAt, err := s.zone.ParseAny(req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid starts_at: %w", err)
	}
	endsAt, err := s.zone.ParseAny(req.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid ends_at: %w", err)
	}
	if !endsAt.After(startsAt) {
		return nil, fmt.Errorf("ends_at must be after starts_at")
	}

	election := &entity.Election{
		Name:     req.Name,
		Status:   req.Status,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}

	created, err := s.electionRepo.Create(election)
	if err != nil {
		s.logger.Errorw("Failed to create election", "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to create election: %w", err)
	}

	s.logger.Infow("Election created", "election_id", created.ID, "name", created.Name,
		"starts_at", created.StartsAt, "ends_at", created.EndsAt)

	return created, nil
}

// GetByID retrieves an election
func (s *electionService) GetByID(id int) (*entity.Election, error) {
	election, err := s.electionRepo.GetByID(id)
	if err != nil {
		s.logger.Errorw("Failed to get election", "election_id", id, "error", err)
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	if election == nil {
		return nil, entity.ErrElectionNotFound
	}
	return election, nil
}

// List retrieves all elections
func (s *electionService) List() ([]entity.Election, error) {
	elections, err := s.electionRepo.List()
	if err != nil {
		s.logger.Errorw("Failed to list elections", "error", err)
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	return elections, nil
}

// Update applies a partial update to an election
func (s *electionService) Update(id int, req *entity.UpdateElectionRequest) (*entity.Election, error) {
	election, err := s.electionRepo.GetByID(id)
	if err != nil {
		s.logger.Errorw("Failed to get election", "election_id", id, "error", err)
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	if election == nil {
		return nil, entity.ErrElectionNotFound
	}

	if req.Name != "" {
		election.Name = req.Name
	}
	if req.Status != "" {
		election.Status = req.Status
	}
	if req.StartsAt != "" {
		startsAt, err := s.zone.ParseAny(req.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("invalid starts_at: %w", err)
		}
		election.StartsAt = startsAt
	}
	if req.EndsAt != "" {
		endsAt, err := s.zone.ParseAny(req.EndsAt)
		if err != nil {
			return nil, fmt.Errorf("invalid ends_at: %w", err)
		}
		election.EndsAt = endsAt
	}
	if !election.EndsAt.After(election.StartsAt) {
		return nil, fmt.Errorf("ends_at must be after starts_at")
	}

	updated, err := s.electionRepo.Update(election)
	if err != nil {
		s.logger.Errorw("Failed to update election", "election_id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("Election updated", "election_id", id)
	return updated, nil
}
