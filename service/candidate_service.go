package service

import (
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// CandidateService interface defines candidate roster operations
type CandidateService interface {
	Create(req *entity.CreateCandidateRequest) (*entity.CandidateResponse, error)
	GetByCandidateID(candidateID string) (*entity.CandidateResponse, error)
	List() ([]entity.CandidateResponse, error)
	ListPremiumPending() ([]entity.CandidateResponse, error)
	Update(candidateID string, req *entity.UpdateCandidateRequest) (*entity.CandidateResponse, error)
	MakePremium(candidateID string) error
	Delete(candidateID string) error
}

// candidateService implements CandidateService interface
type candidateService struct {
	candidateRepo repository.CandidateRepository
	logger        *logger.Logger
}

// NewCandidateService creates a new candidate service instance
func NewCandidateService(candidateRepo repository.CandidateRepository, logger *logger.Logger) CandidateService {
	return &candidateService{
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

// Create registers a new candidate profile
func (s *candidateService) Create(req *entity.CreateCandidateRequest) (*entity.CandidateResponse, error) {
	existing, err := s.candidateRepo.GetByCandidateID(req.CandidateID)
	if err != nil {
		s.logger.Errorw("Failed to check candidate existence", "candidate_id", req.CandidateID, "error", err)
		return nil, fmt.Errorf("failed to check candidate existence: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("candidate %s already exists", req.CandidateID)
	}

	candidate := &entity.Candidate{
		CandidateID: req.CandidateID,
		Name:        req.Name,
		Party:       req.Party,
		Type:        req.Type,
		Status:      req.Status,
	}

	created, err := s.candidateRepo.Create(candidate)
	if err != nil {
		s.logger.Errorw("Failed to create candidate", "candidate_id", req.CandidateID, "error", err)
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	s.logger.Infow("Candidate registered", "candidate_id", created.CandidateID, "name", created.Name)

	resp := toCandidateResponse(created)
	return &resp, nil
}

// GetByCandidateID retrieves a candidate by its public identifier
func (s *candidateService) GetByCandidateID(candidateID string) (*entity.CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByCandidateID(candidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "candidate_id", candidateID, "error", err)
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return nil, entity.ErrCandidateNotFound
	}
	resp := toCandidateResponse(candidate)
	return &resp, nil
}

// List retrieves the full candidate roster
func (s *candidateService) List() ([]entity.CandidateResponse, error) {
	candidates, err := s.candidateRepo.List()
	if err != nil {
		s.logger.Errorw("Failed to list candidates", "error", err)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return toCandidateResponses(candidates), nil
}

// ListPremiumPending retrieves candidates awaiting premium approval
func (s *candidateService) ListPremiumPending() ([]entity.CandidateResponse, error) {
	candidates, err := s.candidateRepo.ListPremiumPending()
	if err != nil {
		s.logger.Errorw("Failed to list premium-pending candidates", "error", err)
		return nil, fmt.Errorf("failed to list premium-pending candidates: %w", err)
	}
	return toCandidateResponses(candidates), nil
}

// Update applies a partial update to a candidate profile
func (s *candidateService) Update(candidateID string, req *entity.UpdateCandidateRequest) (*entity.CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByCandidateID(candidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "candidate_id", candidateID, "error", err)
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return nil, entity.ErrCandidateNotFound
	}

	if req.Name != "" {
		candidate.Name = req.Name
	}
	if req.Party != "" {
		candidate.Party = req.Party
	}
	if req.Type != "" {
		candidate.Type = req.Type
	}
	if req.Status != "" {
		candidate.Status = req.Status
	}
	if req.PremiumState != "" {
		candidate.PremiumState = req.PremiumState
	}

	updated, err := s.candidateRepo.Update(candidate)
	if err != nil {
		s.logger.Errorw("Failed to update candidate", "candidate_id", candidateID, "error", err)
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	s.logger.Infow("Candidate updated", "candidate_id", candidateID)

	resp := toCandidateResponse(updated)
	return &resp, nil
}

// MakePremium approves a candidate's premium upgrade
func (s *candidateService) MakePremium(candidateID string) error {
	candidate, err := s.candidateRepo.GetByCandidateID(candidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "candidate_id", candidateID, "error", err)
		return fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return entity.ErrCandidateNotFound
	}

	if err := s.candidateRepo.MakePremium(candidate.ID); err != nil {
		s.logger.Errorw("Failed to make candidate premium", "candidate_id", candidateID, "error", err)
		return err
	}

	s.logger.Infow("Candidate upgraded to premium", "candidate_id", candidateID)
	return nil
}

// Delete removes a candidate profile
func (s *candidateService) Delete(candidateID string) error {
	candidate, err := s.candidateRepo.GetByCandidateID(candidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "candidate_id", candidateID, "error", err)
		return fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return entity.ErrCandidateNotFound
	}

	if err := s.candidateRepo.Delete(candidate.ID); err != nil {
		s.logger.Errorw("Failed to delete candidate", "candidate_id", candidateID, "error", err)
		return err
	}

	s.logger.Infow("Candidate deleted", "candidate_id", candidateID)
	return nil
}

func toCandidateResponse(candidate *entity.Candidate) entity.CandidateResponse {
	return entity.CandidateResponse{
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

func toCandidateResponses(candidates []entity.Candidate) []entity.CandidateResponse {
	responses := make([]entity.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, toCandidateResponse(&candidates[i]))
	}
	return responses
}
