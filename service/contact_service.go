package service

import (
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/localtime"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// ContactService interface defines paid contact request operations
type ContactService interface {
	Create(requesterEmail string, req *entity.CreateContactRequest) (*entity.ContactRequestResponse, error)
	ListMine(requesterEmail string) (*entity.ContactRequestsListResponse, error)
	ListPending() (*entity.ContactRequestsListResponse, error)
	Approve(id int) error
	Cancel(id int) error
	Delete(id int, requesterEmail string, isAdmin bool) error
}

// contactService implements ContactService interface
type contactService struct {
	contactRepo   repository.ContactRequestRepository
	candidateRepo repository.CandidateRepository
	provider      PaymentProvider
	cfg           *config.Config
	logger        *logger.Logger
	zone          *localtime.Zone
}

// NewContactService creates a new contact service instance
func NewContactService(
	contactRepo repository.ContactRequestRepository,
	candidateRepo repository.CandidateRepository,
	provider PaymentProvider,
	cfg *config.Config,
	logger *logger.Logger,
	zone *localtime.Zone,
) ContactService {
	return &contactService{
		contactRepo:   contactRepo,
		candidateRepo: candidateRepo,
		provider:      provider,
		cfg:           cfg,
		logger:        logger,
		zone:          zone,
	}
}

// Create charges the requester and opens a pending contact request. The
// request row is only written after the charge succeeds.
func (s *contactService) Create(requesterEmail string, req *entity.CreateContactRequest) (*entity.ContactRequestResponse, error) {
	candidate, err := s.candidateRepo.GetByCandidateID(req.CandidateID)
	if err != nil {
		s.logger.Errorw("Failed to get candidate", "candidate_id", req.CandidateID, "error", err)
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return nil, entity.ErrCandidateNotFound
	}

	amount := s.cfg.Payment.ContactRequestAmount
	reference, err := s.provider.Charge(amount, s.cfg.Payment.Currency, req.PaymentMethodID)
	if err != nil {
		s.logger.Errorw("Charge failed", "email", requesterEmail, "candidate_id", req.CandidateID, "error", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrPaymentFailed, err)
	}

	request := &entity.ContactRequest{
		CandidateID:    req.CandidateID,
		RequesterName:  req.Name,
		RequesterEmail: requesterEmail,
		AmountPaid:     amount,
		Reference:      reference,
	}

	created, err := s.contactRepo.Create(request)
	if err != nil {
		s.logger.Errorw("Failed to create contact request", "email", requesterEmail, "error", err)
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	s.logger.Infow("Contact request opened", "id", created.ID, "email", requesterEmail,
		"candidate_id", req.CandidateID, "amount_paid", amount)

	resp := s.toResponse(created)
	return &resp, nil
}

// ListMine returns the requester's own contact requests
func (s *contactService) ListMine(requesterEmail string) (*entity.ContactRequestsListResponse, error) {
	requests, err := s.contactRepo.ListByEmail(requesterEmail)
	if err != nil {
		s.logger.Errorw("Failed to list contact requests", "email", requesterEmail, "error", err)
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return s.toList(requests), nil
}

// ListPending returns all pending contact requests for admin review
func (s *contactService) ListPending() (*entity.ContactRequestsListResponse, error) {
	requests, err := s.contactRepo.ListByStatus(entity.ContactPending)
	if err != nil {
		s.logger.Errorw("Failed to list pending contact requests", "error", err)
		return nil, fmt.Errorf("failed to list pending contact requests: %w", err)
	}
	return s.toList(requests), nil
}

// Approve marks a contact request approved
func (s *contactService) Approve(id int) error {
	if err := s.contactRepo.UpdateStatus(id, entity.ContactApproved); err != nil {
		s.logger.Errorw("Failed to approve contact request", "id", id, "error", err)
		return err
	}
	s.logger.Infow("Contact request approved", "id", id)
	return nil
}

// Cancel marks a contact request cancelled
func (s *contactService) Cancel(id int) error {
	if err := s.contactRepo.UpdateStatus(id, entity.ContactCancelled); err != nil {
		s.logger.Errorw("Failed to cancel contact request", "id", id, "error", err)
		return err
	}
	s.logger.Infow("Contact request cancelled", "id", id)
	return nil
}

// Delete removes a contact request. Non-admins can only delete their own.
func (s *contactService) Delete(id int, requesterEmail string, isAdmin bool) error {
	var err error
	if isAdmin {
		err = s.contactRepo.Delete(id)
	} else {
		err = s.contactRepo.DeleteByIDAndEmail(id, requesterEmail)
	}
	if err != nil {
		s.logger.Errorw("Failed to delete contact request", "id", id, "error", err)
		return err
	}
	s.logger.Infow("Contact request deleted", "id", id)
	return nil
}

func (s *contactService) toResponse(request *entity.ContactRequest) entity.ContactRequestResponse {
	return entity.ContactRequestResponse{
		ID:             request.ID,
		CandidateID:    request.CandidateID,
		RequesterName:  request.RequesterName,
		RequesterEmail: request.RequesterEmail,
		Status:         request.Status,
		AmountPaid:     request.AmountPaid,
		Reference:      request.Reference,
		CreatedAt:      request.CreatedAt,
		CreatedAtLocal: s.zone.Format(request.CreatedAt),
	}
}

func (s *contactService) toList(requests []entity.ContactRequest) *entity.ContactRequestsListResponse {
	responses := make([]entity.ContactRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, s.toResponse(&requests[i]))
	}
	return &entity.ContactRequestsListResponse{
		Requests: responses,
		Total:    len(responses),
	}
}
