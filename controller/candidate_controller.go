package controller

import (
	"net/http"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"
	"github.com/SadatRiyad/BB-Vote-Server/validator"

	"github.com/labstack/echo/v4"
)

// CandidateController handles candidate roster endpoints
type CandidateController struct {
	candidateService service.CandidateService
	tallyService     service.TallyService
	validator        *validator.Validator
	logger           *logger.Logger
}

// NewCandidateController creates a new candidate controller instance
func NewCandidateController(candidateService service.CandidateService, tallyService service.TallyService, validator *validator.Validator, logger *logger.Logger) *CandidateController {
	return &CandidateController{
		candidateService: candidateService,
		tallyService:     tallyService,
		validator:        validator,
		logger:           logger,
	}
}

// List returns the candidate roster
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.CandidateResponse
// @Failure 500 {object} map[string]interface{}
// @Router /candidates [get]
func (c *CandidateController) List(ctx echo.Context) error {
	candidates, err := c.candidateService.List()
	if err != nil {
		c.logger.Errorw("Failed to list candidates", "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, candidates)
}

// Get returns one candidate by public identifier
// @Summary Get candidate
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Security BearerAuth
// @Success 200 {object} entity.CandidateResponse
// @Failure 404 {object} map[string]interface{}
// @Router /candidates/{id} [get]
func (c *CandidateController) Get(ctx echo.Context) error {
	candidate, err := c.candidateService.GetByCandidateID(ctx.Param("id"))
	if err != nil {
		c.logger.Warnw("Failed to get candidate", "candidate_id", ctx.Param("id"), "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, candidate)
}

// Create registers a new candidate
// @Summary Create candidate
// @Tags Candidates
// @Accept json
// @Produce json
// @Param request body entity.CreateCandidateRequest true "Candidate"
// @Security BearerAuth
// @Success 201 {object} entity.CandidateResponse
// @Failure 400 {object} map[string]interface{}
// @Router /candidates [post]
func (c *CandidateController) Create(ctx echo.Context) error {
	var req entity.CreateCandidateRequest

	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	candidate, err := c.candidateService.Create(&req)
	if err != nil {
		c.logger.Warnw("Failed to create candidate", "candidate_id", req.CandidateID, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, candidate)
}

// Update applies a partial update to a candidate
// @Summary Update candidate
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body entity.UpdateCandidateRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} entity.CandidateResponse
// @Failure 404 {object} map[string]interface{}
// @Router /candidates/{id} [put]
func (c *CandidateController) Update(ctx echo.Context) error {
	var req entity.UpdateCandidateRequest

	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	candidate, err := c.candidateService.Update(ctx.Param("id"), &req)
	if err != nil {
		c.logger.Warnw("Failed to update candidate", "candidate_id", ctx.Param("id"), "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, candidate)
}

// Delete removes a candidate
// @Summary Delete candidate
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /candidates/{id} [delete]
func (c *CandidateController) Delete(ctx echo.Context) error {
	if err := c.candidateService.Delete(ctx.Param("id")); err != nil {
		c.logger.Warnw("Failed to delete candidate", "candidate_id", ctx.Param("id"), "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Candidate deleted"})
}

// PremiumRequests lists candidates awaiting premium approval
// @Summary List premium requests
// @Tags Candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.CandidateResponse
// @Router /candidates/premium-requests [get]
func (c *CandidateController) PremiumRequests(ctx echo.Context) error {
	candidates, err := c.candidateService.ListPremiumPending()
	if err != nil {
		c.logger.Errorw("Failed to list premium requests", "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, candidates)
}

// MakePremium approves a candidate's premium upgrade
// @Summary Approve premium upgrade
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /candidates/{id}/make-premium [patch]
func (c *CandidateController) MakePremium(ctx echo.Context) error {
	if err := c.candidateService.MakePremium(ctx.Param("id")); err != nil {
		c.logger.Warnw("Failed to approve premium upgrade", "candidate_id", ctx.Param("id"), "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Candidate is now premium"})
}

// Counters returns the public roster counters
// @Summary Public counters
// @Tags Counters
// @Produce json
// @Success 200 {object} entity.CountersResponse
// @Router /counters [get]
func (c *CandidateController) Counters(ctx echo.Context) error {
	counters, err := c.tallyService.Counters()
	if err != nil {
		c.logger.Errorw("Failed to compute counters", "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, counters)
}

// AdminCounters returns the admin dashboard counters
// @Summary Admin counters
// @Tags Counters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.AdminCountersResponse
// @Router /admin/counters [get]
func (c *CandidateController) AdminCounters(ctx echo.Context) error {
	counters, err := c.tallyService.AdminCounters()
	if err != nil {
		c.logger.Errorw("Failed to compute admin counters", "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, counters)
}
