package controller

import (
	"net/http"
	"strconv"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/realtime"
	"github.com/SadatRiyad/BB-Vote-Server/service"
	"github.com/SadatRiyad/BB-Vote-Server/validator"

	"github.com/labstack/echo/v4"
)

// ElectionController handles election lifecycle, voting, results and the
// live tally feed
type ElectionController struct {
	electionService service.ElectionService
	voteService     service.VoteService
	tallyService    service.TallyService
	hub             *realtime.Hub
	validator       *validator.Validator
	logger          *logger.Logger
}

// NewElectionController creates a new election controller instance
func NewElectionController(
	electionService service.ElectionService,
	voteService service.VoteService,
	tallyService service.TallyService,
	hub *realtime.Hub,
	validator *validator.Validator,
	logger *logger.Logger,
) *ElectionController {
	return &ElectionController{
		electionService: electionService,
		voteService:     voteService,
		tallyService:    tallyService,
		hub:             hub,
		validator:       validator,
		logger:          logger,
	}
}

func electionID(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("id"))
}

// Create creates a new election
// @Summary Create election
// @Tags Elections
// @Accept json
// @Produce json
// @Param request body entity.CreateElectionRequest true "Election"
// @Security BearerAuth
// @Success 201 {object} entity.Election
// @Failure 400 {object} map[string]interface{}
// @Router /elections [post]
func (c *ElectionController) Create(ctx echo.Context) error {
	var req entity.CreateElectionRequest

	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	election, err := c.electionService.Create(&req)
	if err != nil {
		c.logger.Warnw("Failed to create election", "name", req.Name, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, election)
}

// List returns all elections
// @Summary List elections
// @Tags Elections
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Election
// @Router /elections [get]
func (c *ElectionController) List(ctx echo.Context) error {
	elections, err := c.electionService.List()
	if err != nil {
		c.logger.Errorw("Failed to list elections", "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, elections)
}

// Get returns one election
// @Summary Get election
// @Tags Elections
// @Produce json
// @Param id path int true "Election ID"
// @Security BearerAuth
// @Success 200 {object} entity.Election
// @Failure 404 {object} map[string]interface{}
// @Router /elections/{id} [get]
func (c *ElectionController) Get(ctx echo.Context) error {
	id, err := electionID(ctx)
	if err != nil {
		return bindError(ctx, err)
	}

	election, err := c.electionService.GetByID(id)
	if err != nil {
		c.logger.Warnw("Failed to get election", "election_id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, election)
}

// Update applies a partial update to an election
// @Summary Update election
// @Tags Elections
// @Accept json
// @Produce json
// @Param id path int true "Election ID"
// @Param request body entity.UpdateElectionRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} entity.Election
// @Failure 404 {object} map[string]interface{}
// @Router /elections/{id} [put]
func (c *ElectionController) Update(ctx echo.Context) error {
	id, err := electionID(ctx)
	if err != nil {
		return bindError(ctx, err)
	}

	var req entity.UpdateElectionRequest
	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	election, err := c.electionService.Update(id, &req)
	if err != nil {
		c.logger.Warnw("Failed to update election", "election_id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, election)
}

// CastVote records the caller's ballot in the election
// @Summary Cast vote
// @Tags Elections
// @Accept json
// @Produce json
// @Param id path int true "Election ID"
// @Param request body entity.CastVoteRequest true "Ballot"
// @Security BearerAuth
// @Success 200 {object} entity.CastVoteResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /elections/{id}/vote [post]
func (c *ElectionController) CastVote(ctx echo.Context) error {
	id, err := electionID(ctx)
	if err != nil {
		return bindError(ctx, err)
	}

	var req entity.CastVoteRequest
	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	voter := currentUser(ctx)
	if voter == nil {
		return respondError(ctx, entity.ErrForbidden)
	}

	response, err := c.voteService.CastVote(voter, id, req.CandidateID)
	if err != nil {
		c.logger.Warnw("Failed to cast vote", "voter_id", voter.ID, "election_id", id, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Results returns the ranked tally for the election
// @Summary Election results
// @Tags Elections
// @Produce json
// @Param id path int true "Election ID"
// @Security BearerAuth
// @Success 200 {object} entity.ResultsResponse
// @Failure 404 {object} map[string]interface{}
// @Router /elections/{id}/results [get]
func (c *ElectionController) Results(ctx echo.Context) error {
	id, err := electionID(ctx)
	if err != nil {
		return bindError(ctx, err)
	}

	results, err := c.tallyService.ComputeResults(id)
	if err != nil {
		c.logger.Warnw("Failed to compute results", "election_id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, results)
}

// CheckVoted reports whether the given voter already voted in the election.
// Callers can only probe their own email unless they hold the admin role.
// @Summary Check voted
// @Tags Elections
// @Produce json
// @Param id path int true "Election ID"
// @Param email path string true "Voter email"
// @Security BearerAuth
// @Success 200 {object} entity.CheckVotedResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /elections/{id}/votes/{email} [get]
func (c *ElectionController) CheckVoted(ctx echo.Context) error {
	id, err := electionID(ctx)
	if err != nil {
		return bindError(ctx, err)
	}
	email := ctx.Param("email")

	caller := currentUser(ctx)
	if caller == nil || (caller.Email != email && !caller.IsAdmin()) {
		return respondError(ctx, entity.ErrForbidden)
	}

	response, err := c.voteService.CheckVoted(email, id)
	if err != nil {
		c.logger.Warnw("Failed to check vote", "email", email, "election_id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// Live upgrades the connection to a websocket tally feed for the election
// @Summary Live results feed
// @Tags Elections
// @Param id path int true "Election ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 404 {object} map[string]interface{}
// @Router /elections/{id}/live [get]
func (c *ElectionController) Live(ctx echo.Context) error {
	id, err := electionID(ctx)
	if err != nil {
		return bindError(ctx, err)
	}

	if _, err := c.electionService.GetByID(id); err != nil {
		return respondError(ctx, err)
	}

	if err := c.hub.ServeWS(ctx.Response(), ctx.Request(), id); err != nil {
		c.logger.Warnw("Failed to open live feed", "election_id", id, "error", err)
		return err
	}
	return nil
}
