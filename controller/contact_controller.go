package controller

import (
	"net/http"
	"strconv"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"
	"github.com/SadatRiyad/BB-Vote-Server/validator"

	"github.com/labstack/echo/v4"
)

// ContactController handles paid contact request endpoints
type ContactController struct {
	contactService service.ContactService
	validator      *validator.Validator
	logger         *logger.Logger
}

// NewContactController creates a new contact controller instance
func NewContactController(contactService service.ContactService, validator *validator.Validator, logger *logger.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		validator:      validator,
		logger:         logger,
	}
}

// Create charges the caller and opens a contact request
// @Summary Open contact request
// @Tags ContactRequests
// @Accept json
// @Produce json
// @Param request body entity.CreateContactRequest true "Contact request"
// @Security BearerAuth
// @Success 201 {object} entity.ContactRequestResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 402 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /contact-requests [post]
func (c *ContactController) Create(ctx echo.Context) error {
	var req entity.CreateContactRequest

	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	caller := currentUser(ctx)
	if caller == nil {
		return respondError(ctx, entity.ErrForbidden)
	}

	response, err := c.contactService.Create(caller.Email, &req)
	if err != nil {
		c.logger.Warnw("Failed to open contact request", "email", caller.Email, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// Mine lists the caller's own contact requests
// @Summary My contact requests
// @Tags ContactRequests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.ContactRequestsListResponse
// @Router /contact-requests/mine [get]
func (c *ContactController) Mine(ctx echo.Context) error {
	caller := currentUser(ctx)
	if caller == nil {
		return respondError(ctx, entity.ErrForbidden)
	}

	response, err := c.contactService.ListMine(caller.Email)
	if err != nil {
		c.logger.Errorw("Failed to list contact requests", "email", caller.Email, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// Pending lists pending contact requests for admin review
// @Summary Pending contact requests
// @Tags ContactRequests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.ContactRequestsListResponse
// @Router /contact-requests/pending [get]
func (c *ContactController) Pending(ctx echo.Context) error {
	response, err := c.contactService.ListPending()
	if err != nil {
		c.logger.Errorw("Failed to list pending contact requests", "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// Approve marks a contact request approved
// @Summary Approve contact request
// @Tags ContactRequests
// @Produce json
// @Param id path int true "Contact request ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /contact-requests/{id}/approve [patch]
func (c *ContactController) Approve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return bindError(ctx, err)
	}

	if err := c.contactService.Approve(id); err != nil {
		c.logger.Warnw("Failed to approve contact request", "id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Contact request approved"})
}

// Cancel marks a contact request cancelled
// @Summary Cancel contact request
// @Tags ContactRequests
// @Produce json
// @Param id path int true "Contact request ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /contact-requests/{id}/cancel [patch]
func (c *ContactController) Cancel(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return bindError(ctx, err)
	}

	if err := c.contactService.Cancel(id); err != nil {
		c.logger.Warnw("Failed to cancel contact request", "id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Contact request cancelled"})
}

// Delete removes a contact request. Owners delete their own; admins any.
// @Summary Delete contact request
// @Tags ContactRequests
// @Produce json
// @Param id path int true "Contact request ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /contact-requests/{id} [delete]
func (c *ContactController) Delete(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return bindError(ctx, err)
	}

	caller := currentUser(ctx)
	if caller == nil {
		return respondError(ctx, entity.ErrForbidden)
	}

	if err := c.contactService.Delete(id, caller.Email, caller.IsAdmin()); err != nil {
		c.logger.Warnw("Failed to delete contact request", "id", id, "error", err)
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Contact request deleted"})
}
