package controller

import (
	"net/http"
	"strconv"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"

	"github.com/labstack/echo/v4"
)

// UserController handles account endpoints
type UserController struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserController creates a new user controller instance
func NewUserController(userService service.UserService, logger *logger.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// currentUser pulls the authenticated user placed in context by the JWT middleware
func currentUser(ctx echo.Context) *entity.User {
	user, _ := ctx.Get("user").(*entity.User)
	return user
}

// GetUsers lists accounts with pagination and search
// @Summary List users
// @Description Paginated account list with optional name/email search
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Param search query string false "Search by name or email"
// @Security BearerAuth
// @Success 200 {object} entity.UsersListResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /users [get]
func (c *UserController) GetUsers(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	search := ctx.QueryParam("search")

	response, err := c.userService.GetUsers(page, pageSize, search)
	if err != nil {
		c.logger.Errorw("Failed to list users", "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserByEmail retrieves one account by email. Callers may read their own
// record; reading someone else's requires the admin role.
// @Summary Get user by email
// @Tags Users
// @Produce json
// @Param email path string true "Email address"
// @Security BearerAuth
// @Success 200 {object} entity.UserResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/email/{email} [get]
func (c *UserController) GetUserByEmail(ctx echo.Context) error {
	email := ctx.Param("email")

	caller := currentUser(ctx)
	if caller == nil || (caller.Email != email && !caller.IsAdmin()) {
		return respondError(ctx, entity.ErrForbidden)
	}

	response, err := c.userService.GetByEmail(email)
	if err != nil {
		c.logger.Warnw("Failed to get user", "email", email, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// IsAdmin answers the admin-role probe for an email
// @Summary Check admin role
// @Tags Users
// @Produce json
// @Param email path string true "Email address"
// @Security BearerAuth
// @Success 200 {object} entity.IsAdminResponse
// @Failure 404 {object} map[string]interface{}
// @Router /users/admin/{email} [get]
func (c *UserController) IsAdmin(ctx echo.Context) error {
	email := ctx.Param("email")

	isAdmin, err := c.userService.IsAdmin(email)
	if err != nil {
		c.logger.Warnw("Failed to check admin role", "email", email, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entity.IsAdminResponse{IsAdmin: isAdmin})
}

// MakeAdmin grants the admin role to a user
// @Summary Grant admin role
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/admin [patch]
func (c *UserController) MakeAdmin(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return bindError(ctx, err)
	}

	if err := c.userService.MakeAdmin(id); err != nil {
		c.logger.Warnw("Failed to grant admin role", "user_id", id, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "User is now an admin"})
}

// MakePremium flips the premium flag on a user
// @Summary Set premium flag
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/premium [patch]
func (c *UserController) MakePremium(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return bindError(ctx, err)
	}

	if err := c.userService.SetPremium(id, true); err != nil {
		c.logger.Warnw("Failed to set premium flag", "user_id", id, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "User is now premium"})
}

// DeleteUser removes an account
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return bindError(ctx, err)
	}

	if err := c.userService.Delete(id); err != nil {
		c.logger.Warnw("Failed to delete user", "user_id", id, "error", err)
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}
