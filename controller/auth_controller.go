package controller

import (
	"net/http"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication-related operations
type AuthController struct {
	jwtService service.JWTService
	logger     *logger.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(jwtService service.JWTService, logger *logger.Logger) *AuthController {
	return &AuthController{
		jwtService: jwtService,
		logger:     logger,
	}
}

// @Summary Logout user
// @Description Logout user and revoke JWT token from Redis session store
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body entity.LogoutRequest false "Logout options"
// @Security BearerAuth
// @Success 200 {object} entity.LogoutResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	authHeader := ctx.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ctx.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "Unauthorized",
			"details": "Missing Authorization header",
		})
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "Unauthorized",
			"details": "Invalid Authorization header format",
		})
	}

	tokenString := authHeader[7:]

	var req entity.LogoutRequest
	if err := ctx.Bind(&req); err != nil {
		// The body is optional
		req = entity.LogoutRequest{}
	}

	token, err := c.jwtService.ValidateToken(tokenString)
	if err != nil {
		c.logger.Warnw("Failed to validate token for logout", "error", err)
		return ctx.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error":   "Unauthorized",
			"details": "Invalid token",
		})
	}

	user, err := c.jwtService.GetUserFromToken(token)
	if err != nil {
		c.logger.Errorw("Failed to get user from token", "error", err)
		return respondError(ctx, err)
	}

	if req.LogoutAll {
		if err := c.jwtService.RevokeAllUserTokens(user.ID); err != nil {
			c.logger.Errorw("Failed to revoke all user tokens", "user_id", user.ID, "error", err)
			return respondError(ctx, err)
		}
		c.logger.Infow("User logged out from all devices", "user_id", user.ID)
		return ctx.JSON(http.StatusOK, entity.LogoutResponse{
			Message: "Successfully logged out from all devices",
		})
	}

	if err := c.jwtService.RevokeToken(tokenString); err != nil {
		c.logger.Errorw("Failed to revoke token", "user_id", user.ID, "error", err)
		return respondError(ctx, err)
	}

	c.logger.Infow("User logged out", "user_id", user.ID)
	return ctx.JSON(http.StatusOK, entity.LogoutResponse{
		Message: "Successfully logged out",
	})
}
