package controller

import (
	"net/http"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"
	"github.com/SadatRiyad/BB-Vote-Server/validator"

	"github.com/labstack/echo/v4"
)

// OTPController handles the email passcode endpoints
type OTPController struct {
	otpService service.OTPService
	jwtService service.JWTService
	validator  *validator.Validator
	logger     *logger.Logger
}

// NewOTPController creates a new OTP controller instance
func NewOTPController(otpService service.OTPService, jwtService service.JWTService, validator *validator.Validator, logger *logger.Logger) *OTPController {
	return &OTPController{
		otpService: otpService,
		jwtService: jwtService,
		validator:  validator,
		logger:     logger,
	}
}

// SendOTP handles code generation and email dispatch
// @Summary Send OTP
// @Description Generate a one-time code for registration or login and email it
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body entity.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} entity.OTPResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /otp/send [post]
func (c *OTPController) SendOTP(ctx echo.Context) error {
	var req entity.SendOTPRequest

	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}

	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	response, err := c.otpService.IssueCode(req.Email, req.Purpose)
	if err != nil {
		c.logger.Warnw("Failed to issue OTP", "email", req.Email, "purpose", req.Purpose, "error", err)
		return respondError(ctx, err)
	}

	c.logger.Infow("OTP sent successfully", "email", req.Email, "purpose", req.Purpose)
	return ctx.JSON(http.StatusOK, response)
}

// VerifyOTP handles code verification and authentication
// @Summary Verify OTP
// @Description Verify a one-time code and authenticate the user
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body entity.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} entity.AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /otp/verify [post]
func (c *OTPController) VerifyOTP(ctx echo.Context) error {
	var req entity.VerifyOTPRequest

	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return bindError(ctx, err)
	}

	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return validationError(ctx, err)
	}

	user, err := c.otpService.VerifyCode(req.Email, req.Code)
	if err != nil {
		c.logger.Warnw("Failed to verify OTP", "email", req.Email, "error", err)
		return respondError(ctx, err)
	}

	authResponse, err := c.jwtService.GenerateToken(user)
	if err != nil {
		c.logger.Errorw("Failed to generate token", "user_id", user.ID, "error", err)
		return respondError(ctx, err)
	}

	c.logger.Infow("User authenticated", "user_id", user.ID, "email", user.Email)
	return ctx.JSON(http.StatusOK, authResponse)
}
