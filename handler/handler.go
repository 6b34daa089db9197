package handler

import (
	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/controller"
	_ "github.com/SadatRiyad/BB-Vote-Server/docs" // Import for swagger docs
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all HTTP routes and middleware
func RegisterRoutes(
	e *echo.Echo,
	otpController *controller.OTPController,
	authController *controller.AuthController,
	userController *controller.UserController,
	candidateController *controller.CandidateController,
	electionController *controller.ElectionController,
	contactController *controller.ContactController,
	healthController *controller.HealthController,
	jwtService service.JWTService,
	userService service.UserService,
	cfg *config.Config,
	logger *logger.Logger,
) {
	// Add common middleware
	e.Use(middleware.Recover())
	e.Use(CORSMiddleware())
	e.Use(RequestLoggerMiddleware(logger))
	e.Use(JWTMiddleware(jwtService, logger))

	// System endpoints
	e.GET("/health", healthController.HealthCheck)
	e.GET("/", healthController.ServiceInfo)

	// Swagger documentation
	if cfg.Swagger.Enabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
		e.GET("/docs/*", echoSwagger.WrapHandler)
	}

	// API v1 group
	v1 := e.Group("/api/v1")
	admin := RequireAdmin(userService, logger)

	// OTP routes (public)
	otpGroup := v1.Group("/otp")
	otpGroup.POST("/send", otpController.SendOTP)
	otpGroup.POST("/verify", otpController.VerifyOTP)

	// Auth routes (protected)
	authGroup := v1.Group("/auth")
	authGroup.POST("/logout", authController.Logout)

	// User routes
	userGroup := v1.Group("/users")
	userGroup.GET("", userController.GetUsers, admin)
	userGroup.GET("/email/:email", userController.GetUserByEmail)
	userGroup.GET("/admin/:email", userController.IsAdmin)
	userGroup.PATCH("/:id/admin", userController.MakeAdmin, admin)
	userGroup.PATCH("/:id/premium", userController.MakePremium, admin)
	userGroup.DELETE("/:id", userController.DeleteUser, admin)

	// Candidate routes
	candidateGroup := v1.Group("/candidates")
	candidateGroup.GET("", candidateController.List)
	candidateGroup.POST("", candidateController.Create, admin)
	candidateGroup.GET("/premium-requests", candidateController.PremiumRequests, admin)
	candidateGroup.GET("/:id", candidateController.Get)
	candidateGroup.PUT("/:id", candidateController.Update, admin)
	candidateGroup.DELETE("/:id", candidateController.Delete, admin)
	candidateGroup.PATCH("/:id/make-premium", candidateController.MakePremium, admin)

	// Election routes
	electionGroup := v1.Group("/elections")
	electionGroup.POST("", electionController.Create, admin)
	electionGroup.GET("", electionController.List)
	electionGroup.GET("/:id", electionController.Get)
	electionGroup.PUT("/:id", electionController.Update, admin)
	electionGroup.POST("/:id/vote", electionController.CastVote)
	electionGroup.GET("/:id/results", electionController.Results)
	electionGroup.GET("/:id/votes/:email", electionController.CheckVoted)
	electionGroup.GET("/:id/live", electionController.Live)

	// Contact request routes
	contactGroup := v1.Group("/contact-requests")
	contactGroup.POST("", contactController.Create)
	contactGroup.GET("/mine", contactController.Mine)
	contactGroup.GET("/pending", contactController.Pending, admin)
	contactGroup.PATCH("/:id/approve", contactController.Approve, admin)
	contactGroup.PATCH("/:id/cancel", contactController.Cancel, admin)
	contactGroup.DELETE("/:id", contactController.Delete)

	// Counters
	v1.GET("/counters", candidateController.Counters)
	v1.GET("/admin/counters", candidateController.AdminCounters, admin)
}
