package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/controller"
	_ "github.com/SadatRiyad/BB-Vote-Server/docs" // Import for swagger
	"github.com/SadatRiyad/BB-Vote-Server/handler"
	"github.com/SadatRiyad/BB-Vote-Server/migrations"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/localtime"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/mailer"
	"github.com/SadatRiyad/BB-Vote-Server/realtime"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
	"github.com/SadatRiyad/BB-Vote-Server/service"
	"github.com/SadatRiyad/BB-Vote-Server/validator"

	"github.com/redis/go-redis/v9"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
)

// @title BB-Vote Server API
// @version 1.0
// @description Voting platform backend: email OTP authentication, single-ballot elections, live tallies and paid contact requests
// @contact.name API Support
// @contact.email notify.bbvote@gmail.com
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
// @description Enter JWT Bearer token in format: Bearer {token}
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Mode)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Infow("Starting BB-Vote Server",
		"version", "1.0.0",
		"port", cfg.HTTPServer.Port,
		"log_level", cfg.Logger.Level,
		"log_mode", cfg.Logger.Mode,
	)

	// Display timezone for boundary formatting
	zone, err := localtime.Load(cfg.TimeZone)
	if err != nil {
		log.Fatalw("Failed to load display timezone", "zone", cfg.TimeZone, "error", err)
	}

	// Connect to database
	db, err := connectDB(cfg)
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()

	log.Infow("Database connected successfully",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	// Run migrations
	if err := migrations.RunMigrations(db.DB, "./migrations"); err != nil {
		log.Fatalw("Failed to run database migrations", "error", err)
	}

	log.Infow("Database migrations completed successfully")

	// Connect to Redis for rate limiting, sessions and the live tally bus
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("Failed to connect to Redis", "error", err)
	}

	log.Infow("Redis connected successfully", "host", cfg.Redis.Host, "port", cfg.Redis.Port)

	// Initialize validator
	v := validator.New()

	// Email dispatcher
	m := mailer.New(cfg, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	electionRepo := repository.NewElectionRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	contactRepo := repository.NewContactRequestRepository(db)
	rateLimitRepo := repository.NewRedisRateLimitRepository(redisClient, cfg, log)

	// Live tally fan-out: votes publish to Redis, the hub pushes to sockets
	publisher := realtime.NewRedisPublisher(redisClient)
	hub := realtime.NewHub(redisClient, log)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go hub.Run(hubCtx)

	// Initialize services
	userService := service.NewUserService(userRepo, log)
	sessionStore := service.NewSessionStore(redisClient, log)
	jwtService := service.NewJWTService(cfg, log, sessionStore)
	otpService := service.NewOTPService(otpRepo, userRepo, rateLimitRepo, m, cfg, log, zone)
	candidateService := service.NewCandidateService(candidateRepo, log)
	electionService := service.NewElectionService(electionRepo, log, zone)
	tallyService := service.NewTallyService(voteRepo, electionRepo, candidateRepo, contactRepo, log)
	voteService := service.NewVoteService(voteRepo, electionRepo, candidateRepo, userRepo, tallyService, publisher, log, zone)
	paymentProvider := service.NewLoggingPaymentProvider(log)
	contactService := service.NewContactService(contactRepo, candidateRepo, paymentProvider, cfg, log, zone)

	// Initialize controllers
	otpController := controller.NewOTPController(otpService, jwtService, v, log)
	authController := controller.NewAuthController(jwtService, log)
	userController := controller.NewUserController(userService, log)
	candidateController := controller.NewCandidateController(candidateService, tallyService, v, log)
	electionController := controller.NewElectionController(electionService, voteService, tallyService, hub, v, log)
	contactController := controller.NewContactController(contactService, v, log)
	healthController := controller.NewHealthController()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Register routes
	handler.RegisterRoutes(e,
		otpController, authController, userController,
		candidateController, electionController, contactController,
		healthController, jwtService, userService, cfg, log)

	// Start server in a goroutine
	serverAddr := fmt.Sprintf(":%d", cfg.HTTPServer.Port)
	go func() {
		log.Infow("Starting HTTP server", "address", serverAddr)
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalw("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Infow("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Application.GracefulShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Failed to shutdown server gracefully", "error", err)
		os.Exit(1)
	}

	log.Infow("Server shutdown completed successfully")
}

func connectDB(cfg *config.Config) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	var db *sqlx.DB
	var err error

	// Retry connection up to 30 times with 1 second delay
	for i := 0; i < 30; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
			db.Close()
		}

		if i == 0 {
			fmt.Printf("Waiting for database to be ready...\n")
		}
		fmt.Printf("Database connection attempt %d/30 failed: %v\n", i+1, err)
		time.Sleep(1 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
