package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Application struct {
	GracefulShutdownTimeout time.Duration
}

type HTTPServer struct {
	Port int
}

type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Redis struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type Logger struct {
	Level string
	Mode  string // development or production
}

type Swagger struct {
	Enabled bool `json:"enabled"`
}

type JWT struct {
	Secret         string
	ExpirationTime time.Duration
}

type OTP struct {
	Length         int
	ExpirationTime time.Duration
}

type RateLimit struct {
	MaxRequests    int
	WindowDuration time.Duration
}

type Mail struct {
	Provider    string // smtp or sendgrid
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SendGridKey string
	SenderName  string
	SenderEmail string
}

type Payment struct {
	ContactRequestAmount int
	Currency             string
}

type Config struct {
	Application Application
	HTTPServer  HTTPServer
	Database    Database
	Redis       Redis
	Logger      Logger
	Swagger     Swagger
	JWT         JWT
	OTP         OTP
	RateLimit   RateLimit
	Mail        Mail
	Payment     Payment
	TimeZone    string
}

func Load() (*Config, error) {
	// Best effort: a missing .env just means plain environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Application: Application{
			GracefulShutdownTimeout: parseDurationWithDefault("APPLICATION_GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		HTTPServer: HTTPServer{
			Port: parseIntWithDefault("HTTP_SERVER_PORT", 5000),
		},
		Database: Database{
			Host:     getEnvWithDefault("DATABASE_HOST", "db"),
			Port:     parseIntWithDefault("DATABASE_PORT", 5432),
			User:     getEnvWithDefault("DATABASE_USER", "bbvote"),
			Password: getEnvWithDefault("DATABASE_PASSWORD", "bbvote"),
			Name:     getEnvWithDefault("DATABASE_NAME", "bbvote"),
			SSLMode:  getEnvWithDefault("DATABASE_SSL_MODE", "disable"),
		},
		Logger: Logger{
			Level: getEnvWithDefault("LOGGER_LEVEL", "info"),
			Mode:  getEnvWithDefault("LOGGER_MODE", "production"),
		},
		Swagger: Swagger{
			Enabled: getEnvBoolWithDefault("SWAGGER_ENABLED", true),
		},
		JWT: JWT{
			Secret:         getEnvWithDefault("ACCESS_TOKEN_SECRET", "your-super-secret-key-change-in-production"),
			ExpirationTime: parseDurationWithDefault("JWT_EXPIRATION_TIME", 7*24*time.Hour),
		},
		OTP: OTP{
			Length:         parseIntWithDefault("OTP_LENGTH", 6),
			ExpirationTime: parseDurationWithDefault("OTP_EXPIRATION_TIME", 5*time.Minute),
		},
		Redis: Redis{
			Host:     getEnvWithDefault("REDIS_HOST", "redis"),
			Port:     parseIntWithDefault("REDIS_PORT", 6379),
			Password: getEnvWithDefault("REDIS_PASSWORD", ""),
			DB:       parseIntWithDefault("REDIS_DB", 0),
		},
		RateLimit: RateLimit{
			MaxRequests:    parseIntWithDefault("RATE_LIMIT_MAX_REQUESTS", 3),
			WindowDuration: parseDurationWithDefault("RATE_LIMIT_WINDOW_DURATION", 10*time.Minute),
		},
		Mail: Mail{
			Provider:    getEnvWithDefault("EMAIL_PROVIDER", "smtp"),
			SMTPHost:    getEnvWithDefault("EMAIL_HOST", ""),
			SMTPPort:    parseIntWithDefault("EMAIL_PORT", 587),
			SMTPUser:    getEnvWithDefault("EMAIL_USER", ""),
			SMTPPass:    getEnvWithDefault("EMAIL_PASS", ""),
			SendGridKey: getEnvWithDefault("SENDGRID_API_KEY", ""),
			SenderName:  getEnvWithDefault("SENDER_NAME", "BB-Vote"),
			SenderEmail: getEnvWithDefault("SENDER_EMAIL", "notify.bbvote@gmail.com"),
		},
		Payment: Payment{
			ContactRequestAmount: parseIntWithDefault("CONTACT_REQUEST_AMOUNT", 5),
			Currency:             getEnvWithDefault("PAYMENT_CURRENCY", "usd"),
		},
		TimeZone: getEnvWithDefault("DISPLAY_TIMEZONE", "Asia/Dhaka"),
	}

	// Support legacy environment variables for backwards compatibility
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.HTTPServer.Port = p
		}
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
