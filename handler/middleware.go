package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// publicPath reports whether the path is reachable without a token
func publicPath(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/v1/otp/") ||
		strings.HasPrefix(path, "/swagger") ||
		strings.HasPrefix(path, "/docs") ||
		path == "/" ||
		path == "/health" ||
		path == "/api/v1/counters" {
		return true
	}
	// The live tally feed is public; browsers cannot set headers on
	// websocket upgrades
	if strings.HasPrefix(path, "/api/v1/elections/") && strings.HasSuffix(path, "/live") {
		return true
	}
	return false
}

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(jwtService service.JWTService, logger *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if publicPath(c) {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				logger.Warnw("Missing Authorization header", "path", path)
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "Unauthorized",
					"details": "Missing Authorization header",
				})
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Warnw("Invalid Authorization header format", "path", path)
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "Unauthorized",
					"details": "Invalid Authorization header format",
				})
			}

			tokenString := authHeader[7:]

			token, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				logger.Warnw("Invalid JWT token", "path", path, "error", err)
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "Unauthorized",
					"details": "Invalid or expired token",
				})
			}

			user, err := jwtService.GetUserFromToken(token)
			if err != nil {
				logger.Errorw("Failed to extract user from token", "path", path, "error", err)
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "Unauthorized",
					"details": "Invalid token claims",
				})
			}

			c.Set("user", user)

			logger.Debugw("JWT authentication successful", "user_id", user.ID, "path", path)
			return next(c)
		}
	}
}

// RequireAdmin guards admin-only routes. The role is re-read from storage
// rather than trusted from the token, so a revoked admin is cut off before
// their token expires.
func RequireAdmin(userService service.UserService, logger *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*entity.User)
			if !ok || user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "Unauthorized",
					"details": "Missing authentication",
				})
			}

			isAdmin, err := userService.IsAdmin(user.Email)
			if err != nil {
				logger.Errorw("Failed to verify admin role", "email", user.Email, "error", err)
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error": "Forbidden",
					"code":  "FORBIDDEN",
				})
			}
			if !isAdmin {
				logger.Warnw("Admin route denied", "email", user.Email, "path", c.Request().URL.Path)
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error": "Forbidden",
					"code":  "FORBIDDEN",
				})
			}

			return next(c)
		}
	}
}

// CORSMiddleware creates a CORS middleware
func CORSMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Access-Control-Allow-Origin", "*")
			c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

			if c.Request().Method == "OPTIONS" {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}

// RequestLoggerMiddleware creates a request logging middleware. Every
// request gets an id that rides along in the response headers and both
// log lines.
func RequestLoggerMiddleware(logger *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()

			logger.Infow("HTTP Request",
				"request_id", requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", c.Request().UserAgent(),
			)

			err := next(c)

			logger.Infow("HTTP Response",
				"request_id", requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)

			return err
		}
	}
}
