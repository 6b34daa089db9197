package controller

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
)

// statusFor maps a domain error code to its HTTP status
func statusFor(code string) int {
	switch code {
	case "ALREADY_REGISTERED", "DUPLICATE_VOTE":
		return http.StatusConflict
	case "NOT_REGISTERED", "USER_NOT_FOUND", "ELECTION_NOT_FOUND",
		"CANDIDATE_NOT_FOUND", "CONTACT_REQUEST_NOT_FOUND":
		return http.StatusNotFound
	case "NO_PENDING_CODE", "CODE_MISMATCH", "CODE_EXPIRED":
		return http.StatusBadRequest
	case "RATE_LIMITED":
		return http.StatusTooManyRequests
	case "ELECTION_CLOSED":
		return http.StatusForbidden
	case "FORBIDDEN":
		return http.StatusForbidden
	case "PAYMENT_FAILED":
		return http.StatusPaymentRequired
	case "UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// isConnectivityError reports whether err is a connection-class failure
// from the storage layer rather than a data-level one
func isConnectivityError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Postgres class 08 is "connection exception"
		return strings.HasPrefix(string(pqErr.Code), "08")
	}
	return false
}

// respondError translates a service error into a JSON error response.
// Domain errors keep their stable code so clients can branch on it; a
// lost storage connection surfaces as 503; anything else becomes an
// opaque 500.
func respondError(ctx echo.Context, err error) error {
	var domainErr *entity.Error
	if errors.As(err, &domainErr) {
		return ctx.JSON(statusFor(domainErr.Code), map[string]interface{}{
			"error": domainErr.Message,
			"code":  domainErr.Code,
		})
	}

	if isConnectivityError(err) {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"error": entity.ErrUnavailable.Message,
			"code":  entity.ErrUnavailable.Code,
		})
	}

	return ctx.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": "Internal server error",
		"code":  "INTERNAL",
	})
}

// bindError is the shared 400 for malformed request bodies
func bindError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "Invalid request format",
		"details": err.Error(),
	})
}

// validationError is the shared 400 for failed payload validation
func validationError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation failed",
		"details": err.Error(),
	})
}
