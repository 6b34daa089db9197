package entity

import (
	"time"
)

// OTP purposes
const (
	OTPPurposeRegister = "register"
	OTPPurposeLogin    = "login"
)

// OTP statuses. A record is created pending and flips to used exactly once;
// expired records stay pending and simply become permanently unusable.
const (
	OTPStatusPending = "pending"
	OTPStatusUsed    = "used"
)

// OTP represents one issued code in the append-only ledger
type OTP struct {
	ID        int        `db:"id" json:"id"`
	Email     string     `db:"email" json:"email" validate:"required,email"`
	Code      string     `db:"code" json:"code"`
	Purpose   string     `db:"purpose" json:"purpose"`
	Status    string     `db:"status" json:"status"`
	IssuedAt  time.Time  `db:"issued_at" json:"issued_at"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	UsedAt    *time.Time `db:"used_at" json:"used_at"`
}

// TableName returns the table name for the OTP entity
func (OTP) TableName() string {
	return "otps"
}

// SendOTPRequest represents the request to send an OTP
type SendOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Purpose string `json:"purpose" validate:"required,otp_purpose"`
}

// VerifyOTPRequest represents the request to verify an OTP
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// OTPResponse represents the OTP issuance acknowledgment. The code itself
// never appears here; it only travels by email.
type OTPResponse struct {
	Message        string    `json:"message"`
	Email          string    `json:"email"`
	ExpiresAt      time.Time `json:"expires_at"`
	ExpiresAtLocal string    `json:"expires_at_local"`
}

// AuthResponse represents the authentication response with JWT token
type AuthResponse struct {
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
	Message   string       `json:"message"`
}

// RateLimitInfo represents rate limiting information for OTP requests
type RateLimitInfo struct {
	Email         string    `json:"email"`
	RequestCount  int       `json:"request_count"`
	LastRequestAt time.Time `json:"last_request_at"`
	WindowStartAt time.Time `json:"window_start_at"`
}
