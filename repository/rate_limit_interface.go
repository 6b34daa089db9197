package repository

import (
	"github.com/SadatRiyad/BB-Vote-Server/entity"
)

// RateLimitRepository interface defines OTP send rate limiting operations
type RateLimitRepository interface {
	GetRateLimit(email string) (*entity.RateLimitInfo, error)
	UpdateRateLimit(rateLimitInfo *entity.RateLimitInfo) error
}
