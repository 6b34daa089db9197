package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/localtime"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/mailer"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// OTPService interface defines the passcode ledger operations
type OTPService interface {
	IssueCode(email, purpose string) (*entity.OTPResponse, error)
	VerifyCode(email, code string) (*entity.User, error)
	IsRateLimited(email string) (bool, error)
}

// otpService implements OTPService interface
type otpService struct {
	otpRepo       repository.OTPRepository
	userRepo      repository.UserRepository
	rateLimitRepo repository.RateLimitRepository
	mailer        mailer.Mailer
	cfg           *config.Config
	logger        *logger.Logger
	zone          *localtime.Zone
	now           func() time.Time
}

// NewOTPService creates a new OTP service instance
func NewOTPService(
	otpRepo repository.OTPRepository,
	userRepo repository.UserRepository,
	rateLimitRepo repository.RateLimitRepository,
	m mailer.Mailer,
	cfg *config.Config,
	logger *logger.Logger,
	zone *localtime.Zone,
) OTPService {
	return &otpService{
		otpRepo:       otpRepo,
		userRepo:      userRepo,
		rateLimitRepo: rateLimitRepo,
		mailer:        m,
		cfg:           cfg,
		logger:        logger,
		zone:          zone,
		now:           time.Now,
	}
}

// IssueCode appends a new pending code to the ledger and dispatches it by
// email. The register purpose requires the address to be unknown, the login
// purpose requires it to be known. Email dispatch is fire-and-forget: the
// issued record stays valid even if delivery fails.
func (s *otpService) IssueCode(email, purpose string) (*entity.OTPResponse, error) {
	isLimited, err := s.IsRateLimited(email)
	if err != nil {
		s.logger.Errorw("Failed to check rate limit", "email", email, "error", err)
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if isLimited {
		return nil, fmt.Errorf("%w: maximum %d requests per %v", entity.ErrRateLimited,
			s.cfg.RateLimit.MaxRequests, s.cfg.RateLimit.WindowDuration)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.Errorw("Failed to look up user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	switch purpose {
	case entity.OTPPurposeRegister:
		if user != nil {
			return nil, entity.ErrAlreadyRegistered
		}
	case entity.OTPPurposeLogin:
		if user == nil {
			return nil, entity.ErrNotRegistered
		}
	default:
		return nil, fmt.Errorf("unknown OTP purpose %q", purpose)
	}

	code, err := s.generateCode()
	if err != nil {
		s.logger.Errorw("Failed to generate OTP code", "error", err)
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	issuedAt := s.now()
	otp := &entity.OTP{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.cfg.OTP.ExpirationTime),
	}

	createdOTP, err := s.otpRepo.Create(otp)
	if err != nil {
		s.logger.Errorw("Failed to create OTP", "email", email, "error", err)
		return nil, fmt.Errorf("failed to create OTP: %w", err)
	}

	if err := s.updateRateLimit(email); err != nil {
		// The code was issued; a rate limit bookkeeping failure is not fatal
		s.logger.Errorw("Failed to update rate limit", "email", email, "error", err)
	}

	go func() {
		if err := s.mailer.SendOTP(email, code); err != nil {
			s.logger.Errorw("Failed to deliver OTP email", "email", email, "error", err)
		}
	}()

	s.logger.Infow("OTP issued", "email", email, "purpose", purpose, "expires_at", createdOTP.ExpiresAt)

	return &entity.OTPResponse{
		Message:        fmt.Sprintf("OTP sent successfully. Please check your email. OTP is valid for %s.", formatValidity(s.cfg.OTP.ExpirationTime)),
		Email:          email,
		ExpiresAt:      createdOTP.ExpiresAt,
		ExpiresAtLocal: s.zone.Format(createdOTP.ExpiresAt),
	}, nil
}

// VerifyCode checks a submitted code against the most-recently-issued
// pending record for the email and flips it to used on success. On the
// register purpose the account is created here; on login the last-login
// timestamp is bumped.
func (s *otpService) VerifyCode(email, code string) (*entity.User, error) {
	otp, err := s.otpRepo.GetLatestPendingByEmail(email)
	if err != nil {
		s.logger.Errorw("Failed to get pending OTP", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get pending OTP: %w", err)
	}
	if otp == nil {
		return nil, entity.ErrNoPendingCode
	}

	if otp.Code != code {
		s.logger.Warnw("OTP code mismatch", "email", email)
		return nil, entity.ErrCodeMismatch
	}
	if otp.Email != email {
		// The query is keyed by email, so this cannot trip; surfaced the same
		// way as a mismatch if it ever does.
		return nil, entity.ErrCodeMismatch
	}
	if !s.now().Before(otp.ExpiresAt) {
		// Expired records stay pending in the ledger; they are just never usable
		return nil, entity.ErrCodeExpired
	}

	if err := s.otpRepo.MarkUsed(otp.ID); err != nil {
		if err == entity.ErrNoPendingCode {
			// A concurrent verification won the status flip
			return nil, err
		}
		s.logger.Errorw("Failed to mark OTP as used", "otp_id", otp.ID, "error", err)
		return nil, fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.Errorw("Failed to get user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		user, err = s.userRepo.Create(&entity.User{Email: email})
		if err != nil {
			s.logger.Errorw("Failed to create user", "email", email, "error", err)
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Infow("New user registered", "user_id", user.ID, "email", email)
	} else {
		if err := s.userRepo.UpdateLastLogin(email); err != nil {
			s.logger.Errorw("Failed to update last login", "email", email, "error", err)
			return nil, fmt.Errorf("failed to update last login: %w", err)
		}
		s.logger.Infow("User logged in", "user_id", user.ID, "email", email)
	}

	return user, nil
}

// IsRateLimited checks if the email has exceeded the issuance rate limit
func (s *otpService) IsRateLimited(email string) (bool, error) {
	rateLimitInfo, err := s.rateLimitRepo.GetRateLimit(email)
	if err != nil {
		return false, fmt.Errorf("failed to get rate limit info: %w", err)
	}

	if rateLimitInfo == nil || rateLimitInfo.RequestCount == 0 {
		return false, nil
	}

	if s.now().Sub(rateLimitInfo.WindowStartAt) >= s.cfg.RateLimit.WindowDuration {
		// Window has expired, the counter resets on the next update
		return false, nil
	}

	return rateLimitInfo.RequestCount >= s.cfg.RateLimit.MaxRequests, nil
}

// updateRateLimit bumps the issuance counter for the current window
func (s *otpService) updateRateLimit(email string) error {
	rateLimitInfo, err := s.rateLimitRepo.GetRateLimit(email)
	if err != nil {
		return fmt.Errorf("failed to get rate limit info: %w", err)
	}

	now := s.now()

	if rateLimitInfo == nil || rateLimitInfo.RequestCount == 0 {
		rateLimitInfo = &entity.RateLimitInfo{
			Email:         email,
			RequestCount:  1,
			LastRequestAt: now,
			WindowStartAt: now,
		}
	} else {
		if now.Sub(rateLimitInfo.WindowStartAt) >= s.cfg.RateLimit.WindowDuration {
			rateLimitInfo.RequestCount = 1
			rateLimitInfo.WindowStartAt = now
		} else {
			rateLimitInfo.RequestCount++
		}
		rateLimitInfo.LastRequestAt = now
	}

	return s.rateLimitRepo.UpdateRateLimit(rateLimitInfo)
}

// generateCode draws a 6-digit code uniformly from [100000, 999999]
func (s *otpService) generateCode() (string, error) {
	length := s.cfg.OTP.Length
	if length < 1 {
		length = 6
	}

	low := big.NewInt(1)
	for i := 1; i < length; i++ {
		low.Mul(low, big.NewInt(10))
	}
	// span = 9 * 10^(length-1), covering every value with a leading non-zero digit
	span := new(big.Int).Mul(low, big.NewInt(9))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return n.Add(n, low).String(), nil
}

// formatValidity renders the configured expiry window for the
// acknowledgment message
func formatValidity(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return d.String()
}
