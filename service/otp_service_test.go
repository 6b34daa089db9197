package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/config"
	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/localtime"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "production")
	require.NoError(t, err)
	return log
}

func newTestZone(t *testing.T) *localtime.Zone {
	t.Helper()
	zone, err := localtime.Load(localtime.DefaultZone)
	require.NoError(t, err)
	return zone
}

func newTestConfig() *config.Config {
	return &config.Config{
		OTP: config.OTP{
			Length:         6,
			ExpirationTime: 5 * time.Minute,
		},
		RateLimit: config.RateLimit{
			MaxRequests:    3,
			WindowDuration: 10 * time.Minute,
		},
		Payment: config.Payment{
			ContactRequestAmount: 5,
			Currency:             "usd",
		},
	}
}

// fakeOTPRepo is an in-memory append-only OTP ledger
type fakeOTPRepo struct {
	mu     sync.Mutex
	nextID int
	otps   []entity.OTP
}

func (f *fakeOTPRepo) Create(otp *entity.OTP) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *otp
	stored.ID = f.nextID
	stored.Status = entity.OTPStatusPending
	f.otps = append(f.otps, stored)
	return &stored, nil
}

func (f *fakeOTPRepo) GetLatestPendingByEmail(email string) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *entity.OTP
	for i := range f.otps {
		otp := &f.otps[i]
		if otp.Email != email || otp.Status != entity.OTPStatusPending {
			continue
		}
		if latest == nil || otp.IssuedAt.After(latest.IssuedAt) {
			latest = otp
		}
	}
	if latest == nil {
		return nil, nil
	}
	found := *latest
	return &found, nil
}

func (f *fakeOTPRepo) MarkUsed(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.otps {
		if f.otps[i].ID == id && f.otps[i].Status == entity.OTPStatusPending {
			now := time.Now()
			f.otps[i].Status = entity.OTPStatusUsed
			f.otps[i].UsedAt = &now
			return nil
		}
	}
	return entity.ErrNoPendingCode
}

// fakeUserRepo is an in-memory user store keyed by email
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(user *entity.User) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	stored.Role = entity.RoleUser
	stored.RegisteredAt = time.Now()
	stored.IsActive = true
	f.users[stored.Email] = &stored
	return &stored, nil
}

func (f *fakeUserRepo) GetByID(id int) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (f *fakeUserRepo) List(page, pageSize int, search string) ([]entity.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []entity.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, len(users), nil
}

func (f *fakeUserRepo) SetRole(id int, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			user.Role = role
			return nil
		}
	}
	return entity.ErrUserNotFound
}

func (f *fakeUserRepo) SetPremium(id int, premium bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			user.IsPremium = premium
			return nil
		}
	}
	return entity.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, user := range f.users {
		if user.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return entity.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return entity.ErrUserNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

// fakeRateLimitRepo is an in-memory rate limit store
type fakeRateLimitRepo struct {
	mu    sync.Mutex
	infos map[string]*entity.RateLimitInfo
}

func newFakeRateLimitRepo() *fakeRateLimitRepo {
	return &fakeRateLimitRepo{infos: make(map[string]*entity.RateLimitInfo)}
}

func (f *fakeRateLimitRepo) GetRateLimit(email string) (*entity.RateLimitInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.infos[email]
	if !ok {
		return nil, nil
	}
	found := *info
	return &found, nil
}

func (f *fakeRateLimitRepo) UpdateRateLimit(info *entity.RateLimitInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *info
	f.infos[info.Email] = &stored
	return nil
}

// fakeMailer records delivered codes
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	fail  bool
	sends chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sends: make(chan struct{}, 16)}
}

func (f *fakeMailer) SendOTP(to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		f.sends <- struct{}{}
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, code)
	f.sends <- struct{}{}
	return nil
}

func (f *fakeMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-f.sends:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mail dispatch")
	}
}

type otpFixture struct {
	svc      *otpService
	otpRepo  *fakeOTPRepo
	userRepo *fakeUserRepo
	mailer   *fakeMailer
}

func newOTPFixture(t *testing.T) *otpFixture {
	t.Helper()
	otpRepo := &fakeOTPRepo{}
	userRepo := newFakeUserRepo()
	m := newFakeMailer()
	svc := NewOTPService(otpRepo, userRepo, newFakeRateLimitRepo(), m,
		newTestConfig(), newTestLogger(t), newTestZone(t)).(*otpService)
	return &otpFixture{svc: svc, otpRepo: otpRepo, userRepo: userRepo, mailer: m}
}

func TestIssueCode_Register(t *testing.T) {
	fx := newOTPFixture(t)

	resp, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)

	assert.Equal(t, "voter@example.com", resp.Email)
	assert.NotEmpty(t, resp.ExpiresAtLocal)

	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Len(t, otp.Code, 6)
	assert.GreaterOrEqual(t, otp.Code, "100000")
	assert.LessOrEqual(t, otp.Code, "999999")
	assert.Equal(t, entity.OTPStatusPending, otp.Status)
	assert.Equal(t, 5*time.Minute, otp.ExpiresAt.Sub(otp.IssuedAt))
}

func TestIssueCode_RegisterKnownEmail(t *testing.T) {
	fx := newOTPFixture(t)
	_, err := fx.userRepo.Create(&entity.User{Email: "voter@example.com"})
	require.NoError(t, err)

	_, err = fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	assert.ErrorIs(t, err, entity.ErrAlreadyRegistered)
}

func TestIssueCode_LoginUnknownEmail(t *testing.T) {
	fx := newOTPFixture(t)

	_, err := fx.svc.IssueCode("ghost@example.com", entity.OTPPurposeLogin)
	assert.ErrorIs(t, err, entity.ErrNotRegistered)
}

func TestIssueCode_RateLimited(t *testing.T) {
	fx := newOTPFixture(t)

	for i := 0; i < 3; i++ {
		_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
		require.NoError(t, err)
		fx.mailer.waitForSend(t)
	}

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	assert.ErrorIs(t, err, entity.ErrRateLimited)
}

func TestIssueCode_DeliveryFailureStillIssues(t *testing.T) {
	fx := newOTPFixture(t)
	fx.mailer.fail = true

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)

	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Equal(t, entity.OTPStatusPending, otp.Status)
}

func TestVerifyCode_RegisterCreatesUser(t *testing.T) {
	fx := newOTPFixture(t)

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)

	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)

	user, err := fx.svc.VerifyCode("voter@example.com", otp.Code)
	require.NoError(t, err)
	assert.Equal(t, "voter@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)

	// The record flipped to used, so a second attempt finds nothing pending
	_, err = fx.svc.VerifyCode("voter@example.com", otp.Code)
	assert.ErrorIs(t, err, entity.ErrNoPendingCode)
}

func TestVerifyCode_LoginBumpsLastLogin(t *testing.T) {
	fx := newOTPFixture(t)
	_, err := fx.userRepo.Create(&entity.User{Email: "voter@example.com"})
	require.NoError(t, err)

	_, err = fx.svc.IssueCode("voter@example.com", entity.OTPPurposeLogin)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)

	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)

	user, err := fx.svc.VerifyCode("voter@example.com", otp.Code)
	require.NoError(t, err)
	assert.Equal(t, "voter@example.com", user.Email)

	stored, err := fx.userRepo.GetByEmail("voter@example.com")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestVerifyCode_NoPendingCode(t *testing.T) {
	fx := newOTPFixture(t)

	_, err := fx.svc.VerifyCode("voter@example.com", "123456")
	assert.ErrorIs(t, err, entity.ErrNoPendingCode)
}

func TestVerifyCode_Mismatch(t *testing.T) {
	fx := newOTPFixture(t)

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)

	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)

	wrong := "123456"
	if otp.Code == wrong {
		wrong = "654321"
	}

	_, err = fx.svc.VerifyCode("voter@example.com", wrong)
	assert.ErrorIs(t, err, entity.ErrCodeMismatch)

	// A mismatch leaves the record pending and usable
	again, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, entity.OTPStatusPending, again.Status)
}

func TestVerifyCode_MostRecentPendingWins(t *testing.T) {
	fx := newOTPFixture(t)
	base := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	clock := base
	fx.svc.now = func() time.Time { return clock }

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)
	first, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)

	clock = base.Add(time.Minute)
	_, err = fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)
	second, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// The earlier code no longer matches: only the newest pending record counts
	if first.Code != second.Code {
		_, err = fx.svc.VerifyCode("voter@example.com", first.Code)
		assert.ErrorIs(t, err, entity.ErrCodeMismatch)
	}

	user, err := fx.svc.VerifyCode("voter@example.com", second.Code)
	require.NoError(t, err)
	assert.Equal(t, "voter@example.com", user.Email)
}

func TestVerifyCode_ExpiryBoundary(t *testing.T) {
	fx := newOTPFixture(t)
	base := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	clock := base
	fx.svc.now = func() time.Time { return clock }

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)
	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)

	// At exactly expires_at the code is already dead
	clock = otp.ExpiresAt
	_, err = fx.svc.VerifyCode("voter@example.com", otp.Code)
	assert.ErrorIs(t, err, entity.ErrCodeExpired)

	// One instant before, it still verifies
	clock = otp.ExpiresAt.Add(-time.Millisecond)
	user, err := fx.svc.VerifyCode("voter@example.com", otp.Code)
	require.NoError(t, err)
	assert.Equal(t, "voter@example.com", user.Email)
}

func TestVerifyCode_ExpiredRecordStaysInLedger(t *testing.T) {
	fx := newOTPFixture(t)
	base := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	clock := base
	fx.svc.now = func() time.Time { return clock }

	_, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)
	otp, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)

	clock = base.Add(time.Hour)
	_, err = fx.svc.VerifyCode("voter@example.com", otp.Code)
	assert.ErrorIs(t, err, entity.ErrCodeExpired)

	// Expired codes are never deleted; the record is still there, still pending
	again, err := fx.otpRepo.GetLatestPendingByEmail("voter@example.com")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, otp.ID, again.ID)
	assert.Equal(t, entity.OTPStatusPending, again.Status)
}

func TestGenerateCode_Range(t *testing.T) {
	fx := newOTPFixture(t)

	for i := 0; i < 200; i++ {
		code, err := fx.svc.generateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}

func TestIssueCode_MessageTracksConfiguredExpiry(t *testing.T) {
	fx := newOTPFixture(t)

	resp, err := fx.svc.IssueCode("voter@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	fx.mailer.waitForSend(t)
	assert.Contains(t, resp.Message, "valid for 5 minutes")

	cfg := newTestConfig()
	cfg.OTP.ExpirationTime = 10 * time.Minute
	m := newFakeMailer()
	svc := NewOTPService(&fakeOTPRepo{}, newFakeUserRepo(), newFakeRateLimitRepo(), m,
		cfg, newTestLogger(t), newTestZone(t)).(*otpService)

	resp, err = svc.IssueCode("other@example.com", entity.OTPPurposeRegister)
	require.NoError(t, err)
	m.waitForSend(t)
	assert.Contains(t, resp.Message, "valid for 10 minutes")
}

func TestFormatValidity(t *testing.T) {
	assert.Equal(t, "5 minutes", formatValidity(5*time.Minute))
	assert.Equal(t, "1 minute", formatValidity(time.Minute))
	assert.Equal(t, "1m30s", formatValidity(90*time.Second))
	assert.Equal(t, "120 minutes", formatValidity(2*time.Hour))
}
