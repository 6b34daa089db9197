package test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/migrations"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/repository"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// TestDB wraps a test database connection
type TestDB struct {
	DB *sqlx.DB
}

// SetupTestDB creates a test database and runs migrations
func SetupTestDB(t *testing.T) *TestDB {
	host := getEnvOrDefault("TEST_DB_HOST", "localhost")
	port := getEnvOrDefault("TEST_DB_PORT", "5432")
	user := getEnvOrDefault("TEST_DB_USER", "bbvote")
	password := getEnvOrDefault("TEST_DB_PASSWORD", "bbvote")

	baseDBName := getEnvOrDefault("POSTGRES_DB", "bbvote")
	dbName := getEnvOrDefault("TEST_DB_NAME", baseDBName+"_test")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName)

	db, err := sqlx.Connect("postgres", connStr)
	require.NoError(t, err, "Failed to connect to test database")

	// Run migrations - check multiple possible paths
	migrationPaths := []string{"./migrations", "../migrations", "/app/migrations"}
	for _, path := range migrationPaths {
		err = migrations.RunMigrations(db.DB, path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "Failed to run test migrations")

	return &TestDB{DB: db}
}

// Close closes the test database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// CleanTables removes all data from tables (for test isolation)
func (tdb *TestDB) CleanTables(t *testing.T) {
	_, err := tdb.DB.Exec("TRUNCATE TABLE contact_requests, votes, elections, candidates, otps, users RESTART IDENTITY CASCADE")
	require.NoError(t, err, "Failed to clean test tables")
}

// CreateTestUser creates a test user in the database
func (tdb *TestDB) CreateTestUser(t *testing.T, email string) *entity.User {
	user := &entity.User{
		Email:    email,
		Role:     entity.RoleUser,
		IsActive: true,
	}

	userRepo := repository.NewUserRepository(tdb.DB)
	createdUser, err := userRepo.Create(user)
	require.NoError(t, err, "Failed to create test user")

	return createdUser
}

// CreateTestOTP creates a pending OTP in the database
func (tdb *TestDB) CreateTestOTP(t *testing.T, email, code, purpose string, expiresAt time.Time) *entity.OTP {
	otp := &entity.OTP{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		Status:    entity.OTPStatusPending,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}

	otpRepo := repository.NewOTPRepository(tdb.DB)
	createdOTP, err := otpRepo.Create(otp)
	require.NoError(t, err, "Failed to create test OTP")

	return createdOTP
}

// CreateExpiredOTP creates an expired OTP for testing
func (tdb *TestDB) CreateExpiredOTP(t *testing.T, email, code string) *entity.OTP {
	return tdb.CreateTestOTP(t, email, code, entity.OTPPurposeLogin, time.Now().Add(-5*time.Minute))
}

// CreateValidOTP creates a pending OTP that expires in 2 minutes
func (tdb *TestDB) CreateValidOTP(t *testing.T, email, code string) *entity.OTP {
	return tdb.CreateTestOTP(t, email, code, entity.OTPPurposeLogin, time.Now().Add(2*time.Minute))
}

// CreateTestCandidate creates an active candidate in the database
func (tdb *TestDB) CreateTestCandidate(t *testing.T, candidateID, name string) *entity.Candidate {
	candidate := &entity.Candidate{
		CandidateID:  candidateID,
		Name:         name,
		Party:        "Independent",
		Type:         "Male",
		Status:       entity.CandidateActive,
		PremiumState: entity.PremiumNone,
	}

	candRepo := repository.NewCandidateRepository(tdb.DB)
	created, err := candRepo.Create(candidate)
	require.NoError(t, err, "Failed to create test candidate")

	return created
}

// CreateActiveElection creates an election whose voting window covers now
func (tdb *TestDB) CreateActiveElection(t *testing.T, name string) *entity.Election {
	election := &entity.Election{
		Name:     name,
		Status:   entity.ElectionActive,
		StartsAt: time.Now().Add(-time.Hour),
		EndsAt:   time.Now().Add(time.Hour),
	}

	electionRepo := repository.NewElectionRepository(tdb.DB)
	created, err := electionRepo.Create(election)
	require.NoError(t, err, "Failed to create test election")

	return created
}

// GetTestLogger creates a test logger
func GetTestLogger() *logger.Logger {
	log, err := logger.New("debug", "development")
	if err != nil {
		panic(fmt.Sprintf("Failed to create test logger: %v", err))
	}
	return log
}

// AssertUserExists asserts that a user exists with the given email
func (tdb *TestDB) AssertUserExists(t *testing.T, email string) *entity.User {
	userRepo := repository.NewUserRepository(tdb.DB)
	user, err := userRepo.GetByEmail(email)
	require.NoError(t, err, "Failed to get user")
	require.NotNil(t, user, "User should exist")
	return user
}

// AssertUserCount asserts the total number of users in the database
func (tdb *TestDB) AssertUserCount(t *testing.T, expectedCount int) {
	var count int
	err := tdb.DB.Get(&count, "SELECT COUNT(*) FROM users")
	require.NoError(t, err, "Failed to count users")
	require.Equal(t, expectedCount, count, "User count mismatch")
}

// AssertOTPUsed asserts that an OTP is marked as used
func (tdb *TestDB) AssertOTPUsed(t *testing.T, otpID int) {
	var status string
	var usedAt *time.Time
	err := tdb.DB.QueryRow("SELECT status, used_at FROM otps WHERE id = $1", otpID).Scan(&status, &usedAt)
	require.NoError(t, err, "Failed to get OTP status")
	require.Equal(t, entity.OTPStatusUsed, status, "OTP should be marked as used")
	require.NotNil(t, usedAt, "OTP should have used_at timestamp")
}

// AssertOTPPending asserts that an OTP is still pending
func (tdb *TestDB) AssertOTPPending(t *testing.T, otpID int) {
	var status string
	err := tdb.DB.Get(&status, "SELECT status FROM otps WHERE id = $1", otpID)
	require.NoError(t, err, "Failed to get OTP status")
	require.Equal(t, entity.OTPStatusPending, status, "OTP should still be pending")
}

// AssertVoteCount asserts the number of votes recorded for an election
func (tdb *TestDB) AssertVoteCount(t *testing.T, electionID, expectedCount int) {
	var count int
	err := tdb.DB.Get(&count, "SELECT COUNT(*) FROM votes WHERE election_id = $1", electionID)
	require.NoError(t, err, "Failed to count votes")
	require.Equal(t, expectedCount, count, "Vote count mismatch")
}

// AssertLastLoginUpdated asserts that the user's last login timestamp was recently updated
func (tdb *TestDB) AssertLastLoginUpdated(t *testing.T, email string, within time.Duration) {
	var lastLoginAt *time.Time
	err := tdb.DB.Get(&lastLoginAt, "SELECT last_login_at FROM users WHERE email = $1", email)
	require.NoError(t, err, "Failed to get last login time")
	require.NotNil(t, lastLoginAt, "Last login should be set")

	timeSinceLogin := time.Since(*lastLoginAt)
	require.True(t, timeSinceLogin <= within,
		"Last login should be within %v, but was %v ago", within, timeSinceLogin)
}

// GetPendingOTPCount returns the number of pending, unexpired OTPs for an email
func (tdb *TestDB) GetPendingOTPCount(t *testing.T, email string) int {
	var count int
	err := tdb.DB.Get(&count,
		"SELECT COUNT(*) FROM otps WHERE email = $1 AND status = 'pending' AND expires_at > NOW()",
		email)
	require.NoError(t, err, "Failed to count pending OTPs")
	return count
}

// GetTotalOTPCount returns the total number of OTPs ever issued for an email
func (tdb *TestDB) GetTotalOTPCount(t *testing.T, email string) int {
	var count int
	err := tdb.DB.Get(&count, "SELECT COUNT(*) FROM otps WHERE email = $1", email)
	require.NoError(t, err, "Failed to count total OTPs")
	return count
}

// GenerateTestEmail generates a test email with optional suffix
func GenerateTestEmail(suffix string) string {
	if suffix == "" {
		return "voter@example.com"
	}
	return fmt.Sprintf("voter%s@example.com", suffix)
}

// GenerateTestOTPCode generates a test OTP code
func GenerateTestOTPCode(suffix string) string {
	if suffix == "" {
		return "123456"
	}
	return fmt.Sprintf("12345%s", suffix)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
