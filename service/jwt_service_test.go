package service

import (
	"testing"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtFixture(t *testing.T) JWTService {
	t.Helper()
	cfg := newTestConfig()
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationTime = time.Hour
	return NewJWTService(cfg, newTestLogger(t), nil)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := jwtFixture(t)

	user := &entity.User{
		ID:       7,
		Email:    "voter@example.com",
		Name:     "Voter",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}

	auth, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, "voter@example.com", auth.User.Email)

	token, err := svc.ValidateToken(auth.Token)
	require.NoError(t, err)

	got, err := svc.GetUserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "voter@example.com", got.Email)
	assert.Equal(t, entity.RoleAdmin, got.Role)
}

func TestJWTService_RejectsTampering(t *testing.T) {
	svc := jwtFixture(t)

	auth, err := svc.GenerateToken(&entity.User{ID: 1, Email: "voter@example.com", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(auth.Token + "x")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RevocationNeedsSessionStore(t *testing.T) {
	svc := jwtFixture(t)

	auth, err := svc.GenerateToken(&entity.User{ID: 1, Email: "voter@example.com", Role: entity.RoleUser})
	require.NoError(t, err)

	err = svc.RevokeToken(auth.Token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session store not available")

	err = svc.RevokeAllUserTokens(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session store not available")
}
