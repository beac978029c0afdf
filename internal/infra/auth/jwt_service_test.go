package auth

import (
	"testing"
	"time"

	"github.com/duniya2no/ReMeet/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	gotID, err := svc.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)

	gotID, err = svc.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)

	// An access token must not pass refresh validation and vice versa.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken + "tampered")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.accessTTL = -time.Minute

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
