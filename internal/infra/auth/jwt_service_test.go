package auth

import (
	"testing"
	"time"

	"mapic/config"
	"mapic/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	pair, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := svc.ValidateToken(pair.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	gotID, err := accessClaims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(pair.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	pair, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret, so presenting one as an access token fails.
	_, err = svc.ValidateToken(pair.RefreshToken, service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	s, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := s.(*jwtService)
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return issued }

	pair, err := impl.GenerateTokens(uuid.New())
	require.NoError(t, err)

	impl.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = impl.ValidateToken(pair.AccessToken, service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_SameSecretWrongType(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	pair, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, service.TokenTypeAccess)
	assert.True(t, errors.Is(err, ErrWrongTokenType))
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token", service.TokenTypeAccess)
	assert.Error(t, err)
}
