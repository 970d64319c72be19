package auth

import (
	"testing"

	"github.com/BeMaTech82/hortago/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := newTestConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"seller", "buyer"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// The access token validates against the access secret and carries the roles.
	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
	assert.Equal(t, "access", claims["type"])

	// The refresh token validates against the refresh secret and has no roles.
	parsedRefresh, err := jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	refreshClaims, ok := parsedRefresh.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", refreshClaims["type"])
	assert.NotContains(t, refreshClaims, "roles")
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := newTestConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(accessToken, "some-other-secret")
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	cfg := newTestConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
