package auth

import (
	"testing"
	"time"

	"locinsight/config"
	"locinsight/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_operator_secret_key_very_long_for_testing"

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{Enabled: enabled, Secret: testSecret, Issuer: "locinsight"},
	}
}

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims *service.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func validClaims(roles ...string) *service.Claims {
	return &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator-1",
			Issuer:    "locinsight",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestJWTValidator_ValidToken(t *testing.T) {
	validator, err := NewJWTValidator(testConfig(true))
	require.NoError(t, err)

	claims, err := validator.ValidateToken(sign(t, jwt.SigningMethodHS256, testSecret, validClaims(service.OperatorRole)))
	require.NoError(t, err)

	assert.Equal(t, "operator-1", claims.Subject)
	assert.True(t, claims.HasRole(service.OperatorRole))
	assert.False(t, claims.HasRole("admin"))
}

func TestJWTValidator_RejectsInvalidTokens(t *testing.T) {
	validator, err := NewJWTValidator(testConfig(true))
	require.NoError(t, err)

	expired := validClaims(service.OperatorRole)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims(service.OperatorRole)
	wrongIssuer.Issuer = "someone-else"

	noExpiry := validClaims(service.OperatorRole)
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: sign(t, jwt.SigningMethodHS256, "another-secret", validClaims(service.OperatorRole))},
		{name: "expired", token: sign(t, jwt.SigningMethodHS256, testSecret, expired)},
		{name: "wrong issuer", token: sign(t, jwt.SigningMethodHS256, testSecret, wrongIssuer)},
		{name: "missing expiry", token: sign(t, jwt.SigningMethodHS256, testSecret, noExpiry)},
		{name: "garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validator.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTValidator_Config(t *testing.T) {
	validator, err := NewJWTValidator(testConfig(false))
	require.NoError(t, err)
	assert.Nil(t, validator)

	cfg := testConfig(true)
	cfg.Auth.Secret = ""
	_, err = NewJWTValidator(cfg)
	assert.Error(t, err)
}
