package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ParseIdentity(t *testing.T) {
	svc, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":      "u-123",
		"name":     "Nguyễn Văn A",
		"username": "nguyenvana",
		"email":    "a@example.com",
		"role":     "admin",
		"avatar":   "https://cdn.example.com/a.png",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	})

	identity, err := svc.ParseIdentity(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u-123", identity.ID)
	assert.Equal(t, "nguyenvana", identity.Username)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "u-123",
		"role": "user",
		"iat":  time.Now().Add(-time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	identity, err := svc.ParseIdentity(tokenString)
	assert.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	tokenString := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub":  "u-123",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ParseIdentity(tokenString)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTService_UnknownRole(t *testing.T) {
	svc, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "u-123",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ParseIdentity(tokenString)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	identity, err := svc.ParseIdentity("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
