package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims JWTClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateAccessToken(t *testing.T) {
	m := NewJWTManager("test-secret")
	signed := signToken(t, "test-secret", JWTClaims{
		UserID: 7,
		Email:  "cashier@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := m.ValidateAccessToken(signed)

	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "cashier@example.com", claims.Email)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret")
	signed := signToken(t, "other-secret", JWTClaims{UserID: 7})

	_, err := m.ValidateAccessToken(signed)

	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	m := NewJWTManager("test-secret")
	signed := signToken(t, "test-secret", JWTClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := m.ValidateAccessToken(signed)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	m := NewJWTManager("test-secret")

	_, err := m.ValidateAccessToken("not-a-token")

	assert.Error(t, err)
}
