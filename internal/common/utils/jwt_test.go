package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:    7,
		Email:     "traveler@example.com",
		Username:  "traveler",
		Type:      "access",
		ExpiresAt: now.Add(time.Hour).Unix(),
		IssuedAt:  now.Unix(),
		NotBefore: now.Unix(),
		Issuer:    "geodarshan-api",
		Subject:   "7",
	}

	token, err := GenerateJWT(claims, "secret")
	require.NoError(t, err)

	got, err := ValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestJWTWrongSecret(t *testing.T) {
	claims := &JWTClaims{
		UserID:    7,
		Type:      "access",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	token, err := GenerateJWT(claims, "secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	claims := &JWTClaims{
		UserID:    7,
		Type:      "access",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}

	token, err := GenerateJWT(claims, "secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("definitely.not.a.token", "secret")
	assert.Error(t, err)
}
