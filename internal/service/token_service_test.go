package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTToken_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "multipay")

	token, expiresAt, err := svc.Generate(42, "budi@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
}

func TestJWTToken_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "multipay")
	other := NewJWTTokenService("different-secret", time.Hour, "multipay")

	token, _, err := svc.Generate(42, "budi@example.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTToken_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", -time.Minute, "multipay")

	token, _, err := svc.Generate(42, "budi@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTToken_RejectsGarbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "multipay")

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
