package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})

	token, err := GenerateToken(42, "ann", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "ann", claims.Username)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseTokenRejectsExpiredAndGarbage(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "test-secret"})

	expired, err := GenerateToken(1, "old", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	_, err = ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config.SetForTesting(config.AppConfig{JWTSecret: "first-secret"})
	token, err := GenerateToken(7, "bob", time.Hour)
	require.NoError(t, err)

	config.SetForTesting(config.AppConfig{JWTSecret: "second-secret"})
	_, err = ParseToken(token)
	assert.Error(t, err)
}
