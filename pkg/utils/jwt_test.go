package utils_test

import (
	"testing"
	"time"

	"marketplace-auth/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := utils.GenerateAccessToken(userID, "vendor@example.com", "vendor", testAccessSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.VerifyAccessToken(token, testAccessSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.Equal(t, "vendor", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := utils.GenerateRefreshToken(userID, testRefreshSecret, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := utils.VerifyRefreshToken(token, testRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := utils.GenerateAccessToken(uuid.New(), "a@x.com", "client", testAccessSecret, time.Hour)
	require.NoError(t, err)

	_, err = utils.VerifyAccessToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestKeySeparation(t *testing.T) {
	// Access token tidak boleh lolos verifikasi refresh, dan sebaliknya
	accessToken, err := utils.GenerateAccessToken(uuid.New(), "a@x.com", "client", testAccessSecret, time.Hour)
	require.NoError(t, err)

	_, err = utils.VerifyRefreshToken(accessToken, testRefreshSecret)
	assert.Error(t, err)

	refreshToken, err := utils.GenerateRefreshToken(uuid.New(), testRefreshSecret, time.Hour)
	require.NoError(t, err)

	_, err = utils.VerifyAccessToken(refreshToken, testAccessSecret)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	token, err := utils.GenerateAccessToken(uuid.New(), "a@x.com", "client", testAccessSecret, -time.Minute)
	require.NoError(t, err)

	_, err = utils.VerifyAccessToken(token, testAccessSecret)
	assert.Error(t, err)
}

func TestVerifyTamperedToken(t *testing.T) {
	token, err := utils.GenerateAccessToken(uuid.New(), "a@x.com", "client", testAccessSecret, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "xxxx"
	_, err = utils.VerifyAccessToken(tampered, testAccessSecret)
	assert.Error(t, err)
}
