package utils_test

import (
	"testing"

	"marketplace-auth/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("Abcd1234", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// Hash tidak boleh sama dengan plaintext
	assert.NotEqual(t, "Abcd1234", hash)

	// Salt acak: dua hash untuk password sama harus beda
	hash2, err := utils.HashPassword("Abcd1234", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("Abcd1234", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("Abcd1234", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
	assert.False(t, utils.CheckPasswordHash("Abcd1234", "not-a-bcrypt-hash"))
}
