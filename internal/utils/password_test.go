package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-one")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-one", hash)

	assert.True(t, CheckPasswordHash("s3cret-one", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret-one", "not-a-bcrypt-hash"))
}

func TestGenerateTempPassword(t *testing.T) {
	password, err := GenerateTempPassword(8)
	require.NoError(t, err)
	assert.Len(t, password, 16)

	other, err := GenerateTempPassword(8)
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}

func TestGenerateTempPassword_InvalidLength(t *testing.T) {
	_, err := GenerateTempPassword(0)
	assert.Error(t, err)
}
