package utils_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/workspace_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestVerifyPassword_NilHashNeverMatches(t *testing.T) {
	assert.False(t, utils.VerifyPassword("anything", nil))
	empty := ""
	assert.False(t, utils.VerifyPassword("", &empty))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := utils.HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}
