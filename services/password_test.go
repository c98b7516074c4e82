package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 2, "hash format is salt$hash")
	assert.NotContains(t, hash, "correct horse")

	t.Run("same password hashes differently each time", func(t *testing.T) {
		other, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := HashPassword("")
		assert.Error(t, err)
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "not it")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("malformed stored hash", func(t *testing.T) {
		_, err := VerifyPassword("no-separator", "s3cret")
		assert.Error(t, err)
	})
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, ComparePasswords(hash, "s3cret"))
	assert.False(t, ComparePasswords(hash, "wrong"))
	assert.False(t, ComparePasswords("garbage", "s3cret"))
}
