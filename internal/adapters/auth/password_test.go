package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(10)

	t.Run("hash and compare round trip", func(t *testing.T) {
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
		require.NoError(t, hasher.Compare(hash, "secret1"))
	})

	t.Run("wrong password fails compare", func(t *testing.T) {
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		require.Error(t, hasher.Compare(hash, "wrong"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("secret1")
		require.NoError(t, err)
		second, err := hasher.Hash("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("cost below minimum falls back to the default", func(t *testing.T) {
		low := NewBcryptHasher(0)
		hash, err := low.Hash("secret1")
		require.NoError(t, err)
		require.NoError(t, low.Compare(hash, "secret1"))
	})
}
