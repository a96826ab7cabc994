package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(bcrypt.MinCost)

	hash1, err := h.Hash("wonderland")
	require.NoError(t, err)
	hash2, err := h.Hash("wonderland")
	require.NoError(t, err)

	assert.NotEqual(t, "wonderland", hash1)
	assert.NotEqual(t, hash1, hash2, "hashes must be salted")
	assert.True(t, h.Verify("wonderland", hash1))
	assert.True(t, h.Verify("wonderland", hash2))
	assert.False(t, h.Verify("Wonderland", hash1))
	assert.False(t, h.Verify("", hash1))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret", ""))
}

func TestBcryptHasher_TooLong(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	t.Parallel()
	for _, cost := range []int{0, -1, bcrypt.MaxCost + 1} {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(cost).cost)
	}
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
