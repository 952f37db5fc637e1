package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("mysecretpassword")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The digest is self-contained: bcrypt can verify it with no extra state
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("mysecretpassword")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcryptCost, cost)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each digest must carry a fresh salt")
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", maxPasswordLen+1))
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("S3cret!", hash))
	assert.False(t, VerifyPassword("wrongpassword", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	// A malformed digest is a false verdict, never a panic or error
	assert.False(t, VerifyPassword("whatever", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("whatever", ""))
}
