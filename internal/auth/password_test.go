package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(DefaultAlgorithm, password)

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)
	require.Len(t, hash, 64, "sha256 digest should be 64 hex characters")
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	// Pusty lub brakujący parametr password jest traktowany jak pusty string.
	hash, err := HashPassword(DefaultAlgorithm, "")
	require.NoError(t, err)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hash)
}

func TestHashPassword_UnknownAlgorithm(t *testing.T) {
	_, err := HashPassword("md5", "password")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestHashPassword_AllAlgorithms(t *testing.T) {
	for _, algorithm := range []string{"sha256", "sha512", "sha3-256"} {
		hash, err := HashPassword(algorithm, "password")
		require.NoError(t, err, algorithm)
		require.NotEmpty(t, hash, algorithm)

		require.True(t, CheckPasswordHash(algorithm, "password", hash), algorithm)
		require.False(t, CheckPasswordHash(algorithm, "wrongPassword", hash), algorithm)
	}
}

func TestCheckPasswordHash(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(DefaultAlgorithm, password)
	require.NoError(t, err)

	match := CheckPasswordHash(DefaultAlgorithm, password, hash)
	require.True(t, match, "Password should match the hash")

	match = CheckPasswordHash(DefaultAlgorithm, "wrongPassword", hash)
	require.False(t, match, "Wrong password should not match the hash")

	match = CheckPasswordHash("md5", password, hash)
	require.False(t, match, "Unknown algorithm should never match")
}
