package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	require.True(t, CheckPassword("s3cret-password", hash))
	require.False(t, CheckPassword("wrong-password", hash))
	require.False(t, CheckPassword("s3cret-password", "not-a-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(16)
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := GenerateRandomToken(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerateVerificationToken(t *testing.T) {
	token, err := GenerateVerificationToken()
	require.NoError(t, err)
	require.Len(t, token, 32)
}
