package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pass", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, VerifyPassword(hash, "s3cret-pass"))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-horse", 4)
	require.NoError(t, err)

	err = VerifyPassword(hash, "battery-staple")
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	err := VerifyPassword("not-a-bcrypt-hash", "whatever")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrPasswordMismatch))
}

func TestHashPassword_SaltedOutputDiffers(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-input", 4)
	require.NoError(t, err)
	second, err := HashPassword("same-input", 4)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NoError(t, VerifyPassword(first, "same-input"))
	require.NoError(t, VerifyPassword(second, "same-input"))
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 99)
	require.NoError(t, err)
	require.NoError(t, VerifyPassword(hash, "pw"))
}
