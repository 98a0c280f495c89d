package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	require.True(t, CheckPassword("secret", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("secret", "not-a-hash"))
}

func TestHashPasswordRejectsOverlongInput(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("a", 73))
	require.Error(t, err)

	hash, err := HashPassword(strings.Repeat("a", 72))
	require.NoError(t, err)
	require.True(t, CheckPassword(strings.Repeat("a", 72), hash))
}
