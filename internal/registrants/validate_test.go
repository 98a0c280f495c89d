package registrants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := ValidateName("  Jane Smith  ")
		require.NoError(t, err)
		require.Equal(t, "Jane Smith", name)
	})

	t.Run("rejects names shorter than two characters", func(t *testing.T) {
		_, err := ValidateName("J")
		require.Error(t, err)

		_, err = ValidateName("   ")
		require.Error(t, err)
	})

	t.Run("rejects names longer than fifty characters", func(t *testing.T) {
		_, err := ValidateName(strings.Repeat("a", 51))
		require.Error(t, err)

		name, err := ValidateName(strings.Repeat("a", 50))
		require.NoError(t, err)
		require.Len(t, name, 50)
	})

	t.Run("counts multibyte names in runes, not bytes", func(t *testing.T) {
		// 50 CJK characters is 150 bytes but still a valid name.
		name, err := ValidateName(strings.Repeat("田", 50))
		require.NoError(t, err)
		require.Equal(t, strings.Repeat("田", 50), name)

		_, err = ValidateName(strings.Repeat("田", 51))
		require.Error(t, err)

		_, err = ValidateName("田")
		require.Error(t, err)
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"jane@example.com",
		"jane.smith@example.co",
		"jane-smith@mail.example.org",
		"jane_smith@example.io",
	}
	for _, email := range valid {
		require.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"jane",
		"jane@",
		"@example.com",
		"jane@example",
		"jane smith@example.com",
	}
	for _, email := range invalid {
		require.Error(t, ValidateEmail(email), email)
	}
}
