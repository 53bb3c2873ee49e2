package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+6281234567890",
		"6281234567890",
		"+1 (555) 123-4567",
	}
	for _, p := range valid {
		require.True(t, ValidatePhone(p), p)
	}

	invalid := []string{
		"",
		"abc",
		"081234567890",
		"+0123456",
	}
	for _, p := range invalid {
		require.False(t, ValidatePhone(p), p)
	}
}
