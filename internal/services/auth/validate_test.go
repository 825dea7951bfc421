package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	require.NoError(t, ValidateRegistration("alice", "longenough", "longenough"))

	err := ValidateRegistration("alice", "short", "short")
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least 8 characters")

	err = ValidateRegistration("alice", "longenough", "different")
	require.Error(t, err)
	require.Contains(t, err.Error(), "do not match")

	err = ValidateRegistration("", "longenough", "longenough")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Username is required")

	err = ValidateRegistration("   ", "longenough", "longenough")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Username is required")
}

func TestValidateRegistrationReportsAllViolations(t *testing.T) {
	err := ValidateRegistration("", "short", "other")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Username is required")
	require.Contains(t, err.Error(), "at least 8 characters")
	require.Contains(t, err.Error(), "do not match")
}
