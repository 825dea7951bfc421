// Package auth holds the client-side checks for the registration form.
package auth

import (
	"strings"

	"github.com/pkg/errors"
)

const minPasswordLen = 8

// ValidateRegistration checks credentials before they go to the backend.
// Every violated rule is reported, one message per line, so the user fixes
// the whole form in one pass.
func ValidateRegistration(username, password, confirm string) error {
	var msgs []string
	if strings.TrimSpace(username) == "" {
		msgs = append(msgs, "Username is required.")
	}
	if len(password) < minPasswordLen {
		msgs = append(msgs, "Password must be at least 8 characters long.")
	}
	if password != confirm {
		msgs = append(msgs, "Passwords do not match.")
	}

	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "\n"))
	}
	return nil
}
