// Package form implements login form field validation and the per-field
// error/touched bookkeeping that gates when errors become visible.
package form

import (
	"strings"
	"unicode/utf8"
)

// Field names, matching the wire names of the login request
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

const minPasswordLength = 6

// User-facing validation messages
const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
)

// ValidateField checks a single field's value against its rule set and
// returns a user-facing error message, or "" when the value is valid.
// Unknown field names validate clean.
func ValidateField(name, value string) string {
	switch name {
	case FieldUsername:
		if strings.TrimSpace(value) == "" {
			return MsgEmailRequired
		}
		if !isValidEmail(value) {
			return MsgEmailInvalid
		}
	case FieldPassword:
		if value == "" {
			return MsgPasswordRequired
		}
		if utf8.RuneCountInString(value) < minPasswordLength {
			return MsgPasswordTooShort
		}
	}
	return ""
}

// ValidateForm runs every field rule and returns only the fields that
// failed.
func ValidateForm(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, name := range []string{FieldUsername, FieldPassword} {
		if msg := ValidateField(name, values[name]); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

// isValidEmail checks the local@domain.tld shape: no whitespace, one @
// with a non-empty local part, and a dot inside the domain with at
// least one character on each side.
func isValidEmail(email string) bool {
	if strings.ContainsAny(email, " \t\n\r") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	if len(domain) < 3 {
		return false
	}
	return strings.Contains(domain[1:len(domain)-1], ".")
}
