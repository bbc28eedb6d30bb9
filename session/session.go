// Package session owns the client-held proof of authentication: an
// opaque token plus the user profile returned at login.
//
// The stored session is the sole authority on "is a user logged in" -
// there is no server-side session validation. That is a deliberate
// trust-boundary simplification, not an omission.
package session

// Profile is the user identity returned by the authentication service.
// It is immutable once received and never re-fetched.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the credential issued on a successful login
type Session struct {
	Token string  // Opaque signed token, stored and forwarded as-is
	User  Profile // Profile from the authentication response
}
