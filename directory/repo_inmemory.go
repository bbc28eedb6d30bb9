package directory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	apperrors "github.com/instamd/portal-auth/internal/errors"
)

// InMemoryRepo is an in-memory implementation of Repo, keyed by
// lower-cased email.
type InMemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewInMemoryRepo creates a new empty in-memory user repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		users: make(map[string]User),
	}
}

// NewSeededRepo creates an in-memory repository pre-populated with the
// demo accounts. This is a stand-in for a real identity provider; swap
// the Repo implementation to integrate one.
func NewSeededRepo() (*InMemoryRepo, error) {
	repo := NewInMemoryRepo()

	seed := []struct {
		email    string
		password string
		name     string
		role     Role
	}{
		{"test@example.com", "password123", "Test User", RolePatient},
		{"doctor@instamdinc.com", "doctor123", "Dr. Smith", RoleDoctor},
		{"admin@instamdinc.com", "admin123", "Admin User", RoleAdmin},
	}

	for i, s := range seed {
		hash, err := HashPassword(s.password)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", s.email, err)
		}
		if err := repo.Upsert(&User{
			ID:           fmt.Sprintf("%d", i+1),
			Email:        s.email,
			Name:         s.name,
			Role:         s.role,
			PasswordHash: hash,
		}); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// Upsert creates or replaces a user
func (r *InMemoryRepo) Upsert(user *User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	if user.Email == "" {
		return fmt.Errorf("email is required")
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	r.users[strings.ToLower(user.Email)] = *user
	return nil
}

// GetByEmail retrieves a user, matching the email case-insensitively
func (r *InMemoryRepo) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// Delete removes a user; deleting an absent user is not an error
func (r *InMemoryRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, strings.ToLower(email))
	return nil
}
