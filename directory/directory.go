package directory

import (
	"golang.org/x/crypto/bcrypt"
)

// Role represents a portal user's role
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known portal roles
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string `json:"id,omitempty"`    // Unique identifier for the user
	Email        string `json:"email,omitempty"` // User's email address
	Name         string `json:"name,omitempty"`  // Display name of the user
	Role         Role   `json:"role,omitempty"`  // Portal role (patient, doctor, admin)
	PasswordHash string `json:"-"`               // Hashed version of the user's password - never serialize
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword checks a plaintext password against the user's stored hash
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}
