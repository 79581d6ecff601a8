package domain

import "time"

// User models an account holder. PasswordHash holds the bcrypt digest and
// is never serialized; transport layers expose the public fields only.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	HasCompany   bool      `json:"hasCompany"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
