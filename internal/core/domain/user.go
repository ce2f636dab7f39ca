package domain

import "time"

// User models an account in the local identity store. Only used when the
// service runs in local identity mode; in remote mode accounts live in the
// external backend.
type User struct {
	ID           string    `json:"id"`
	Phone        string    `json:"phone"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
