package models

import "github.com/google/uuid"

// Profile represents a row of the profile table
type Profile struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Login    string    `json:"login" db:"login"`
	Password string    `json:"password" db:"password"` // stored as given
	Email    string    `json:"email" db:"email"`
}
