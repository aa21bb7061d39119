package models

import (
	"time"

	"github.com/google/uuid"
)

// CrimeJournal represents a row of the crime_journal table.
// ProfileID references profile.id but is not enforced by the schema.
type CrimeJournal struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	DateCrime   time.Time `json:"date_crime" db:"date_crime"`
	IsClosed    bool      `json:"is_closed" db:"is_closed"`
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
}
