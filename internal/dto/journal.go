package dto

import (
	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/models"
)

// Body of POST /journal and PUT /journal/{id}.
// DateCrime is additionally checked by validation.CheckCrimeDate.
type CreateCrimeJournalRequest struct {
	Description string    `json:"description" validate:"required,min=4"`
	DateCrime   *Date     `json:"dateCrime"`
	IsClosed    *bool     `json:"isClosed" validate:"required"`
	ProfileID   uuid.UUID `json:"profileId" validate:"required"`
}

// CrimeJournalResponse keeps the snake_case profile_id of the original API.
type CrimeJournalResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	DateCrime   Date      `json:"dateCrime"`
	IsClosed    bool      `json:"isClosed"`
	ProfileID   uuid.UUID `json:"profile_id"`
}

func NewCrimeJournalResponse(j models.CrimeJournal) CrimeJournalResponse {
	return CrimeJournalResponse{
		ID:          j.ID,
		Description: j.Description,
		DateCrime:   NewDate(j.DateCrime),
		IsClosed:    j.IsClosed,
		ProfileID:   j.ProfileID,
	}
}

func NewCrimeJournalResponses(entries []models.CrimeJournal) []CrimeJournalResponse {
	out := make([]CrimeJournalResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewCrimeJournalResponse(e))
	}
	return out
}
