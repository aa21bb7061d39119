package dto

import (
	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/models"
)

// Body of POST /profile and PUT /profile/{id}
type CreateProfileRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=8,max=50"`
	Email    string `json:"email" validate:"required,min=1,max=256"`
}

// ProfileResponse echoes the stored profile, password included.
type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	Login    string    `json:"login"`
	Password string    `json:"password"`
	Email    string    `json:"email"`
}

func NewProfileResponse(p models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       p.ID,
		Login:    p.Login,
		Password: p.Password,
		Email:    p.Email,
	}
}

func NewProfileResponses(profiles []models.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}
