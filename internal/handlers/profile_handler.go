package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"CRIME_JOURNAL_BACK-END/internal/dto"
	"CRIME_JOURNAL_BACK-END/internal/utils"
	"CRIME_JOURNAL_BACK-END/internal/validation"
)

// ProfileService is what ProfileHandler needs from the profile pipeline.
type ProfileService interface {
	Create(ctx context.Context, req dto.CreateProfileRequest) (dto.ProfileResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (dto.ProfileResponse, error)
	GetAll(ctx context.Context) ([]dto.ProfileResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateProfileRequest) (dto.ProfileResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileHandler handles /profile requests
type ProfileHandler struct {
	profiles  ProfileService
	validator *validation.Validator
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profiles ProfileService, v *validation.Validator) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, validator: v}
}

// Get godoc
// @Summary      Get profile
// @Description  Returns a single profile by id
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "Profile ID (UUID)"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {array}   string
// @Failure      404  {string}  string  "profile with ID ... not found"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /profile/{id} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}

	resp, err := h.profiles.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// List godoc
// @Summary      List profiles
// @Description  Returns every profile; an empty list when there are none
// @Tags         profile
// @Produce      json
// @Success      200  {array}   dto.ProfileResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /profile [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.profiles.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Create godoc
// @Summary      Create profile
// @Description  Registers a profile; login and email must be unique
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.CreateProfileRequest  true  "Profile payload"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {array}   string
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /profile [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.profiles.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Update godoc
// @Summary      Update profile
// @Description  Overwrites login, password and email of an existing profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Profile ID (UUID)"
// @Param        payload  body      dto.CreateProfileRequest  true  "Profile payload"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {array}   string
// @Failure      404      {string}  string
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /profile/{id} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.profiles.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete profile
// @Tags         profile
// @Param        id   path  string  true  "Profile ID (UUID)"
// @Success      200
// @Failure      400  {array}   string
// @Failure      404  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /profile/{id} [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}

	if err := h.profiles.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ProfileHandler) decode(w http.ResponseWriter, r *http.Request) (dto.CreateProfileRequest, bool) {
	var req dto.CreateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return req, false
	}
	if err := h.validator.Profile(&req); err != nil {
		writeValidationError(w, r, err)
		return req, false
	}
	return req, true
}
