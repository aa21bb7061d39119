package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"CRIME_JOURNAL_BACK-END/internal/dto"
	"CRIME_JOURNAL_BACK-END/internal/utils"
	"CRIME_JOURNAL_BACK-END/internal/validation"
)

// CrimeJournalService is what CrimeJournalHandler needs from the journal pipeline.
type CrimeJournalService interface {
	Create(ctx context.Context, req dto.CreateCrimeJournalRequest) (dto.CrimeJournalResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (dto.CrimeJournalResponse, error)
	FindByDescription(ctx context.Context, query string) ([]dto.CrimeJournalResponse, error)
	GetAll(ctx context.Context) ([]dto.CrimeJournalResponse, error)
	GetByProfileID(ctx context.Context, profileID uuid.UUID) ([]dto.CrimeJournalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateCrimeJournalRequest) (dto.CrimeJournalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByProfileID(ctx context.Context, profileID uuid.UUID) error
}

// CrimeJournalHandler handles /journal requests
type CrimeJournalHandler struct {
	journal   CrimeJournalService
	validator *validation.Validator
}

// NewCrimeJournalHandler creates a new CrimeJournalHandler instance
func NewCrimeJournalHandler(journal CrimeJournalService, v *validation.Validator) *CrimeJournalHandler {
	return &CrimeJournalHandler{journal: journal, validator: v}
}

// Get godoc
// @Summary      Get journal entry
// @Tags         journal
// @Produce      json
// @Param        id   path      string  true  "Entry ID (UUID)"
// @Success      200  {object}  dto.CrimeJournalResponse
// @Failure      400  {array}   string
// @Failure      404  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /journal/{id} [get]
func (h *CrimeJournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}

	resp, err := h.journal.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Search godoc
// @Summary      Search journal entries
// @Description  Case-insensitive substring match on the description
// @Tags         journal
// @Produce      json
// @Param        query  path      string  true  "Text to look for"
// @Success      200    {array}   dto.CrimeJournalResponse
// @Failure      404    {string}  string
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /journal/search/{query} [get]
func (h *CrimeJournalHandler) Search(w http.ResponseWriter, r *http.Request) {
	resp, err := h.journal.FindByDescription(r.Context(), mux.Vars(r)["query"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// List godoc
// @Summary      List journal entries
// @Description  Returns every entry; 404 when the journal is empty
// @Tags         journal
// @Produce      json
// @Success      200  {array}   dto.CrimeJournalResponse
// @Failure      404  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /journal [get]
func (h *CrimeJournalHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.journal.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// ListByProfile godoc
// @Summary      List entries of a profile
// @Tags         journal
// @Produce      json
// @Param        profileId  path      string  true  "Profile ID (UUID)"
// @Success      200        {array}   dto.CrimeJournalResponse
// @Failure      400        {array}   string
// @Failure      404        {string}  string
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /journal/user/{profileId} [get]
func (h *CrimeJournalHandler) ListByProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}

	resp, err := h.journal.GetByProfileID(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Create godoc
// @Summary      Create journal entry
// @Description  The owning profile must exist and no identical entry may exist
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.CreateCrimeJournalRequest  true  "Entry payload"
// @Success      200      {object}  dto.CrimeJournalResponse
// @Failure      400      {array}   string
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /journal [post]
func (h *CrimeJournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.journal.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Update godoc
// @Summary      Update journal entry
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Entry ID (UUID)"
// @Param        payload  body      dto.CreateCrimeJournalRequest  true  "Entry payload"
// @Success      200      {object}  dto.CrimeJournalResponse
// @Failure      400      {array}   string
// @Failure      404      {string}  string
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /journal/{id} [put]
func (h *CrimeJournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	resp, err := h.journal.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete journal entry
// @Tags         journal
// @Param        id   path  string  true  "Entry ID (UUID)"
// @Success      200
// @Failure      400  {array}   string
// @Failure      404  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /journal/{id} [delete]
func (h *CrimeJournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}

	if err := h.journal.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteByProfile godoc
// @Summary      Delete all entries of a profile
// @Tags         journal
// @Param        profileId  path  string  true  "Profile ID (UUID)"
// @Success      200
// @Failure      400  {array}   string
// @Failure      404  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /journal/user/{profileId} [delete]
func (h *CrimeJournalHandler) DeleteByProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathUUID(r, "profileId")
	if err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return
	}

	if err := h.journal.DeleteAllByProfileID(r.Context(), profileID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *CrimeJournalHandler) decode(w http.ResponseWriter, r *http.Request) (dto.CreateCrimeJournalRequest, bool) {
	var req dto.CreateCrimeJournalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.WriteValidationResponse(w, err.Error())
		return req, false
	}
	if err := h.validator.CrimeJournal(&req); err != nil {
		writeValidationError(w, r, err)
		return req, false
	}
	return req, true
}
