package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"CRIME_JOURNAL_BACK-END/internal/apperror"
	"CRIME_JOURNAL_BACK-END/internal/utils"
	"CRIME_JOURNAL_BACK-END/internal/validation"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// writeServiceError translates a service failure into its HTTP response:
// validation errors become a 400 with a one-element list, missing resources
// a 404 with the bare message, anything else a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			utils.WriteValidationResponse(w, appErr.Message)
			return
		case apperror.KindNotFound:
			utils.WriteTextResponse(w, http.StatusNotFound, appErr.Message)
			return
		}
	}

	zerolog.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "")
}

// writeValidationError reports request-body validation failures, one
// "field message" string per failed constraint.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		utils.WriteValidationResponse(w, verrs.Messages()...)
		return
	}
	writeServiceError(w, r, err)
}

// decodeJSON reads a single JSON document of at most MaxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body must not exceed %d bytes", tooLarge.Limit)
		}
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// pathUUID parses the named mux path variable as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return id, nil
}
