package utils

import (
	"encoding/json"
	"net/http"

	"CRIME_JOURNAL_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a dto.ErrorResponse for unexpected failures
func WriteErrorResponse(w http.ResponseWriter, status int, err string, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: err, Message: message})
}

// WriteValidationResponse writes a 400 with one "field message" string per failure
func WriteValidationResponse(w http.ResponseWriter, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	WriteJSONResponse(w, http.StatusBadRequest, dto.ValidationErrorResponse(messages))
}

// WriteTextResponse writes a plain-text body, used for not-found messages
func WriteTextResponse(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
