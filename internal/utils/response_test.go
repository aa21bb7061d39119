package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSONResponse(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteErrorResponse(rec, http.StatusInternalServerError, "Internal server error", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestWriteValidationResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteValidationResponse(rec, "login must not be empty", "email must not be empty")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var got []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"login must not be empty", "email must not be empty"}, got)

	rec = httptest.NewRecorder()
	WriteValidationResponse(rec)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestWriteTextResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteTextResponse(rec, http.StatusNotFound, "entry with ID x not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "entry with ID x not found", rec.Body.String())
}
