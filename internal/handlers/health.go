package handlers

import (
	"context"
	"net/http"
	"time"

	"CRIME_JOURNAL_BACK-END/internal/dto"
	"CRIME_JOURNAL_BACK-END/internal/utils"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 3 * time.Second}
}

// HealthCheck godoc
// @Summary  Basic health check (no database)
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Router   /healthz [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck godoc
// @Summary  Process liveness
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Router   /livez [get]
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck godoc
// @Summary  Readiness, including database connectivity
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Failure  503  {object}  dto.HealthResponse
// @Router   /readyz [get]
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"db": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"db": "ok"},
	})
}

// Root handles GET / with a plain banner
func Root(w http.ResponseWriter, r *http.Request) {
	utils.WriteTextResponse(w, http.StatusOK, "Crime journal backend is running.")
}
