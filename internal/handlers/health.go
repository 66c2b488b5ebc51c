package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// ServeHTTP always reports the backend as running. It does not probe the
// mail transport.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.Status{
		Status:  "ok",
		Message: "Backend is running",
	}, h.logger)
}
