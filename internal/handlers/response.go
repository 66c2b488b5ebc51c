package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteResult writes the {ok, message} body used by the submission endpoints.
// ok is derived from the status code.
func WriteResult(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, models.Result{
		OK:      status < http.StatusBadRequest,
		Message: message,
	}, logger)
}
