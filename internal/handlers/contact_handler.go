package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
	"github.com/Lixing-Zhang/mail-order-backend/internal/service"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	mailService *service.MailService
	log         *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(mailService *service.MailService, log *slog.Logger) *ContactHandler {
	return &ContactHandler{
		mailService: mailService,
		log:         log,
	}
}

// SendContact handles POST /send-contact
func (h *ContactHandler) SendContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := decodeJSONObject(r, &req); err != nil {
		WriteResult(w, http.StatusBadRequest, "JSON body required", h.log)
		return
	}

	if err := h.mailService.SendContact(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingContactFields) {
			WriteResult(w, http.StatusBadRequest, "Missing fields", h.log)
			return
		}

		h.log.Error("failed to send contact email", "error", err)
		WriteResult(w, http.StatusInternalServerError, "Failed to send message", h.log)
		return
	}

	WriteResult(w, http.StatusOK, "Message sent successfully", h.log)
}
