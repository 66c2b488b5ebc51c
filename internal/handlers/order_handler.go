package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
	"github.com/Lixing-Zhang/mail-order-backend/internal/service"
)

// OrderHandler handles checkout submissions
type OrderHandler struct {
	mailService *service.MailService
	log         *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(mailService *service.MailService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		mailService: mailService,
		log:         log,
	}
}

// SendOrder handles POST /send-order
func (h *OrderHandler) SendOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := decodeJSONObject(r, &req); err != nil {
		WriteResult(w, http.StatusBadRequest, "JSON body required", h.log)
		return
	}

	if err := h.mailService.SendOrder(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingOrderFields) {
			WriteResult(w, http.StatusBadRequest, "Missing name, address or items", h.log)
			return
		}

		h.log.Error("failed to send order email", "error", err)
		WriteResult(w, http.StatusInternalServerError, "Failed to send email", h.log)
		return
	}

	WriteResult(w, http.StatusOK, "Order emailed successfully", h.log)
}
