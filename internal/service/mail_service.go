package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/mail-order-backend/internal/mailer"
	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
)

var (
	ErrMissingOrderFields   = errors.New("missing name, address or items")
	ErrMissingContactFields = errors.New("missing contact fields")

	// ErrMalformedItems is returned when items is present but is not a list
	// of objects. It is a formatting failure, not a validation one.
	ErrMalformedItems = errors.New("order items are not a list of objects")
)

// Sender delivers a formatted email.
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// MailService turns website submissions into emails for the site operator.
// It holds no per-request state and is safe for concurrent use.
type MailService struct {
	sender   Sender
	receiver string
	log      *slog.Logger
}

// NewMailService creates a service that sends every submission to receiver.
func NewMailService(sender Sender, receiver string, log *slog.Logger) *MailService {
	return &MailService{
		sender:   sender,
		receiver: receiver,
		log:      log,
	}
}

// SendOrder validates, formats and emails an order.
func (s *MailService) SendOrder(ctx context.Context, req models.OrderRequest) error {
	if !hasOrderFields(req) {
		return ErrMissingOrderFields
	}
	if req.Items.Malformed {
		return fmt.Errorf("format order %q: %w", req.ID.String(), ErrMalformedItems)
	}

	order := ResolveOrder(req)
	subject, body := FormatOrderEmail(order)

	if err := s.send(ctx, subject, body); err != nil {
		return fmt.Errorf("send order %q: %w", order.ID, err)
	}

	s.log.Info("order emailed", "order_id", order.ID, "items_count", len(order.Items))
	return nil
}

// SendContact validates, formats and emails a contact message.
func (s *MailService) SendContact(ctx context.Context, req models.ContactRequest) error {
	if !hasContactFields(req) {
		return ErrMissingContactFields
	}

	subject, body := FormatContactEmail(ResolveContact(req))

	if err := s.send(ctx, subject, body); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}

	s.log.Info("contact message emailed")
	return nil
}

func (s *MailService) send(ctx context.Context, subject, body string) error {
	return s.sender.Send(ctx, mailer.Message{
		To:      s.receiver,
		Subject: subject,
		Body:    body,
	})
}
