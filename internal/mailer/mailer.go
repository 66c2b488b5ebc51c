// Package mailer delivers plain-text emails through SMTP or a transactional
// email API. Every Send is a single attempt; nothing is retried or queued.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/mail-order-backend/internal/config"
)

var (
	ErrInvalidConfig  = errors.New("invalid mailer configuration")
	ErrInvalidMessage = errors.New("invalid message")
	ErrSendFailed     = errors.New("failed to send email")
)

// Message is a single plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Validate checks that the message can be handed to a transport.
func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	return nil
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the sender selected by cfg.Mail.Provider.
func New(cfg *config.Config) (Sender, error) {
	switch cfg.Mail.Provider {
	case config.ProviderSMTP, "":
		return NewSMTPSender(cfg.SMTP), nil
	case config.ProviderResend:
		sender, err := NewResendSender(cfg.Resend, cfg.SMTP.From)
		if err != nil {
			return nil, err
		}
		return sender, nil
	case config.ProviderPostmark:
		sender, err := NewPostmarkSender(cfg.Postmark, cfg.SMTP.From)
		if err != nil {
			return nil, err
		}
		return sender, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
}
