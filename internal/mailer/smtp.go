package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"

	"github.com/Lixing-Zhang/mail-order-backend/internal/config"
)

const (
	defaultSMTPTimeout = 20 * time.Second
	submissionPort     = 587
)

// SMTPSender sends each message over its own SMTP connection.
// It holds no connection state and is safe for concurrent use.
type SMTPSender struct {
	cfg       config.SMTPConfig
	localName string

	// tlsConfig is the base config for STARTTLS; ServerName defaults to the host.
	tlsConfig    *tls.Config
	startTLSPort int
}

// NewSMTPSender creates an SMTP sender. Missing values are not rejected here;
// they surface as errors from Send.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	localName, err := os.Hostname()
	if err != nil || localName == "" {
		localName = "localhost"
	}

	return &SMTPSender{
		cfg:          cfg,
		localName:    localName,
		tlsConfig:    &tls.Config{MinVersion: tls.VersionTLS12},
		startTLSPort: submissionPort,
	}
}

// Send delivers msg in a single SMTP session bounded by the configured timeout.
// A context that is already done aborts before dialing; once the session
// starts it runs until it completes or the timeout expires.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := s.deliver(msg.To, s.compose(msg)); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// compose builds the MIME message.
func (s *SMTPSender) compose(msg Message) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.Host))
	m.SetDateHeader("Date", time.Now())
	m.SetBody("text/plain", msg.Body)
	return m
}

// deliver runs connect, EHLO, optional STARTTLS, AUTH, MAIL, RCPT, DATA and QUIT.
func (s *SMTPSender) deliver(to string, m *mail.Message) error {
	deadline := time.Now().Add(s.cfg.Timeout)
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	dialer := net.Dialer{Deadline: deadline}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Hello(s.localName); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}

	// StartTLS repeats EHLO over the encrypted connection.
	if s.requiresStartTLS() {
		if err := client.StartTLS(s.clientTLSConfig()); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.cfg.Username != "" {
		_, mechanisms := client.Extension("AUTH")
		auth := chooseAuth(mechanisms, s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := m.WriteTo(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("message rejected: %w", err)
	}

	// The message was accepted at end of DATA; a failed QUIT does not undo that.
	_ = client.Quit()
	return nil
}

// requiresStartTLS reports whether the session upgrades to TLS before AUTH.
// Only the submission port does.
func (s *SMTPSender) requiresStartTLS() bool {
	return s.cfg.Port == s.startTLSPort
}

// CredentialsNeedTLS reports whether the configured credentials will be
// refused because the session to a remote host is never encrypted.
func (s *SMTPSender) CredentialsNeedTLS() bool {
	return s.cfg.Username != "" && !s.requiresStartTLS() && !isLocalhost(s.cfg.Host)
}

func (s *SMTPSender) clientTLSConfig() *tls.Config {
	tc := s.tlsConfig.Clone()
	if tc == nil {
		tc = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if tc.ServerName == "" {
		tc.ServerName = s.cfg.Host
	}
	return tc
}
