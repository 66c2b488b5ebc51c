package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mail providers accepted by MAIL_PROVIDER.
const (
	ProviderSMTP     = "smtp"
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
)

// Config holds all configuration for the application.
// It is loaded once at startup and passed explicitly to the components that need it.
type Config struct {
	Server   ServerConfig
	Mail     MailConfig
	SMTP     SMTPConfig
	Resend   ResendConfig
	Postmark PostmarkConfig
	Sentry   SentryConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// MailConfig selects the transport and the fixed address every submission is sent to.
type MailConfig struct {
	Provider      string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	ReceiverEmail string `env:"RECEIVER_EMAIL"`
}

type SMTPConfig struct {
	Host     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Username string        `env:"SMTP_USER"`
	Password string        `env:"SMTP_PASS"`
	From     string        `env:"SMTP_FROM"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"20s"`
}

type ResendConfig struct {
	APIKey string `env:"RESEND_API_KEY"`
}

type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}

type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// Load reads configuration from environment variables.
// A .env file in the working directory is read first if present; it never
// overrides variables already set in the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills values whose defaults depend on other settings.
func (c *Config) applyDefaults() {
	if c.SMTP.From == "" {
		c.SMTP.From = c.SMTP.Username
	}
	if c.Mail.ReceiverEmail == "" {
		c.Mail.ReceiverEmail = c.SMTP.Username
	}
	c.Mail.Provider = strings.ToLower(strings.TrimSpace(c.Mail.Provider))
}

// Validate checks if the configuration is valid.
// SMTP settings are only defaulted; a bad relay shows up as a failed send.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Mail.Provider {
	case ProviderSMTP, ProviderResend, ProviderPostmark:
	default:
		return fmt.Errorf("invalid mail provider: %s (must be smtp, resend, or postmark)", c.Mail.Provider)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}
