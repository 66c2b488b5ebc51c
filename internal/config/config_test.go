package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "HOST", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL",
	"MAIL_PROVIDER", "RECEIVER_EMAIL",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM", "SMTP_TIMEOUT",
	"RESEND_API_KEY", "POSTMARK_SERVER_TOKEN", "POSTMARK_ACCOUNT_TOKEN",
	"SENTRY_DSN", "SENTRY_ENVIRONMENT",
}

// clearEnv unsets every variable Load reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 20*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, ProviderSMTP, cfg.Mail.Provider)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SMTP.From)
	assert.Empty(t, cfg.Mail.ReceiverEmail)
}

func TestLoad_SenderAndReceiverDefaultToUser(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_USER", "shop@example.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shop@example.com", cfg.SMTP.From)
	assert.Equal(t, "shop@example.com", cfg.Mail.ReceiverEmail)
	assert.Equal(t, "secret", cfg.SMTP.Password)
}

func TestLoad_ExplicitValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "user@example.com")
	t.Setenv("SMTP_FROM", "orders@example.com")
	t.Setenv("SMTP_TIMEOUT", "5s")
	t.Setenv("RECEIVER_EMAIL", "owner@example.com")
	t.Setenv("MAIL_PROVIDER", "Postmark")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "orders@example.com", cfg.SMTP.From)
	assert.Equal(t, 5*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "owner@example.com", cfg.Mail.ReceiverEmail)
	assert.Equal(t, ProviderPostmark, cfg.Mail.Provider)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: "5000"},
		Mail:     MailConfig{Provider: ProviderSMTP},
		LogLevel: "info",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Mail.Provider = "carrier-pigeon" },
			wantErr: "invalid mail provider",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:   "log level is case insensitive",
			mutate: func(c *Config) { c.LogLevel = "WARN" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
