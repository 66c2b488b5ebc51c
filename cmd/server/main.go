package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Lixing-Zhang/mail-order-backend/internal/config"
	"github.com/Lixing-Zhang/mail-order-backend/internal/handlers"
	"github.com/Lixing-Zhang/mail-order-backend/internal/mailer"
	"github.com/Lixing-Zhang/mail-order-backend/internal/service"
	"github.com/Lixing-Zhang/mail-order-backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.NewWithSentry(cfg.LogLevel, logger.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.Flush(2 * time.Second)
}

func run(cfg *config.Config, log *slog.Logger) error {
	log.Info("starting mail order backend",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"mail_provider", cfg.Mail.Provider,
	)

	if cfg.Mail.ReceiverEmail == "" {
		log.Warn("no receiver address configured; every submission will fail to send")
	}

	sender, err := mailer.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create mail sender: %w", err)
	}
	if smtpSender, ok := sender.(*mailer.SMTPSender); ok && smtpSender.CredentialsNeedTLS() {
		log.Warn("SMTP credentials are only sent over TLS; use port 587 or a local relay",
			"smtp_host", cfg.SMTP.Host,
			"smtp_port", cfg.SMTP.Port,
		)
	}

	mailService := service.NewMailService(sender, cfg.Mail.ReceiverEmail, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handlers.NewRouter(mailService, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		log.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
