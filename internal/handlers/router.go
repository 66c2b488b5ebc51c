package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/mail-order-backend/internal/middleware"
	"github.com/Lixing-Zhang/mail-order-backend/internal/service"
)

// requestTimeout bounds a whole request; it is longer than the SMTP session
// timeout so a slow relay still gets its answer back to the client.
const requestTimeout = 60 * time.Second

// NewRouter wires the middleware stack and all endpoints.
func NewRouter(mailService *service.MailService, log *slog.Logger) http.Handler {
	healthHandler := NewHealthHandler(log)
	orderHandler := NewOrderHandler(mailService, log)
	contactHandler := NewContactHandler(mailService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	// Any origin may submit; there are no credentials to protect.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", healthHandler.ServeHTTP)
	r.Get("/health", healthHandler.ServeHTTP)

	r.Post("/send-order", orderHandler.SendOrder)
	r.Post("/send-contact", contactHandler.SendContact)

	return r
}
