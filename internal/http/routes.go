package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nameid/nameid/internal/ports"
	"github.com/nameid/nameid/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Dispatch *service.DispatchService
	Sessions ports.SessionStore
	Audit    ports.LoginAuditRepository // optional

	// Endpoint is the provider's public base URL, rendered into pages and
	// discovery documents.
	Endpoint     string
	CookieDomain string
	SessionTTL   time.Duration
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewTemplateRenderer(logger)
	if err != nil {
		return nil, err
	}

	provider := &ProviderHandlers{
		Dispatch:     services.Dispatch,
		Sessions:     services.Sessions,
		Renderer:     renderer,
		Endpoint:     services.Endpoint,
		CookieDomain: services.CookieDomain,
		SessionTTL:   services.SessionTTL,
		Logger:       logger,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Audit != nil {
		auditHandlers := &AuditHandlers{Repo: services.Audit}
		mux.HandleFunc("GET /api/login-attempts", auditHandlers.ListRecent)
	}

	// The provider speaks on a single endpoint; every parameter set is one
	// dispatch. GET and POST are both accepted.
	mux.HandleFunc("GET /{$}", provider.Handle)
	mux.HandleFunc("POST /{$}", provider.Handle)

	handler := Logging(logger)(Recover(logger)(mux))
	return handler, nil
}
