package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nameid/nameid/config"
	"github.com/nameid/nameid/internal/adapters/devverify"
	"github.com/nameid/nameid/internal/adapters/namecoin"
	"github.com/nameid/nameid/internal/adapters/namecoind"
	"github.com/nameid/nameid/internal/adapters/openid"
	redisstore "github.com/nameid/nameid/internal/adapters/redis"
	"github.com/nameid/nameid/internal/data"
	"github.com/nameid/nameid/internal/ports"
	"github.com/nameid/nameid/internal/service"
)

// ServiceDeps carries the shared infrastructure services are built from.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB // nil when auditing is disabled
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// Services is the wired service container handed to the HTTP layer.
type Services struct {
	Dispatch *service.DispatchService
	Sessions ports.SessionStore
	Audit    ports.LoginAuditRepository // nil when auditing is disabled
}

// NewServices wires adapters and services from configuration.
func NewServices(deps *ServiceDeps) (*Services, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	registry, err := namecoind.NewClient(namecoind.Config{
		URL:      cfg.Registry.URL,
		User:     cfg.Registry.User,
		Password: cfg.Registry.Password,
		Timeout:  cfg.Registry.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build registry client: %w", err)
	}

	verifier, err := buildVerifier(cfg, logger)
	if err != nil {
		return nil, err
	}

	engine, err := openid.NewEngine(openid.Config{
		Endpoint: cfg.HTTP.BaseURL,
		Secret:   []byte(cfg.Auth.AssocSecret),
	})
	if err != nil {
		return nil, fmt.Errorf("build protocol engine: %w", err)
	}

	var audit ports.LoginAuditRepository
	if deps.DB != nil {
		audit = &data.LoginAuditRepo{DB: deps.DB}
	}

	resolver := service.NewResolverService(registry)
	auth := service.NewAuthService(service.AuthServiceOptions{
		Resolver: resolver,
		Verifier: verifier,
		Audit:    audit,
		Logger:   logger,
		BaseURL:  cfg.HTTP.BaseURL,
	})
	dispatch := service.NewDispatchService(service.DispatchServiceOptions{
		Resolver:    resolver,
		Auth:        auth,
		Engine:      engine,
		Logger:      logger,
		BaseURL:     cfg.HTTP.BaseURL,
		NonceLength: cfg.Auth.NonceLength,
	})

	return &Services{
		Dispatch: dispatch,
		Sessions: redisstore.NewSessionStore(deps.RedisClient),
		Audit:    audit,
	}, nil
}

// buildVerifier selects the signature verification backend.
func buildVerifier(cfg *config.AppConfig, logger *slog.Logger) (ports.SignatureVerifier, error) {
	switch cfg.Auth.Mode {
	case config.VerifyModeMock:
		logger.Warn("using mock signature verification; logins are not authenticated")
		return devverify.NewVerifier(), nil
	case config.VerifyModeNamecoin:
		return namecoin.NewVerifier(), nil
	default:
		return nil, fmt.Errorf("unknown verify mode %q", cfg.Auth.Mode)
	}
}
