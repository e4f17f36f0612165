package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nameid/nameid/internal/bootstrap"
	"github.com/nameid/nameid/internal/data"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if err = bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting identity provider",
		"base_url", cfg.HTTP.BaseURL,
		"verify_mode", cfg.Auth.Mode,
		"audit_enabled", cfg.Postgres.Enabled,
		"dev", cfg.IsDev)

	redisClient, err := bootstrap.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	deps := &bootstrap.ServiceDeps{
		Config:      &cfg,
		RedisClient: redisClient,
		Logger:      logger,
	}

	if cfg.Postgres.Enabled {
		db, dbErr := bootstrap.ConnectDB(cfg.Postgres, logger)
		if dbErr != nil {
			return fmt.Errorf("connect db: %w", dbErr)
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close database failed", "error", cerr)
			}
		}()

		auditRepo := &data.LoginAuditRepo{DB: db}
		if schemaErr := auditRepo.EnsureSchema(ctx); schemaErr != nil {
			return fmt.Errorf("ensure audit schema: %w", schemaErr)
		}
		deps.DB = db
	}

	services, err := bootstrap.NewServices(deps)
	if err != nil {
		return err
	}

	handler, err := bootstrap.BuildRouter(&cfg, services, logger)
	if err != nil {
		return err
	}

	return bootstrap.RunServer(ctx, cfg.HTTP.Addr, handler, logger)
}
