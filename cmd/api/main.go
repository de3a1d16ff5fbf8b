package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/api"
	"github.com/hrmsystem/hrm-api/internal/api/handler"
	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
	"github.com/hrmsystem/hrm-api/internal/core/service"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/config"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db/redis"
	"github.com/hrmsystem/hrm-api/pkg/logger"
)

// @title HRM API
// @version 1.0
// @description Human resources backend: accounts, departments, positions, employees, leaves, licenses, payrolls, performance reviews and reviewers.
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT with the Bearer prefix.

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := zerolog.New(os.Stderr)
		log.Fatal().Err(err).Msg("hrm-api stopped")
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
		File:   cfg.LogFile,
	})

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}()

	probes := map[string]handler.Pinger{}
	if store.Ping != nil {
		probes[cfg.Store.Driver] = handler.PingFunc(store.Ping)
	}

	var limiter ports.SignInLimiter = service.NopLimiter{}
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = redis.NewSignInLimiter(client, cfg.Redis.SignInMaxAttempts, cfg.Redis.SignInLockout)
		probes["redis"] = handler.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sign-in throttle enabled")
	}

	hasher := service.NewBcryptHasher(cfg.SaltRounds)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	services := service.New(store.Repos, service.Deps{Hasher: hasher, Tokens: tokens, Limiter: limiter}, log)

	if err := service.EnsureIdentities(ctx, store.Repos.Users, hasher, log,
		service.SeedIdentity{Name: "Admin", Lastname: "Admin", Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword, Role: domain.RoleAdmin},
		service.SeedIdentity{Name: "Moderator", Lastname: "Moderator", Email: cfg.Seed.ModeratorEmail, Password: cfg.Seed.ModeratorPassword, Role: domain.RoleModerator},
	); err != nil {
		return err
	}

	e := api.NewRouter(api.Options{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		BodyLimit:   cfg.HTTP.BodyLimit,
		RateLimit:   cfg.HTTP.RateLimit,
	}, api.Deps{
		Services:   services,
		Identities: store.Repos.Users,
		Tokens:     tokens,
		Probes:     probes,
		Logger:     log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("hrm-api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
