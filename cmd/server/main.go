package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/OmkarKathile007/ResQ-Bridge/docs" // swagger docs

	"github.com/OmkarKathile007/ResQ-Bridge/internal/api"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/service"
	mongoinfra "github.com/OmkarKathile007/ResQ-Bridge/internal/infrastructure/db/mongo"
	redisinfra "github.com/OmkarKathile007/ResQ-Bridge/internal/infrastructure/db/redis"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/infrastructure/queue"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/pkg/config"
	"github.com/OmkarKathile007/ResQ-Bridge/pkg/logger"
)

// @title ResQ-Bridge API
// @version 1.0
// @description Food donation platform with stateless JWT authentication and role-based access control.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	userRepo := mongoinfra.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// Audit events flow through a sharded worker pool into Mongo so the
	// authentication path never blocks on audit writes.
	auditService := service.NewAuditService(mongoinfra.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.Auth.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
