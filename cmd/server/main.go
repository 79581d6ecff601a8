package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/praktyka/records-api/docs"
	"github.com/praktyka/records-api/internal/api"
	"github.com/praktyka/records-api/internal/core/token"
	"github.com/praktyka/records-api/internal/infrastructure/config"
	mongodb "github.com/praktyka/records-api/internal/infrastructure/db/mongo"
	"github.com/praktyka/records-api/pkg/logger"
)

// @title           Records API
// @version         1.0
// @description     Record-management backend: accounts, clients, services and contracts.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger not configured yet; write straight to stderr
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// The unique email index must exist before the first registration.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("create user indexes")
	}

	tokens, err := token.NewManager(cfg.JWTSecret, token.DefaultTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("configure token signing")
	}

	e := api.NewRouter(db, tokens, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
