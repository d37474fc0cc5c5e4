package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/tripcraft/internal/auth"
	"github.com/mmynk/tripcraft/internal/config"
	"github.com/mmynk/tripcraft/internal/holiday"
	"github.com/mmynk/tripcraft/internal/server"
	"github.com/mmynk/tripcraft/internal/service"
	"github.com/mmynk/tripcraft/internal/storage/sqlite"
	"github.com/mmynk/tripcraft/internal/translate"
	"github.com/mmynk/tripcraft/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	logging.Setup()
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.Database.Path, cfg.Database.PoolSize, cfg.Database.MaxOverflow)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	translator, err := translate.NewService(nil)
	if err != nil {
		logger.Error("Failed to initialize translation service", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := service.NewAuthService(authenticator, jwtManager, logger)
	worldSvc := service.NewWorldService(store, translator, logger)
	planSvc := service.NewPlanService(store, worldSvc, holiday.NewCalendar(), translator, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.New(authSvc, planSvc, worldSvc, jwtManager, translator, cfg.Server, cfg.RateLimit, logger).Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
