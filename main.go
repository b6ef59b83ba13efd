package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelpms/config"
	"hotelpms/jobs"
	"hotelpms/routes"
	"hotelpms/services"
	"hotelpms/services/logger"
	"hotelpms/services/notification"

	"github.com/rs/zerolog/log"
)

// @title Hotel PMS API
// @version 1.0
// @description Reservations, room availability and housekeeping for the front desk.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	appLogger := logger.NewZerologLogger(logger.ParseLevel(cfg.LogLevel), cfg.Env == "dev")

	app, err := config.InitApp(cfg, appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize app")
	}

	notifier := notification.NewMelodyService(app.Melody)
	cache := services.NewCache(app.Redis, cfg.CacheTTL, appLogger)
	desk := services.NewFrontDesk(services.FrontDeskOptions{
		DB:                   app.DB,
		Cache:                cache,
		Notifier:             notifier,
		Logger:               appLogger,
		CleaningMinutes:      cfg.CleaningTaskMinutes,
		RepriceAtCurrentRate: cfg.RepriceAtCurrentRate,
	})

	digest := jobs.DigestJob{
		Reporter: desk.Reports,
		Notifier: notifier,
		Logger:   appLogger,
		Location: cfg.Location(),
	}
	if err := jobs.InitCronJobs(app.Cron, cfg.DigestCron, digest); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cron jobs")
	}

	config.InitWebSocket(app.Router, app.Melody, appLogger)
	routes.SetupRoutes(app.Router, desk, cfg.JWTSecret, cfg.Location())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Info("Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	<-app.Cron.Stop().Done()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown: %v", err)
	}
	_ = app.Melody.Close()
	if app.Redis != nil {
		_ = app.Redis.Close()
	}
}
