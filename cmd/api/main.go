// Command api runs the Travel Planner HTTP server.
//
// It aggregates geocoding, weather forecast, and image search results from
// external services into trip records held in an in-memory store.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/akarrer/travel-planner/internal/config"
	"github.com/akarrer/travel-planner/internal/handler"
	"github.com/akarrer/travel-planner/internal/middleware"
	"github.com/akarrer/travel-planner/internal/provider"
	"github.com/akarrer/travel-planner/internal/repo"
	"github.com/akarrer/travel-planner/internal/service"
)

const limiterBurst = 5

func main() {
	// A missing .env file is fine; environment variables may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	geo, err := provider.NewGeoClient(cfg.GeoURL, cfg.GeoUsername, newLimiter(cfg.ProviderRPS))
	if err != nil {
		log.Error("failed to build geo client", "error", err)
		os.Exit(1)
	}
	weather, err := provider.NewWeatherClient(cfg.WeatherURL, cfg.WeatherAPIKey, newLimiter(cfg.ProviderRPS))
	if err != nil {
		log.Error("failed to build weather client", "error", err)
		os.Exit(1)
	}
	image, err := provider.NewImageClient(cfg.ImageURL, cfg.ImageAPIKey, newLimiter(cfg.ProviderRPS))
	if err != nil {
		log.Error("failed to build image client", "error", err)
		os.Exit(1)
	}

	store := repo.NewMemoryTripStore()
	planner := service.NewPlanner(geo, weather, image, time.Now, log)
	srv := handler.NewServer(planner, store, geo, weather, image)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(middleware.DefaultMaxBodyBytes))
	r.Mount("/", srv.Routes())

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newLimiter builds a per-provider rate limiter. Each external service gets
// its own limiter so a burst against one does not starve the others.
func newLimiter(rps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), limiterBurst)
}
