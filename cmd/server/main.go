// Package main is the entry point for the trip search service.
//
//	@title						Flight Trip Search API
//	@version					1.0.0
//	@description				A flight trip search service that enumerates one-way and round-trip itineraries over a flight catalog.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-search/flight-trip-search-system/docs"

	"github.com/trip-search/flight-trip-search-system/internal/adapter/catalog/csvfile"
	"github.com/trip-search/flight-trip-search-system/internal/adapter/catalog/remote"
	triphttp "github.com/trip-search/flight-trip-search-system/internal/adapter/http"
	"github.com/trip-search/flight-trip-search-system/internal/adapter/http/middleware"
	"github.com/trip-search/flight-trip-search-system/internal/config"
	"github.com/trip-search/flight-trip-search-system/internal/domain"
	"github.com/trip-search/flight-trip-search-system/internal/infrastructure/logger"
	"github.com/trip-search/flight-trip-search-system/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log.Logger = logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-search",
	}).Logger
}

// setupRoutes wires the catalog, use case and handler into the Echo instance.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	var catalog domain.FlightCatalog
	if cfg.UseRemoteCatalog() {
		catalog = remote.New(cfg.Catalog.URL)
	} else {
		catalog = csvfile.New(cfg.Catalog.Path)
	}
	log.Info().Str("catalog", catalog.Name()).Msg("Flight catalog configured")

	tripUseCase := usecase.NewTripSearchUseCase(catalog, nil)

	tripHandler := triphttp.NewTripHandler(tripUseCase, triphttp.LayoverDefaults{
		Min: cfg.Search.MinLayover,
		Max: cfg.Search.MaxLayover,
	})

	triphttp.RegisterRoutes(e, tripHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
