package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"catalog/config"
	"catalog/controllers"
	"catalog/database"
	"catalog/repository"
	"catalog/routes"
	"catalog/service"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := config.LoadEnv(); err != nil {
		logger.Fatal().Err(err).Msg("failed to load .env")
	}
	cfg, err := config.Get()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger = newLogger(cfg)

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	products := database.ProductCollection(client, cfg)
	if err := database.EnsureIndexes(ctx, products); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}

	productService := service.NewProductService(repository.NewProductRepository(products), logger)
	stockService := service.NewStockService(repository.NewStockRepository(products), logger)

	if !strings.EqualFold(cfg.Log.Format, "console") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.New(logger,
		controllers.NewProductController(productService),
		controllers.NewStockController(stockService),
		controllers.NewHealthController(func(ctx context.Context) error {
			return database.Ping(ctx, client)
		}),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			// One operation so the server drains before the client goes away.
			"http+mongo": func(ctx context.Context) error {
				logger.Info().Msg("shutting down")
				if err := srv.Shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("HTTP server shutdown failed")
				}
				return client.Disconnect(ctx)
			},
		},
	)

	exitCode := <-wait
	logger.Info().Int("code", exitCode).Msg("exited")
	os.Exit(exitCode)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if strings.EqualFold(cfg.Log.Format, "console") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
