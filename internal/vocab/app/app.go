package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/vocab/internal/vocab/http"
	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/internal/vocab/store/drivers/sqlite"
	"github.com/aussiebroadwan/vocab/pkg/cryptox"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/jwtx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application owns every long-lived dependency of the vocab service.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	tokens  *jwtx.TokenIssuer
	metrics *httpx.Metrics

	sessionService      *service.SessionService
	wordService         *service.WordService
	progressService     *service.ProgressService
	speechService       *service.SpeechService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "vocab-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: httpx.NewMetrics("vocab"),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)
	if _, err := cryptox.Pepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	tokens, err := InitTokenIssuer(app.cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.tokens = tokens

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("vocab service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		app.housekeepingService.Stop()
		_ = app.db.Close()
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig.String())

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down vocab service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("vocab service stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.speechService = service.NewSpeechService(service.SpeechConfig{
		URLTemplate: app.cfg.SpeechURL,
		Lang:        app.cfg.SpeechLang,
		Timeout:     app.cfg.SpeechTimeout,
	})

	app.sessionService = &service.SessionService{
		Store:  app.db,
		Tokens: app.tokens,
		Events: app.metrics,
	}
	app.wordService = &service.WordService{Store: app.db, Speech: app.speechService}
	app.progressService = &service.ProgressService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens.AccessVerifier(),
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.SessionService = app.sessionService
	router.WordService = app.wordService
	router.ProgressService = app.progressService
	router.SpeechService = app.speechService
	router.CookieSecure = app.cfg.CookieSecure
	router.CORSOrigin = app.cfg.CORSOrigin
	router.RateLimits = app.cfg.RateLimits
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
