// Package app assembles the store, services and HTTP server into a running
// process.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/agrisense/agrisense/internal/http"
	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/internal/store/drivers/sqlite"
	"github.com/agrisense/agrisense/pkg/jwtx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application owns every long-lived dependency of the process.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.Signer

	otpService          *service.OTPService
	authService         *service.AuthService
	tokenService        *service.TokenService
	registrationService *service.RegistrationService
	recordService       *service.RecordService
	reportService       *service.ReportService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New builds an Application from cfg with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	app.db = db

	signer, err := jwtx.NewSigner(cfg.JWTSeed)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize signing key: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the server and blocks until shutdown is requested or the
// server fails.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("agrisense starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"key_id", app.signer.KeyID(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down agrisense")

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

	app.logger.Info("agrisense stopped")
	return nil
}

func (app *Application) initServices() {
	app.tokenService = service.NewTokenService(app.db, app.signer, app.cfg.Issuer)
	app.otpService = service.NewOTPService(app.db, service.LogSMSSender{})
	app.authService = service.NewAuthService(app.db, service.NewResolver(app.db), app.tokenService)
	app.registrationService = service.NewRegistrationService(app.db)
	app.recordService = service.NewRecordService(app.db)
	app.reportService = service.NewReportService(app.db)
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.OTPRetention,
	)
}

func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifier(app.signer.PublicKey(), app.cfg.Issuer)

	router := httpapi.NewRouter(verifier, app.db, app.logger)
	router.OTPService = app.otpService
	router.AuthService = app.authService
	router.TokenService = app.tokenService
	router.RegistrationService = app.registrationService
	router.RecordService = app.recordService
	router.ReportService = app.reportService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
