// Package app wires configuration, logging, metrics, the upstream row
// source, the dashboard service and the HTTP router into a runnable server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"finboard/internal/config"
	apierrors "finboard/internal/errors"
	"finboard/internal/infrastructure"
	custommiddleware "finboard/internal/middleware"
	"finboard/internal/services"
	"finboard/internal/sheets"
	handlers "finboard/internal/transport/http"
	"finboard/pkg/contracts"
)

// Application is the main application container.
type Application struct {
	Config           *config.Config
	Logger           *slog.Logger
	Metrics          *infrastructure.Metrics
	RowSource        sheets.RowSource
	DashboardService *services.DashboardService
	Router           *chi.Mux
	Server           *http.Server
}

// NewApplication creates an application instance with all dependencies
// wired.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", contracts.AppName),
		slog.String("version", contracts.Version),
		slog.String("upstream_source", cfg.Upstream.Source),
		slog.Int("company_count", len(cfg.Companies)))

	metrics, err := infrastructure.NewMetrics(contracts.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	source, err := buildRowSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:           cfg,
		Logger:           logger,
		Metrics:          metrics,
		RowSource:        source,
		DashboardService: services.NewDashboardService(source, cfg.Companies, logger, metrics),
	}

	app.setupRouter()
	app.createServer()
	return app, nil
}

func buildRowSource(cfg *config.Config, logger *slog.Logger) (sheets.RowSource, error) {
	switch cfg.Upstream.Source {
	case sheets.KindAPI:
		source, err := sheets.NewAPISource(context.Background(), cfg.Upstream.APIKey, cfg.Upstream.SpreadsheetID, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets api source: %w", err)
		}
		return source, nil
	case sheets.KindWorkbook:
		return sheets.NewWorkbookSource(cfg.Upstream.WorkbookPath, logger), nil
	default:
		client := &http.Client{Timeout: 0} // no per-call timeout; ctx governs
		return sheets.NewHTTPSource(client, cfg.Upstream.BaseURL, cfg.Upstream.SpreadsheetID, logger), nil
	}
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))
	if a.Config.RateLimit.Enabled {
		limiter := custommiddleware.NewRateLimiter(a.Config.RateLimit.RPS, a.Config.RateLimit.Burst, a.Logger)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	dashboardHandler := handlers.NewDashboardHandler(a.DashboardService, a.Logger, errorHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Mount("/dashboard", dashboardHandler.Routes())
		r.Mount("/companies", handlers.NewCompaniesHandler(a.DashboardService).Routes())
	})

	r.Mount("/healthz", handlers.NewHealthHandler(contracts.Version).Routes())
	r.Method(http.MethodGet, "/metrics", a.Metrics.Handler())

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start begins serving; it returns when the listener stops.
func (a *Application) Start(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "http server listening",
		slog.String("addr", a.Server.Addr))

	if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server and telemetry down.
func (a *Application) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.InfoContext(shutdownCtx, "shutting down")

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := a.Metrics.Shutdown(shutdownCtx); err != nil {
		a.Logger.WarnContext(shutdownCtx, "metrics shutdown failed",
			slog.String("error", err.Error()))
	}
	return infrastructure.CloseLogFile()
}

// Run starts the server and blocks until an interrupt, then shuts down
// gracefully.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- a.Start(ctx)
	}()

	// Warm the cache in the background so the first dashboard request is
	// served from memory.
	go func() {
		if _, err := a.DashboardService.LoadAll(ctx); err != nil {
			a.Logger.WarnContext(ctx, "cache warmup failed",
				slog.String("error", err.Error()))
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	}

	return a.Stop(context.Background())
}
