package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"academic-service/internal/config"
	"academic-service/internal/course"
	"academic-service/internal/docs"
	"academic-service/internal/events"
	"academic-service/internal/health"
	"academic-service/internal/httputil"
	"academic-service/internal/logger"
	"academic-service/internal/metrics"
	"academic-service/internal/middleware"
	"academic-service/internal/storage"
	"academic-service/internal/student"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type App struct {
	config    *config.Config
	router    chi.Router
	server    *http.Server
	logger    *slog.Logger
	store     *storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func New() *App {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses the configured handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application", BuildInfo()...)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	return NewWithConfig(cfg, slogLogger)
}

// NewWithConfig wires the application from an already loaded config.
func NewWithConfig(cfg *config.Config, slogLogger *slog.Logger) *App {
	opts := []storage.Option{storage.WithCourseCapacity(cfg.Storage.CourseCapacity)}
	if cfg.Storage.Seed {
		opts = append(opts, storage.WithSeed())
	}

	app := &App{
		config:    cfg,
		router:    chi.NewRouter(),
		logger:    slogLogger,
		store:     storage.New(opts...),
		publisher: events.NewPublisher(cfg.Events, slogLogger),
		metrics:   metrics.New(),
	}

	app.router.Use(chimiddleware.RequestID)
	app.router.Use(chimiddleware.RealIP)
	// Metrics wraps Recoverer so panics are counted as 500s
	app.router.Use(middleware.Metrics(app.metrics))
	app.router.Use(middleware.Recoverer(slogLogger))
	app.router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	app.router.NotFound(httputil.NotFound)
	app.router.MethodNotAllowed(httputil.NotFound)

	// Health and operational endpoints
	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(app.router)
	app.router.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	docs.RegisterRoutes(app.router)

	studentService := student.NewService(app.store, app.publisher, app.metrics, slogLogger)
	studentHandler := student.NewHandler(studentService, slogLogger)
	studentHandler.RegisterRoutes(app.router)

	courseService := course.NewService(app.store, app.publisher, app.metrics, slogLogger)
	courseHandler := course.NewHandler(courseService, slogLogger)
	courseHandler.RegisterRoutes(app.router)

	slogLogger.Info("application initialized successfully",
		"course_capacity", app.store.Capacity(),
		"seeded", cfg.Storage.Seed,
	)

	return app
}

// Handler exposes the fully wired router.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	var err error
	if a.server != nil {
		err = a.server.Shutdown(ctx)
	}
	if closeErr := a.publisher.Close(); closeErr != nil {
		a.logger.Warn("failed to close event publisher", "error", closeErr)
	}
	return err
}
