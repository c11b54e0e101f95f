package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/templui/goalfund/internal/config"
	"github.com/templui/goalfund/internal/db"
	"github.com/templui/goalfund/internal/metrics"
	"github.com/templui/goalfund/internal/middleware"
	"github.com/templui/goalfund/internal/repository"
	"github.com/templui/goalfund/internal/service"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	Registry     *prometheus.Registry
	HTTPMetrics  *metrics.HTTP
	WriteLimiter *middleware.RateLimiter // nil when rate limiting is disabled
	EmailService *service.EmailService
	GoalService  *service.GoalService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return NewWithDB(cfg, database), nil
}

// NewWithDB wires the application around an already migrated database.
func NewWithDB(cfg *config.Config, database *sqlx.DB) *App {
	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(database.DB, cfg.DBDriver),
	)
	ledgerMetrics := metrics.New(registry)
	httpMetrics := metrics.NewHTTP(registry)

	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	contributorRepository := repository.NewContributorRepository(database)
	paymentRepository := repository.NewPaymentRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	goalService := service.NewGoalService(
		database,
		goalRepository,
		contributorRepository,
		paymentRepository,
		emailService,
		ledgerMetrics,
		cfg.DefaultCurrency,
	)

	// Rate limiting
	var writeLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled && cfg.RateLimitWrites > 0 {
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrites, cfg.RateLimitWindow, cfg.TrustProxyHeaders)
	}

	return &App{
		Cfg:          cfg,
		DB:           database,
		Registry:     registry,
		HTTPMetrics:  httpMetrics,
		WriteLimiter: writeLimiter,
		EmailService: emailService,
		GoalService:  goalService,
	}
}

func (a *App) Close() error {
	if a.WriteLimiter != nil {
		a.WriteLimiter.Stop()
	}
	return db.Close(a.DB)
}
