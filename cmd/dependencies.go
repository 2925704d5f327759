package cmd

import (
	"context"
	"errors"
	"trading-signal-api/config"
	"trading-signal-api/internal/dto"
	"trading-signal-api/internal/service"
	"trading-signal-api/pkg/cache"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"
	"trading-signal-api/pkg/postgres"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type AppDependency struct {
	db        *postgres.DB
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	metrics   *metrics.Recorder
}

// NewAppDependency builds the process-wide resources. A failed database
// connection is logged and the service keeps running without it.
func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	return newAppDependency(ctx, prometheus.DefaultRegisterer)
}

func newAppDependency(ctx context.Context, reg prometheus.Registerer) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := postgres.NewDB(ctx, cfg.DB, log)
	switch {
	case errors.Is(err, postgres.ErrNoDSN):
		log.Warn("DATABASE_URL is not set, running without a database")
	case err != nil:
		log.Error("Failed to connect to database", logger.ErrorField(err))
	default:
		log.Info("Successfully connected to database")
	}

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: dto.NewValidator(),
		db:        db,
		echo:      echo.New(),
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		metrics:   metrics.New(reg),
	}, nil
}

// dbPinger returns nil when no connection was established so the health
// watchdog reports the database as disabled.
func (d *AppDependency) dbPinger() service.Pinger {
	if d.db == nil {
		return nil
	}
	return d.db
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	defer func() { _ = d.log.Sync() }()
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
