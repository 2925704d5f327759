package service

import (
	"context"
	"fmt"
	"time"
	"trading-signal-api/config"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/cache"
	"trading-signal-api/pkg/common"
	"trading-signal-api/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Pinger is satisfied by *postgres.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context)
	Check(ctx context.Context) dto.HealthStatus
	Status(ctx context.Context) dto.HealthStatus
}

type healthService struct {
	cfg           *config.Config
	log           *logger.Logger
	db            Pinger
	inmemoryCache cache.Cache
	cron          *cron.Cron
	now           func() time.Time
}

// NewHealthService watches the database connection. db may be nil when the
// service runs without a database.
func NewHealthService(cfg *config.Config, log *logger.Logger, db Pinger, inmemoryCache cache.Cache) HealthService {
	return &healthService{
		cfg:           cfg,
		log:           log,
		db:            db,
		inmemoryCache: inmemoryCache,
		cron:          cron.New(),
		now:           time.Now,
	}
}

// Start schedules the periodic database check. It does not block.
func (s *healthService) Start(ctx context.Context) error {
	if s.db == nil {
		s.log.Info("Database health watchdog disabled, no database configured")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.DB.HealthCheckSchedule, func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid health check schedule %q: %w", s.cfg.DB.HealthCheckSchedule, err)
	}

	s.cron.Start()
	s.log.Info("Database health watchdog started", logger.StringField("schedule", s.cfg.DB.HealthCheckSchedule))
	return nil
}

func (s *healthService) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		s.log.Warn("Timeout while stopping database health watchdog")
	}
}

// Check pings the database and caches the result.
func (s *healthService) Check(ctx context.Context) dto.HealthStatus {
	status := dto.HealthStatus{
		Status:    "ok",
		Database:  dto.DatabaseDisabled,
		CheckedAt: dto.FormatTimestamp(s.now()),
	}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			s.log.WarnContext(ctx, "Database health check failed", logger.ErrorField(err))
			status.Database = dto.DatabaseDown
		} else {
			status.Database = dto.DatabaseUp
		}
	}

	s.inmemoryCache.Set(common.KEY_DATABASE_STATUS, status, s.cfg.Cache.DefaultExpiration)
	return status
}

// Status returns the last cached check, running a fresh one on a miss.
func (s *healthService) Status(ctx context.Context) dto.HealthStatus {
	if status, found := cache.GetFromCache[dto.HealthStatus](s.inmemoryCache, common.KEY_DATABASE_STATUS); found {
		return status
	}
	return s.Check(ctx)
}
