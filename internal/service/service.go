package service

import (
	"trading-signal-api/config"
	"trading-signal-api/internal/repository"
	"trading-signal-api/pkg/cache"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"
)

type Service struct {
	PredictionService    PredictionService
	MarketDataService    MarketDataService
	TradingSignalService TradingSignalService
	SubscriptionService  SubscriptionService
	HealthService        HealthService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	db Pinger,
	inmemoryCache cache.Cache,
	recorder *metrics.Recorder,
) *Service {
	return &Service{
		PredictionService:    NewPredictionService(log, repo.Predictor, recorder),
		MarketDataService:    NewMarketDataService(cfg),
		TradingSignalService: NewTradingSignalService(log, recorder),
		SubscriptionService:  NewSubscriptionService(log, recorder),
		HealthService:        NewHealthService(cfg, log, db, inmemoryCache),
	}
}
