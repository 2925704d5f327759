package service

import (
	"context"
	"time"
	"trading-signal-api/config"
	"trading-signal-api/internal/dto"
)

type MarketDataService interface {
	GetSnapshot(ctx context.Context) (*dto.MarketSnapshot, error)
}

type marketDataService struct {
	cfg *config.Config
	now func() time.Time
}

func NewMarketDataService(cfg *config.Config) MarketDataService {
	return &marketDataService{
		cfg: cfg,
		now: time.Now,
	}
}

// GetSnapshot returns the simulated market snapshot stamped with the current time.
func (s *marketDataService) GetSnapshot(ctx context.Context) (*dto.MarketSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &dto.MarketSnapshot{
		Price:     s.cfg.Market.Price,
		Liquidity: s.cfg.Market.Liquidity,
		Volume:    s.cfg.Market.Volume,
		Timestamp: dto.FormatTimestamp(s.now()),
	}, nil
}
