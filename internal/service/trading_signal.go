package service

import (
	"context"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"
)

type TradingSignalService interface {
	Send(ctx context.Context, req dto.TradingSignalRequest) error
}

type tradingSignalService struct {
	log     *logger.Logger
	metrics *metrics.Recorder
}

func NewTradingSignalService(log *logger.Logger, recorder *metrics.Recorder) TradingSignalService {
	return &tradingSignalService{
		log:     log,
		metrics: recorder,
	}
}

// Send acknowledges the signal. Nothing is delivered to the wallet yet.
func (s *tradingSignalService) Send(ctx context.Context, req dto.TradingSignalRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "Sending trading signal to wallet",
		logger.StringField("wallet_address", req.WalletAddress),
		logger.StringField("signal", string(req.Signal)),
	)
	s.metrics.RecordSignal()
	return nil
}
