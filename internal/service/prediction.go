package service

import (
	"context"
	"fmt"
	"time"
	"trading-signal-api/internal/contract"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"

	"gorm.io/datatypes"
)

type PredictionService interface {
	Predict(ctx context.Context, req dto.PredictionRequest) (datatypes.JSON, error)
}

type predictionService struct {
	log       *logger.Logger
	predictor contract.Predictor
	metrics   *metrics.Recorder
}

func NewPredictionService(log *logger.Logger, predictor contract.Predictor, recorder *metrics.Recorder) PredictionService {
	return &predictionService{
		log:       log,
		predictor: predictor,
		metrics:   recorder,
	}
}

func (s *predictionService) Predict(ctx context.Context, req dto.PredictionRequest) (datatypes.JSON, error) {
	start := time.Now()
	prediction, err := s.predictor.Predict(ctx, req.PriceData, req.LiquidityData, req.VolumeData)
	elapsed := time.Since(start)
	s.metrics.RecordOracleCall(elapsed, err)

	if err != nil {
		return nil, fmt.Errorf("predictor failed: %w", err)
	}

	s.log.DebugContext(ctx, "Prediction received", logger.DurationField("elapsed", elapsed))
	return prediction, nil
}
