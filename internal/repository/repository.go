package repository

import (
	"trading-signal-api/config"
	"trading-signal-api/internal/contract"
	"trading-signal-api/pkg/logger"
)

type Repository struct {
	Predictor contract.Predictor
}

func NewRepository(cfg *config.Config, log *logger.Logger) *Repository {
	var predictor contract.Predictor
	if cfg.Oracle.BaseURL != "" {
		log.Info("Using HTTP prediction oracle", logger.StringField("base_url", cfg.Oracle.BaseURL))
		predictor = NewOracleRepository(cfg, log)
	} else {
		log.Warn("No prediction oracle configured, falling back to static predictor")
		predictor = NewStaticPredictor()
	}

	return &Repository{
		Predictor: predictor,
	}
}
