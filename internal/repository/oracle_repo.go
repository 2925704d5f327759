package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trading-signal-api/config"
	"trading-signal-api/internal/contract"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/httpclient"
	"trading-signal-api/pkg/logger"

	"golang.org/x/time/rate"
	"gorm.io/datatypes"
)

var ErrInvalidOraclePayload = errors.New("oracle response has no prediction")

// oracleRepository calls an external prediction oracle over HTTP.
type oracleRepository struct {
	httpClient     httpclient.HTTPClient
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewOracleRepository(cfg *config.Config, log *logger.Logger) contract.Predictor {
	return newOracleRepository(httpclient.New(cfg.Oracle.BaseURL, cfg.Oracle.Timeout), cfg.Oracle.MaxRequestPerMin, log)
}

func newOracleRepository(client httpclient.HTTPClient, maxRequestPerMin int, log *logger.Logger) *oracleRepository {
	limit := rate.Inf
	if maxRequestPerMin > 0 {
		limit = rate.Every(time.Minute / time.Duration(maxRequestPerMin))
	}

	return &oracleRepository{
		httpClient:     client,
		logger:         log,
		requestLimiter: rate.NewLimiter(limit, 1),
	}
}

func (r *oracleRepository) Predict(ctx context.Context, priceData, liquidityData, volumeData string) (datatypes.JSON, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("oracle rate limiter: %w", err)
	}

	resp, err := r.httpClient.Get(ctx, "/predict", map[string]string{
		"priceData":     priceData,
		"liquidityData": liquidityData,
		"volumeData":    volumeData,
	}, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call prediction oracle: %w", err)
	}

	if !resp.IsSuccess() {
		r.logger.WarnContext(ctx, "Prediction oracle returned non-success status",
			logger.IntField("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("prediction oracle returned status %d", resp.StatusCode)
	}

	var body dto.OraclePredictionResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to decode oracle response: %w", err)
	}

	if len(body.Prediction) == 0 || string(body.Prediction) == "null" {
		return nil, ErrInvalidOraclePayload
	}

	return body.Prediction, nil
}

// staticPredictor answers when no oracle is configured. It does no modeling and
// always returns the same neutral placeholder.
type staticPredictor struct{}

var staticPrediction = datatypes.JSON(`{"signal":"HOLD","confidence":0,"source":"static"}`)

func NewStaticPredictor() contract.Predictor {
	return staticPredictor{}
}

func (staticPredictor) Predict(ctx context.Context, priceData, liquidityData, volumeData string) (datatypes.JSON, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return staticPrediction, nil
}
