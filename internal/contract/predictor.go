package contract

import (
	"context"

	"gorm.io/datatypes"
)

// Predictor produces a market prediction from raw price, liquidity and volume inputs.
// The inputs are passed through untouched and the result is opaque JSON.
type Predictor interface {
	Predict(ctx context.Context, priceData, liquidityData, volumeData string) (datatypes.JSON, error)
}
