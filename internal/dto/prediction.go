package dto

import "gorm.io/datatypes"

type PredictionRequest struct {
	PriceData     string `query:"priceData" validate:"required"`
	LiquidityData string `query:"liquidityData" validate:"required"`
	VolumeData    string `query:"volumeData" validate:"required"`
}

type PredictionResponse struct {
	Prediction datatypes.JSON `json:"prediction"`
}

// OraclePredictionResponse is the body returned by the external prediction oracle.
type OraclePredictionResponse struct {
	Prediction datatypes.JSON `json:"prediction"`
}
