package http

import (
	"net/http"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPrediction(base *echo.Group) {
	base.GET("/predict", h.predict)
}

func (h *HttpAPIHandler) predict(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.PredictionRequest)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.MsgInsufficientPredictionData))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.MsgInsufficientPredictionData))
	}

	prediction, err := h.service.PredictionService.Predict(ctx, *req)
	if err != nil {
		h.log.ErrorContext(ctx, "Error occurred while getting prediction", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.MsgPredictionFailed))
	}

	return c.JSON(http.StatusOK, dto.PredictionResponse{Prediction: prediction})
}
