package http

import (
	"net/http"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarketData(base *echo.Group) {
	base.GET("/market-data", h.getMarketData)
}

func (h *HttpAPIHandler) getMarketData(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.service.MarketDataService.GetSnapshot(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "Error fetching market data", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.MsgMarketDataFailed))
	}

	return c.JSON(http.StatusOK, snapshot)
}
