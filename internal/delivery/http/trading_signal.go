package http

import (
	"fmt"
	"net/http"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTradingSignal(base *echo.Group) {
	base.POST("/send-trading-signal", h.sendTradingSignal)
}

func (h *HttpAPIHandler) sendTradingSignal(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.TradingSignalRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.MsgSignalRequired))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.MsgSignalRequired))
	}

	if err := h.service.TradingSignalService.Send(ctx, *req); err != nil {
		h.log.ErrorContext(ctx, "Error sending trading signal", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.MsgSignalFailed))
	}

	return c.JSON(http.StatusOK, dto.NewMessageResponse(fmt.Sprintf(dto.MsgSignalSent, req.WalletAddress)))
}
