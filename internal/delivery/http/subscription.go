package http

import (
	"fmt"
	"net/http"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSubscription(base *echo.Group) {
	base.POST("/subscribe", h.subscribe)
	base.GET("/subscription-details/:userId", h.getSubscriptionDetails)
}

func (h *HttpAPIHandler) subscribe(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.SubscriptionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.MsgSubscriptionRequired))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.MsgSubscriptionRequired))
	}

	if err := h.service.SubscriptionService.Subscribe(ctx, *req); err != nil {
		h.log.ErrorContext(ctx, "Error during subscription", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.MsgSubscriptionFailed))
	}

	return c.JSON(http.StatusOK, dto.NewMessageResponse(fmt.Sprintf(dto.MsgSubscribed, req.UserID, req.SignalType)))
}

func (h *HttpAPIHandler) getSubscriptionDetails(c echo.Context) error {
	ctx := c.Request().Context()

	details, err := h.service.SubscriptionService.GetDetails(ctx, c.Param("userId"))
	if err != nil {
		h.log.ErrorContext(ctx, "Error fetching subscription details", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.MsgSubscriptionDetailsFailed))
	}

	return c.JSON(http.StatusOK, details)
}
