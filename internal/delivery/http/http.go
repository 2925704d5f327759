package http

import (
	"context"
	"trading-signal-api/internal/service"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"
	"trading-signal-api/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type HttpAPIHandler struct {
	echo             *echo.Echo
	validator        *goValidator.Validate
	service          *service.Service
	log              *logger.Logger
	metrics          *metrics.Recorder
	corsAllowOrigins []string
}

func NewHttpAPIHandler(
	ctx context.Context,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
	log *logger.Logger,
	recorder *metrics.Recorder,
	corsAllowOrigins []string,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:             echo,
		validator:        validator,
		service:          service,
		log:              log,
		metrics:          recorder,
		corsAllowOrigins: corsAllowOrigins,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.HideBanner = true
	h.echo.Use(
		echoMiddleware.Recover(),
		echoMiddleware.RequestID(),
		middleware.RequestObserver(h.log, h.metrics),
		middleware.CORS(h.corsAllowOrigins),
	)

	base := h.echo.Group("")
	h.SetupPrediction(base)
	h.SetupMarketData(base)
	h.SetupTradingSignal(base)
	h.SetupSubscription(base)
	h.SetupHealth(base)
}
