package middleware

import (
	"time"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// RequestObserver attaches a request-scoped logger to the request context,
// then logs the request and records it in the metrics recorder.
func RequestObserver(log *logger.Logger, recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			reqLog := log.With(
				logger.StringField("request_id", requestID),
				logger.StringField("method", req.Method),
				logger.StringField("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			elapsed := time.Since(start)

			recorder.RecordRequest(req.Method, route, status, elapsed)
			reqLog.Info("HTTP request",
				logger.StringField("route", route),
				logger.IntField("status", status),
				logger.DurationField("latency", elapsed),
			)
			return nil
		}
	}
}
