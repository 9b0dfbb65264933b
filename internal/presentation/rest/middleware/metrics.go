package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	otelinfra "online-payments/internal/infrastructure/observability/otel"
)

// MetricsMiddleware メトリクス記録ミドルウェア
//
// エラーハンドラーより外側に置くため、エラーはステータスコードで判定する。
func MetricsMiddleware(metrics *otelinfra.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			start := time.Now()

			metrics.RecordRequest(ctx, c.Request().Method, c.Path())

			err := next(c)

			metrics.RecordResponseTime(ctx, c.Request().Method, c.Path(), time.Since(start).Seconds())

			statusCode := c.Response().Status
			if err != nil || statusCode >= 400 {
				errorType := "client_error"
				if err != nil || statusCode >= 500 {
					errorType = "server_error"
				}
				metrics.RecordError(ctx, errorType)
			}

			return err
		}
	}
}
