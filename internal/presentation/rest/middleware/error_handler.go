package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"online-payments/internal/application/gateway"
	"online-payments/internal/domain/transaction"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
)

const errorStatus = "ERROR"

// ErrorResponse 決済APIのエラーレスポンス
type ErrorResponse struct {
	ResponseStatus  string `json:"responseStatus"`
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	var reqErr *gateway.RequestError
	if errors.As(err, &reqErr) {
		logger.Warn(ctx, "Invalid request", map[string]interface{}{
			"code":  reqErr.Code,
			"error": reqErr.Message,
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			ResponseStatus:  errorStatus,
			ResponseCode:    reqErr.Code,
			ResponseMessage: reqErr.Message,
		})
	}

	if errors.Is(err, transaction.ErrTransactionNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			ResponseStatus:  errorStatus,
			ResponseCode:    gateway.CodeNotFound,
			ResponseMessage: "Transaction not found",
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     fmt.Sprint(httpErr.Message),
		})
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			ResponseStatus:  errorStatus,
			ResponseCode:    statusCode(httpErr.Code),
			ResponseMessage: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		ResponseStatus:  errorStatus,
		ResponseCode:    "INTERNAL_ERROR",
		ResponseMessage: "An unexpected error occurred",
	})
}

// statusCode HTTPステータスを応答コードの形式にする (例: 404 -> NOT_FOUND)
func statusCode(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

// HTTPErrorHandler ミドルウェアの外側で発生したエラーを処理する (panicの回復など)
func HTTPErrorHandler(logger *otelinfra.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		_ = handleError(c, err, logger)
	}
}
