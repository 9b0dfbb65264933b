package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"online-payments/internal/application/gateway"
	"online-payments/internal/infrastructure/config"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
	"online-payments/internal/presentation/rest/handler"
	restmiddleware "online-payments/internal/presentation/rest/middleware"
)

// BodyLimit 受け付けるリクエストボディの上限
const BodyLimit = "1M"

// Router サンドボックスのREST APIルーター
type Router struct {
	echo                *echo.Echo
	refundHandler       *handler.RefundHandler
	verificationHandler *handler.VerificationHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	service *gateway.Service,
) *Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// ErrorHandlerMiddlewareより外側で発生したエラーも同じ形式で返す
	e.HTTPErrorHandler = restmiddleware.HTTPErrorHandler(logger)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	setupMiddleware(e, logger, metrics)

	refundHandler := handler.NewRefundHandler(service)
	verificationHandler := handler.NewVerificationHandler(service)

	setupRoutes(e, cfg, logger, refundHandler, verificationHandler)

	return &Router{
		echo:                e,
		refundHandler:       refundHandler,
		verificationHandler: verificationHandler,
	}
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))

	e.Use(middleware.BodyLimit(BodyLimit))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	logger *otelinfra.Logger,
	refundHandler *handler.RefundHandler,
	verificationHandler *handler.VerificationHandler,
) {
	// 認証が必要なエンドポイント
	authGroup := e.Group("", restmiddleware.AuthMiddleware(&cfg.JWT, logger))

	// 返金
	authGroup.POST("/refunds", refundHandler.CreateRefund)
	authGroup.GET("/refunds", refundHandler.GetRefund)
	authGroup.GET("/refunds/:id", refundHandler.GetRefundByID)

	// カード検証
	authGroup.POST("/verifications", verificationHandler.CreateVerification)
	authGroup.GET("/verifications", verificationHandler.GetVerification)
	authGroup.GET("/verifications/:id", verificationHandler.GetVerificationByID)

	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// Handler ルーターをhttp.Handlerとして返す
//
// gRPCゲートウェイは受け取ったエンベロープをこのハンドラーで処理する。
func (r *Router) Handler() http.Handler {
	return r.echo
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	if err := r.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 処理中のリクエストを待ってサーバーを停止
func (r *Router) Shutdown(ctx context.Context) error {
	return r.echo.Shutdown(ctx)
}
