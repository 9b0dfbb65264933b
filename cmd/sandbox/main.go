// sandbox は決済APIの /refunds と /verifications をローカルで再現するサーバー。
// REST と gRPC ゲートウェイの両方で待ち受ける。
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"online-payments/internal/application/gateway"
	"online-payments/internal/domain/transaction"
	"online-payments/internal/infrastructure/config"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
	"online-payments/internal/infrastructure/persistence/memory"
	"online-payments/internal/infrastructure/persistence/mysql"
	grpcserver "online-payments/internal/presentation/grpc"
	"online-payments/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("online-payments-sandbox")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("online-payments-sandbox")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// 保存先の初期化
	transactionRepo, txManager, closeStorage, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeStorage()

	service := gateway.NewService(transactionRepo, txManager, logger, metrics)

	// REST APIルーターの初期化
	router := rest.NewRouter(cfg, logger, metrics, service)

	// gRPCゲートウェイはRESTルーターに中継する
	grpcSrv, err := grpcserver.NewServer(cfg, logger, router.Handler())
	if err != nil {
		log.Fatalf("Failed to create gRPC server: %v", err)
	}

	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(context.Background(), "REST API server starting", map[string]interface{}{
			"address": address,
			"storage": cfg.Server.Storage,
		})
		if err := router.Start(address); err != nil {
			logger.Error(context.Background(), "REST API server error", err, nil)
		}
	}()

	go func() {
		if err := grpcSrv.Start(); err != nil {
			logger.Error(context.Background(), "gRPC server error", err, nil)
		}
	}()

	// シグナルを待機
	<-quit
	logger.Info(context.Background(), "Shutting down servers", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "Error shutting down REST API server", err, nil)
	}

	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "Error shutting down gRPC server", err, nil)
	}

	logger.Info(context.Background(), "Servers stopped", nil)
}

// openStorage 設定に応じてリポジトリとトランザクションマネージャーを作成する
func openStorage(cfg *config.Config) (transaction.TransactionRepository, transaction.TransactionManager, func(), error) {
	if cfg.Server.Storage == config.StorageMemory {
		return memory.NewTransactionRepository(), memory.NewTransactionManager(), func() {}, nil
	}

	db, err := mysql.NewDB(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	return mysql.NewTransactionRepository(db), mysql.NewTransactionManager(db), closeDB, nil
}
