package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"online-payments/internal/infrastructure/config"
)

// DB データベース接続とトランザクション管理を提供
type DB struct {
	*sql.DB
}

// executor *sql.DB と *sql.Tx の共通部分
type executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// NewDB 新しいデータベース接続を作成
func NewDB(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 接続プールの設定
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// 接続テスト
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close データベース接続を閉じる
func (db *DB) Close() error {
	return db.DB.Close()
}

// HealthCheck データベースのヘルスチェックを実行
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// schema サンドボックス取引テーブル
const schema = `
	CREATE TABLE IF NOT EXISTS sandbox_transactions (
		transaction_id   VARCHAR(64)  NOT NULL,
		request_id       VARCHAR(255) NOT NULL,
		merchant_id      VARCHAR(64)  NOT NULL,
		transaction_type VARCHAR(16)  NOT NULL,
		state            VARCHAR(16)  NOT NULL,
		response_status  VARCHAR(16)  NOT NULL,
		response_code    VARCHAR(64)  NOT NULL,
		amount           BIGINT       NOT NULL,
		currency         CHAR(3)      NOT NULL DEFAULT '',
		reference_id     VARCHAR(64)  NULL,
		response         JSON         NOT NULL,
		created_at       DATETIME(6)  NOT NULL,
		updated_at       DATETIME(6)  NOT NULL,
		PRIMARY KEY (transaction_id),
		UNIQUE KEY uq_merchant_type_request (merchant_id, transaction_type, request_id),
		KEY idx_merchant_reference (merchant_id, reference_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

// Migrate サンドボックスのテーブルを作成
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// executor コンテキストにトランザクションがあればそれを、なければ接続プールを返す
func (db *DB) executor(ctx context.Context) executor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}
