package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"online-payments/internal/domain/transaction"
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
)

// erDupEntry 一意キー違反のエラー番号
const erDupEntry = 1062

const selectColumns = `
	transaction_id, request_id, merchant_id, transaction_type,
	state, response_status, response_code, amount, currency,
	reference_id, response, created_at, updated_at
`

// TransactionRepository MySQL実装のTransactionRepository
type TransactionRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewTransactionRepository 新しいTransactionRepositoryを作成
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		tracer: otel.Tracer("transaction-repository"),
	}
}

// Save トランザクションを保存
func (r *TransactionRepository) Save(ctx context.Context, t *transaction.Transaction) error {
	ctx, span := r.tracer.Start(ctx, "TransactionRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.transaction_id", t.TransactionID()),
		attribute.String("db.merchant_id", t.MerchantID()),
		attribute.String("db.transaction_type", t.TransactionType().String()),
		attribute.String("db.state", string(t.State())),
		attribute.Int64("db.amount", t.Amount()),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.table", "sandbox_transactions"),
	)

	query := `
		INSERT INTO sandbox_transactions (
			transaction_id, request_id, merchant_id, transaction_type,
			state, response_status, response_code, amount, currency,
			reference_id, response, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var referenceID interface{}
	if t.ReferenceID() != "" {
		referenceID = t.ReferenceID()
	}

	_, err := r.db.executor(ctx).ExecContext(ctx, query,
		t.TransactionID(),
		t.RequestID(),
		t.MerchantID(),
		t.TransactionType().String(),
		string(t.State()),
		string(t.ResponseStatus()),
		t.ResponseCode(),
		t.Amount(),
		t.Currency().String(),
		referenceID,
		string(t.Response()),
		t.CreatedAt(),
		t.UpdatedAt(),
	)
	if err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == erDupEntry {
			span.SetStatus(otelcodes.Error, "duplicate request id")
			return transaction.ErrDuplicateRequestID
		}
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	span.SetStatus(otelcodes.Ok, "transaction saved")
	return nil
}

// FindByTransactionID トランザクションIDでトランザクションを取得
func (r *TransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*transaction.Transaction, error) {
	ctx, span := r.tracer.Start(ctx, "TransactionRepository.FindByTransactionID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.transaction_id", transactionID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "sandbox_transactions"),
	)

	query := `SELECT ` + selectColumns + ` FROM sandbox_transactions WHERE transaction_id = ?`
	return r.findOne(span, r.db.executor(ctx).QueryRowContext(ctx, query, transactionID))
}

// FindByRequestID マーチャントのリクエストIDでトランザクションを取得
func (r *TransactionRepository) FindByRequestID(ctx context.Context, merchantID string, transactionType transaction.TransactionType, requestID string) (*transaction.Transaction, error) {
	ctx, span := r.tracer.Start(ctx, "TransactionRepository.FindByRequestID")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.merchant_id", merchantID),
		attribute.String("db.transaction_type", transactionType.String()),
		attribute.String("db.request_id", requestID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "sandbox_transactions"),
	)

	query := `SELECT ` + selectColumns + ` FROM sandbox_transactions
		WHERE merchant_id = ? AND transaction_type = ? AND request_id = ?`
	row := r.db.executor(ctx).QueryRowContext(ctx, query, merchantID, transactionType.String(), requestID)
	return r.findOne(span, row)
}

// SumRefundedByReference 元取引に対して完了済みの返金額を合計する
//
// トランザクション内で呼ばれた場合は対象行をロックする。
func (r *TransactionRepository) SumRefundedByReference(ctx context.Context, merchantID, referenceID string) (int64, error) {
	ctx, span := r.tracer.Start(ctx, "TransactionRepository.SumRefundedByReference")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.merchant_id", merchantID),
		attribute.String("db.reference_id", referenceID),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "sandbox_transactions"),
	)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM sandbox_transactions
		WHERE merchant_id = ? AND reference_id = ? AND transaction_type = ? AND state = ?
	`
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		query += ` FOR UPDATE`
	}

	var total int64
	err := r.db.executor(ctx).QueryRowContext(ctx, query,
		merchantID,
		referenceID,
		transaction.TransactionTypeRefund.String(),
		string(enums.TransactionStateCompleted),
	).Scan(&total)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return 0, fmt.Errorf("failed to sum refunds: %w", err)
	}

	span.SetAttributes(attribute.Int64("db.total", total))
	span.SetStatus(otelcodes.Ok, "refunds summed")
	return total, nil
}

func (r *TransactionRepository) findOne(span trace.Span, row *sql.Row) (*transaction.Transaction, error) {
	var (
		p                    transaction.Params
		dbType, dbState      string
		dbStatus, dbCurrency string
		referenceID          sql.NullString
		response             []byte
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&p.TransactionID,
		&p.RequestID,
		&p.MerchantID,
		&dbType,
		&dbState,
		&dbStatus,
		&p.ResponseCode,
		&p.Amount,
		&dbCurrency,
		&referenceID,
		&response,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(otelcodes.Ok, "transaction not found")
		return nil, transaction.ErrTransactionNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	tt, err := transaction.NewTransactionType(dbType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type: %w", err)
	}
	p.TransactionType = tt
	p.State = enums.TransactionState(dbState)
	p.ResponseStatus = enums.ResponseStatus(dbStatus)
	p.Currency = currency.Code(dbCurrency)
	p.ReferenceID = referenceID.String
	p.Response = response

	t, err := transaction.Reconstruct(p, createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct transaction entity: %w", err)
	}

	span.SetAttributes(
		attribute.String("db.transaction_id", t.TransactionID()),
		attribute.String("db.transaction_type", t.TransactionType().String()),
	)
	span.SetStatus(otelcodes.Ok, "transaction found")
	return t, nil
}
