package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"online-payments/internal/domain/transaction"
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
)

var transactionColumns = []string{
	"transaction_id", "request_id", "merchant_id", "transaction_type",
	"state", "response_status", "response_code", "amount", "currency",
	"reference_id", "response", "created_at", "updated_at",
}

func newTestRepository(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &TransactionRepository{
		db:     &DB{DB: db},
		tracer: otel.Tracer("test"),
	}, mock
}

func testRefund(referenceID string) *transaction.Transaction {
	return transaction.MustNewTransaction(transaction.Params{
		TransactionID:   "txn-1",
		RequestID:       "req-1",
		MerchantID:      "991234567890",
		TransactionType: transaction.TransactionTypeRefund,
		State:           enums.TransactionStateCompleted,
		ResponseStatus:  enums.ResponseStatusSuccess,
		ResponseCode:    "APPROVED",
		Amount:          1000,
		Currency:        currency.USD,
		ReferenceID:     referenceID,
		Response:        []byte(`{"transactionId":"txn-1"}`),
	})
}

func TestTransactionRepository_Save(t *testing.T) {
	tests := []struct {
		name        string
		transaction *transaction.Transaction
		setupMock   func(mock sqlmock.Sqlmock)
		wantError   error
		wantAnyErr  bool
	}{
		{
			name:        "正常系: 元取引ありの返金を保存",
			transaction: testRefund("orig-1"),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO sandbox_transactions`).
					WithArgs(
						"txn-1",
						"req-1",
						"991234567890",
						"refund",
						"COMPLETED",
						"SUCCESS",
						"APPROVED",
						int64(1000),
						"USD",
						"orig-1",
						`{"transactionId":"txn-1"}`,
						sqlmock.AnyArg(), // created_at
						sqlmock.AnyArg(), // updated_at
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:        "正常系: 元取引なしはNULLで保存",
			transaction: testRefund(""),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO sandbox_transactions`).
					WithArgs(
						"txn-1", "req-1", "991234567890", "refund", "COMPLETED", "SUCCESS", "APPROVED",
						int64(1000), "USD", nil, `{"transactionId":"txn-1"}`, sqlmock.AnyArg(), sqlmock.AnyArg(),
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:        "異常系: 一意キー違反は重複エラー",
			transaction: testRefund(""),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO sandbox_transactions`).
					WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantError: transaction.ErrDuplicateRequestID,
		},
		{
			name:        "異常系: DBエラー",
			transaction: testRefund(""),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO sandbox_transactions`).
					WillReturnError(errors.New("connection reset"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			err := repo.Save(context.Background(), tt.transaction)

			switch {
			case tt.wantError != nil:
				assert.ErrorIs(t, err, tt.wantError)
			case tt.wantAnyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, transaction.ErrDuplicateRequestID)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionRepository_FindByTransactionID(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantError error
		check     func(t *testing.T, got *transaction.Transaction)
	}{
		{
			name: "正常系: トランザクションを取得",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(transactionColumns).AddRow(
					"txn-1", "req-1", "991234567890", "refund",
					"COMPLETED", "SUCCESS", "APPROVED", int64(1000), "USD",
					"orig-1", []byte(`{"transactionId":"txn-1"}`), createdAt, createdAt,
				)
				mock.ExpectQuery(`SELECT .+ FROM sandbox_transactions WHERE transaction_id = \?`).
					WithArgs("txn-1").
					WillReturnRows(rows)
			},
			check: func(t *testing.T, got *transaction.Transaction) {
				assert.Equal(t, "txn-1", got.TransactionID())
				assert.Equal(t, transaction.TransactionTypeRefund, got.TransactionType())
				assert.Equal(t, enums.TransactionStateCompleted, got.State())
				assert.Equal(t, currency.USD, got.Currency())
				assert.Equal(t, "orig-1", got.ReferenceID())
				assert.Equal(t, `{"transactionId":"txn-1"}`, string(got.Response()))
				assert.Equal(t, createdAt, got.CreatedAt())
			},
		},
		{
			name: "正常系: 元取引がNULL",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(transactionColumns).AddRow(
					"txn-1", "req-1", "991234567890", "verification",
					"CLOSED", "SUCCESS", "ACCEPTED", int64(0), "USD",
					nil, []byte(`{}`), createdAt, createdAt,
				)
				mock.ExpectQuery(`SELECT .+ FROM sandbox_transactions WHERE transaction_id = \?`).
					WithArgs("txn-1").
					WillReturnRows(rows)
			},
			check: func(t *testing.T, got *transaction.Transaction) {
				assert.Equal(t, transaction.TransactionTypeVerification, got.TransactionType())
				assert.Empty(t, got.ReferenceID())
			},
		},
		{
			name: "異常系: 見つからない",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM sandbox_transactions WHERE transaction_id = \?`).
					WithArgs("txn-1").
					WillReturnRows(sqlmock.NewRows(transactionColumns))
			},
			wantError: transaction.ErrTransactionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByTransactionID(context.Background(), "txn-1")

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionRepository_FindByTransactionID_CorruptRow(t *testing.T) {
	repo, mock := newTestRepository(t)
	rows := sqlmock.NewRows(transactionColumns).AddRow(
		"txn-1", "req-1", "991234567890", "payment",
		"COMPLETED", "SUCCESS", "APPROVED", int64(1000), "USD",
		nil, []byte(`{}`), time.Now(), time.Now(),
	)
	mock.ExpectQuery(`SELECT .+ FROM sandbox_transactions`).WillReturnRows(rows)

	_, err := repo.FindByTransactionID(context.Background(), "txn-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transaction type")
}

func TestTransactionRepository_FindByRequestID(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM sandbox_transactions\s+WHERE merchant_id = \? AND transaction_type = \? AND request_id = \?`).
		WithArgs("991234567890", "refund", "req-1").
		WillReturnRows(sqlmock.NewRows(transactionColumns).AddRow(
			"txn-1", "req-1", "991234567890", "refund",
			"DECLINED", "DENIED", "DECLINED", int64(1005), "USD",
			nil, []byte(`{}`), now, now,
		))

	got, err := repo.FindByRequestID(context.Background(), "991234567890", transaction.TransactionTypeRefund, "req-1")
	require.NoError(t, err)
	assert.Equal(t, enums.TransactionStateDeclined, got.State())
	assert.Equal(t, enums.ResponseStatusDenied, got.ResponseStatus())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_SumRefundedByReference(t *testing.T) {
	t.Run("正常系: トランザクション外ではロックしない", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)\s+FROM sandbox_transactions\s+WHERE .+ state = \?\s*$`).
			WithArgs("991234567890", "orig-1", "refund", "COMPLETED").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(2500)))

		total, err := repo.SumRefundedByReference(context.Background(), "991234567890", "orig-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2500), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("正常系: トランザクション内ではFOR UPDATE", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs("991234567890", "orig-1", "refund", "COMPLETED").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(0)))
		mock.ExpectCommit()

		tm := NewTransactionManager(repo.db)
		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			total, err := repo.SumRefundedByReference(ctx, "991234567890", "orig-1")
			if err != nil {
				return err
			}
			assert.Equal(t, int64(0), total)
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`SELECT COALESCE`).WillReturnError(errors.New("timeout"))

		_, err := repo.SumRefundedByReference(context.Background(), "991234567890", "orig-1")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
