package transaction

import (
	"context"
)

// TransactionRepository トランザクションリポジトリインターフェース
type TransactionRepository interface {
	// Save トランザクションを保存
	// 同じマーチャント・種別・リクエストIDの取引が既にある場合は ErrDuplicateRequestID を返す。
	Save(ctx context.Context, transaction *Transaction) error

	// FindByTransactionID トランザクションIDでトランザクションを取得
	FindByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)

	// FindByRequestID マーチャントのリクエストIDでトランザクションを取得
	FindByRequestID(ctx context.Context, merchantID string, transactionType TransactionType, requestID string) (*Transaction, error)

	// SumRefundedByReference 元取引に対して完了済みの返金額を合計する
	SumRefundedByReference(ctx context.Context, merchantID, referenceID string) (int64, error)
}
