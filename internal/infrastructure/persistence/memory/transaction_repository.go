// Package memory はプロセス内で完結するサンドボックス用のストレージを提供する。
// MySQLを用意せずにサンドボックスを起動するときに使う。
package memory

import (
	"context"
	"sync"

	"online-payments/internal/domain/transaction"
)

type requestKey struct {
	merchantID      string
	transactionType transaction.TransactionType
	requestID       string
}

// TransactionRepository メモリ実装のTransactionRepository
type TransactionRepository struct {
	mu        sync.RWMutex
	byID      map[string]*transaction.Transaction
	byRequest map[requestKey]*transaction.Transaction
}

// NewTransactionRepository 新しいTransactionRepositoryを作成
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		byID:      make(map[string]*transaction.Transaction),
		byRequest: make(map[requestKey]*transaction.Transaction),
	}
}

// Save トランザクションを保存
func (r *TransactionRepository) Save(ctx context.Context, t *transaction.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := requestKey{merchantID: t.MerchantID(), transactionType: t.TransactionType(), requestID: t.RequestID()}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byRequest[key]; ok {
		return transaction.ErrDuplicateRequestID
	}
	if _, ok := r.byID[t.TransactionID()]; ok {
		return transaction.ErrInvalidTransaction
	}
	r.byID[t.TransactionID()] = t
	r.byRequest[key] = t
	return nil
}

// FindByTransactionID トランザクションIDでトランザクションを取得
func (r *TransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[transactionID]
	if !ok {
		return nil, transaction.ErrTransactionNotFound
	}
	return t, nil
}

// FindByRequestID マーチャントのリクエストIDでトランザクションを取得
func (r *TransactionRepository) FindByRequestID(ctx context.Context, merchantID string, transactionType transaction.TransactionType, requestID string) (*transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byRequest[requestKey{merchantID: merchantID, transactionType: transactionType, requestID: requestID}]
	if !ok {
		return nil, transaction.ErrTransactionNotFound
	}
	return t, nil
}

// SumRefundedByReference 元取引に対して完了済みの返金額を合計する
func (r *TransactionRepository) SumRefundedByReference(ctx context.Context, merchantID, referenceID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, t := range r.byID {
		if t.TransactionType() != transaction.TransactionTypeRefund || !t.IsCompleted() {
			continue
		}
		if t.BelongsTo(merchantID) && t.ReferenceID() == referenceID {
			total += t.Amount()
		}
	}
	return total, nil
}
