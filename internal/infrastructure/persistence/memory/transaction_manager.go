package memory

import (
	"context"
	"sync"
)

type txKey struct{}

// TransactionManager メモリ実装のTransactionManager
//
// トランザクションは一つずつ直列に実行される。ロールバックは行わない。
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager 新しいトランザクションマネージャーを作成
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// WithTransaction トランザクション内で関数を実行
//
// 入れ子の呼び出しは外側のロックをそのまま使う。
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) == tm {
		return fn(ctx)
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, tm))
}
