package transaction

import "errors"

var (
	// ErrTransactionNotFound トランザクションが見つからないエラー
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidTransaction 無効なトランザクションエラー
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrDuplicateRequestID 同じマーチャントで同じリクエストIDの取引が既にある
	ErrDuplicateRequestID = errors.New("duplicate request id")
)
