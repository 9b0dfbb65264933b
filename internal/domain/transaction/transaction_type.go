package transaction

import (
	"fmt"
)

// TransactionType サンドボックス取引の種別
type TransactionType string

const (
	TransactionTypeRefund       TransactionType = "refund"       // 返金
	TransactionTypeVerification TransactionType = "verification" // カード検証
)

// NewTransactionType 新しいTransactionTypeを作成
func NewTransactionType(s string) (TransactionType, error) {
	switch s {
	case "refund", "verification":
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
}

// String 文字列表現を返す
func (tt TransactionType) String() string {
	return string(tt)
}

// Valid 有効なトランザクションタイプかどうかを返す
func (tt TransactionType) Valid() bool {
	switch tt {
	case TransactionTypeRefund, TransactionTypeVerification:
		return true
	default:
		return false
	}
}

// Resource 取引種別に対応するAPIリソース名を返す
func (tt TransactionType) Resource() string {
	switch tt {
	case TransactionTypeRefund:
		return "refunds"
	case TransactionTypeVerification:
		return "verifications"
	default:
		return ""
	}
}
