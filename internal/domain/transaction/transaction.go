package transaction

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
)

var (
	// ErrInvalidTransactionID トランザクションIDが無効
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	// ErrInvalidMerchantID マーチャントIDが無効
	ErrInvalidMerchantID = errors.New("invalid merchant id")
	// ErrInvalidRequestID リクエストIDが無効
	ErrInvalidRequestID = errors.New("invalid request id")
	// ErrInvalidAmount 金額が無効
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAmountTooLarge 金額が大きすぎる
	ErrAmountTooLarge = errors.New("amount too large")
)

const (
	// MaxAmount 最大金額 (最小通貨単位で10兆)
	MaxAmount = 10_000_000_000_000
)

var (
	idRegex         = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]{1,64}$`)
	merchantIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`)
	requestIDRegex  = regexp.MustCompile(`^[a-zA-Z0-9_\-\.\@\:]{1,255}$`)
)

// ValidMerchantID マーチャントIDとして使える文字列かどうかを返す
func ValidMerchantID(s string) bool {
	return merchantIDRegex.MatchString(s)
}

// ValidRequestID リクエストIDとして使える文字列かどうかを返す
func ValidRequestID(s string) bool {
	return requestIDRegex.MatchString(s)
}

// Params Transactionの構成要素
type Params struct {
	TransactionID   string
	RequestID       string
	MerchantID      string
	TransactionType TransactionType
	State           enums.TransactionState
	ResponseStatus  enums.ResponseStatus
	ResponseCode    string
	Amount          int64 // 最小通貨単位
	Currency        currency.Code
	ReferenceID     string // 返金対象の元取引ID (なければ空)
	Response        []byte // 返却したレスポンスのJSON
}

// Transaction サンドボックスが処理した一件の取引
//
// 作成後は不変で、同じリクエストIDでの再送には保存済みのレスポンスを返す。
type Transaction struct {
	transactionID   string
	requestID       string
	merchantID      string
	transactionType TransactionType
	state           enums.TransactionState
	responseStatus  enums.ResponseStatus
	responseCode    string
	amount          int64
	currency        currency.Code
	referenceID     string
	response        []byte
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTransaction 新しいTransactionエンティティを作成
func NewTransaction(p Params) (*Transaction, error) {
	now := time.Now().UTC()
	return Reconstruct(p, now, now)
}

// Reconstruct 保存済みの値からTransactionエンティティを復元
func Reconstruct(p Params, createdAt, updatedAt time.Time) (*Transaction, error) {
	if !idRegex.MatchString(p.TransactionID) {
		return nil, ErrInvalidTransactionID
	}
	if !merchantIDRegex.MatchString(p.MerchantID) {
		return nil, ErrInvalidMerchantID
	}
	if !requestIDRegex.MatchString(p.RequestID) {
		return nil, ErrInvalidRequestID
	}
	if !p.TransactionType.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, p.TransactionType)
	}
	if !p.State.IsKnown() {
		return nil, fmt.Errorf("%w: unknown state %q", ErrInvalidTransaction, p.State)
	}
	if !p.ResponseStatus.IsKnown() {
		return nil, fmt.Errorf("%w: unknown response status %q", ErrInvalidTransaction, p.ResponseStatus)
	}
	if p.Amount < 0 {
		return nil, ErrInvalidAmount
	}
	if p.Amount > MaxAmount {
		return nil, ErrAmountTooLarge
	}
	if p.Currency != "" && !p.Currency.IsKnown() {
		return nil, fmt.Errorf("%w: %s", currency.ErrUnknownCurrency, p.Currency)
	}

	response := make([]byte, len(p.Response))
	copy(response, p.Response)

	return &Transaction{
		transactionID:   p.TransactionID,
		requestID:       p.RequestID,
		merchantID:      p.MerchantID,
		transactionType: p.TransactionType,
		state:           p.State,
		responseStatus:  p.ResponseStatus,
		responseCode:    p.ResponseCode,
		amount:          p.Amount,
		currency:        p.Currency,
		referenceID:     p.ReferenceID,
		response:        response,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// TransactionID トランザクションIDを返す
func (t *Transaction) TransactionID() string {
	return t.transactionID
}

// RequestID リクエストIDを返す
func (t *Transaction) RequestID() string {
	return t.requestID
}

// MerchantID マーチャントIDを返す
func (t *Transaction) MerchantID() string {
	return t.merchantID
}

// TransactionType トランザクションタイプを返す
func (t *Transaction) TransactionType() TransactionType {
	return t.transactionType
}

// State 取引状態を返す
func (t *Transaction) State() enums.TransactionState {
	return t.state
}

// ResponseStatus 応答ステータスを返す
func (t *Transaction) ResponseStatus() enums.ResponseStatus {
	return t.responseStatus
}

// ResponseCode 応答コードを返す
func (t *Transaction) ResponseCode() string {
	return t.responseCode
}

// Amount 金額を返す
func (t *Transaction) Amount() int64 {
	return t.amount
}

// Currency 通貨を返す
func (t *Transaction) Currency() currency.Code {
	return t.currency
}

// ReferenceID 返金対象の元取引IDを返す
func (t *Transaction) ReferenceID() string {
	return t.referenceID
}

// Response 保存済みレスポンスのコピーを返す
func (t *Transaction) Response() []byte {
	out := make([]byte, len(t.response))
	copy(out, t.response)
	return out
}

// CreatedAt 作成日時を返す
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt 更新日時を返す
func (t *Transaction) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsCompleted 返金額の集計対象かどうかを返す
func (t *Transaction) IsCompleted() bool {
	return t.state == enums.TransactionStateCompleted
}

// BelongsTo 指定マーチャントの取引かどうかを返す
func (t *Transaction) BelongsTo(merchantID string) bool {
	return t.merchantID == merchantID
}

// MustNewTransaction テスト用ヘルパー: NewTransactionを呼び出し、エラーが発生した場合はpanicする
func MustNewTransaction(p Params) *Transaction {
	tx, err := NewTransaction(p)
	if err != nil {
		panic(err)
	}
	return tx
}
