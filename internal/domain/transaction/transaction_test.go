package transaction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
)

func validParams() Params {
	return Params{
		TransactionID:   "txn-123",
		RequestID:       "req-123",
		MerchantID:      "991234567890",
		TransactionType: TransactionTypeRefund,
		State:           enums.TransactionStateCompleted,
		ResponseStatus:  enums.ResponseStatusSuccess,
		ResponseCode:    "APPROVED",
		Amount:          1000,
		Currency:        currency.USD,
		ReferenceID:     "orig-1",
		Response:        []byte(`{"transactionId":"txn-123"}`),
	}
}

func TestNewTransaction(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(p *Params)
		wantError error
	}{
		{
			name:   "正常系: 返金取引",
			modify: func(p *Params) {},
		},
		{
			name: "正常系: 金額0の検証取引",
			modify: func(p *Params) {
				p.TransactionType = TransactionTypeVerification
				p.Amount = 0
				p.ReferenceID = ""
			},
		},
		{
			name:      "異常系: トランザクションIDが空",
			modify:    func(p *Params) { p.TransactionID = "" },
			wantError: ErrInvalidTransactionID,
		},
		{
			name:      "異常系: マーチャントIDに不正な文字",
			modify:    func(p *Params) { p.MerchantID = "merchant id" },
			wantError: ErrInvalidMerchantID,
		},
		{
			name:      "異常系: リクエストIDが長すぎる",
			modify:    func(p *Params) { p.RequestID = strings.Repeat("a", 256) },
			wantError: ErrInvalidRequestID,
		},
		{
			name:      "異常系: 未知の取引種別",
			modify:    func(p *Params) { p.TransactionType = "payment" },
			wantError: ErrInvalidTransaction,
		},
		{
			name:      "異常系: 未知の取引状態",
			modify:    func(p *Params) { p.State = "REFUNDED" },
			wantError: ErrInvalidTransaction,
		},
		{
			name:      "異常系: 未知の応答ステータス",
			modify:    func(p *Params) { p.ResponseStatus = "OK" },
			wantError: ErrInvalidTransaction,
		},
		{
			name:      "異常系: 負の金額",
			modify:    func(p *Params) { p.Amount = -1 },
			wantError: ErrInvalidAmount,
		},
		{
			name:      "異常系: 金額が大きすぎる",
			modify:    func(p *Params) { p.Amount = MaxAmount + 1 },
			wantError: ErrAmountTooLarge,
		},
		{
			name:      "異常系: 未知の通貨",
			modify:    func(p *Params) { p.Currency = "XXX" },
			wantError: currency.ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.modify(&p)

			got, err := NewTransaction(p)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, p.TransactionID, got.TransactionID())
			assert.Equal(t, p.RequestID, got.RequestID())
			assert.Equal(t, p.MerchantID, got.MerchantID())
			assert.Equal(t, p.TransactionType, got.TransactionType())
			assert.Equal(t, p.State, got.State())
			assert.Equal(t, p.ResponseStatus, got.ResponseStatus())
			assert.Equal(t, p.ResponseCode, got.ResponseCode())
			assert.Equal(t, p.Amount, got.Amount())
			assert.Equal(t, p.Currency, got.Currency())
			assert.Equal(t, p.ReferenceID, got.ReferenceID())
			assert.Equal(t, p.Response, got.Response())
			assert.False(t, got.CreatedAt().IsZero())
			assert.Equal(t, got.CreatedAt(), got.UpdatedAt())
		})
	}
}

func TestReconstruct(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Minute)

	got, err := Reconstruct(validParams(), createdAt, updatedAt)
	require.NoError(t, err)
	assert.Equal(t, createdAt, got.CreatedAt())
	assert.Equal(t, updatedAt, got.UpdatedAt())
}

func TestTransaction_ResponseIsCopied(t *testing.T) {
	p := validParams()
	txn := MustNewTransaction(p)

	p.Response[0] = 'X'
	assert.Equal(t, byte('{'), txn.Response()[0])

	out := txn.Response()
	out[0] = 'Y'
	assert.Equal(t, byte('{'), txn.Response()[0])
}

func TestTransaction_IsCompleted(t *testing.T) {
	tests := []struct {
		name  string
		state enums.TransactionState
		want  bool
	}{
		{name: "正常系: COMPLETED", state: enums.TransactionStateCompleted, want: true},
		{name: "正常系: DECLINED", state: enums.TransactionStateDeclined, want: false},
		{name: "正常系: ERROR", state: enums.TransactionStateError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			p.State = tt.state
			assert.Equal(t, tt.want, MustNewTransaction(p).IsCompleted())
		})
	}
}

func TestTransaction_BelongsTo(t *testing.T) {
	txn := MustNewTransaction(validParams())
	assert.True(t, txn.BelongsTo("991234567890"))
	assert.False(t, txn.BelongsTo("other"))
}

func TestMustNewTransaction_Panics(t *testing.T) {
	p := validParams()
	p.TransactionID = ""
	assert.Panics(t, func() { MustNewTransaction(p) })
}

func TestValidIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		valid func(string) bool
		input string
		want  bool
	}{
		{name: "正常系: 数字のマーチャントID", valid: ValidMerchantID, input: "991234567890", want: true},
		{name: "異常系: 空のマーチャントID", valid: ValidMerchantID, input: "", want: false},
		{name: "異常系: 空白を含むマーチャントID", valid: ValidMerchantID, input: "99 12", want: false},
		{name: "正常系: UUIDのリクエストID", valid: ValidRequestID, input: "10cc0270-7bed-11e9-a188-1763956dd7f6", want: true},
		{name: "正常系: 記号を含むリクエストID", valid: ValidRequestID, input: "order:42@shop", want: true},
		{name: "異常系: スラッシュを含むリクエストID", valid: ValidRequestID, input: "a/b", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.valid(tt.input))
		})
	}
}
