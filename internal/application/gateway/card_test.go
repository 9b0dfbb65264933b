package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"online-payments/pkg/enums"
)

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{name: "正常系: Visaのテスト番号", number: "4111111111111111", want: true},
		{name: "正常系: Mastercardのテスト番号", number: "5555555555554444", want: true},
		{name: "正常系: Amexのテスト番号", number: "378282246310005", want: true},
		{name: "異常系: チェックディジット不一致", number: "4111111111111112", want: false},
		{name: "異常系: 数字以外を含む", number: "4111-1111-1111-1111", want: false},
		{name: "異常系: 短すぎる", number: "42", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, luhnValid(tt.number))
		})
	}
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "411111XXXXXX1111", maskAccountNumber("4111111111111111"))
	assert.Equal(t, "378282XXXXX0005", maskAccountNumber("378282246310005"))
	assert.Equal(t, "XXXX", maskAccountNumber("1234"))
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month int
		year  int
		want  bool
	}{
		{name: "正常系: 当月末までは有効", month: 3, year: 2026, want: false},
		{name: "正常系: 将来の期限", month: 1, year: 2030, want: false},
		{name: "正常系: 2桁の年", month: 12, year: 28, want: false},
		{name: "異常系: 前月で期限切れ", month: 2, year: 2026, want: true},
		{name: "異常系: 前年で期限切れ", month: 12, year: 2025, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expired(tt.month, tt.year, now))
		})
	}
}

func TestCardBrand(t *testing.T) {
	tests := []struct {
		number string
		want   enums.CardType
	}{
		{number: "4111111111111111", want: enums.CardTypeVI},
		{number: "5555555555554444", want: enums.CardTypeMC},
		{number: "2223003122003222", want: enums.CardTypeMC},
		{number: "378282246310005", want: enums.CardTypeAX},
		{number: "6011111111111117", want: enums.CardTypeDI},
		{number: "3530111333300000", want: enums.CardTypeJC},
		{number: "9999999999999995", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, cardBrand(tt.number))
		})
	}
}

func TestApprovalCode(t *testing.T) {
	assert.Equal(t, "TXN000", approvalCode("txn-0001"))
	assert.Equal(t, "10CC02", approvalCode("10cc0270-7bed-11e9-a188-1763956dd7f6"))
	assert.Equal(t, "AB", approvalCode("a-b"))
}
