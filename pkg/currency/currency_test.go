package currency

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{name: "正常系: USD", input: "USD", want: USD},
		{name: "正常系: JPY", input: "JPY", want: JPY},
		{name: "異常系: 未知のコード", input: "ZZZ", wantErr: true},
		{name: "異常系: 小文字", input: "usd", wantErr: true},
		{name: "異常系: 空文字列", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCode_Members(t *testing.T) {
	got := USD.Members()
	assert.Len(t, got, 135)
	assert.Contains(t, got, "EUR")
	assert.NotContains(t, got, "ZZZ")
	for _, m := range got {
		assert.True(t, Code(m).IsKnown(), m)
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		code    Code
		want    int64
		wantErr error
	}{
		{name: "正常系: 2桁通貨", amount: "10.25", code: USD, want: 1025},
		{name: "正常系: 0桁通貨", amount: "1500", code: JPY, want: 1500},
		{name: "正常系: 整数の2桁通貨", amount: "3", code: EUR, want: 300},
		{name: "異常系: 最小単位未満の端数", amount: "10.255", code: USD, wantErr: ErrFractionalMinorUnit},
		{name: "異常系: 0桁通貨の小数", amount: "1.5", code: JPY, wantErr: ErrFractionalMinorUnit},
		{name: "異常系: 未知の通貨", amount: "1", code: Code("ZZZ"), wantErr: ErrUnknownCurrency},
		{name: "正常系: int64の上限", amount: "92233720368547758.07", code: USD, want: math.MaxInt64},
		{name: "異常系: int64を超える金額", amount: "1e30", code: USD, wantErr: ErrAmountOutOfRange},
		{name: "異常系: int64の上限を1超える", amount: "92233720368547758.08", code: USD, wantErr: ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(decimal.RequireFromString(tt.amount), tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.True(t, decimal.RequireFromString("10.25").Equal(FromMinorUnits(1025, USD)))
	assert.True(t, decimal.NewFromInt(1500).Equal(FromMinorUnits(1500, JPY)))
	assert.Equal(t, "10.00 USD", Format(1000, USD))
	assert.Equal(t, "1500 JPY", Format(1500, JPY))
}
