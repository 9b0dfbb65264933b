package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownCurrency 未知の通貨コードエラー
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrFractionalMinorUnit 最小単位に満たない端数エラー
	ErrFractionalMinorUnit = errors.New("amount has a fraction below the minor unit")
	// ErrAmountOutOfRange 最小単位に換算するとint64に収まらないエラー
	ErrAmountOutOfRange = errors.New("amount is out of range")
)

// 小数点以下の桁数が0の通貨
var zeroDecimal = map[Code]bool{
	BIF: true, CLP: true, DJF: true, ISK: true, JPY: true,
	KMF: true, KRW: true, PYG: true, RWF: true, UGX: true,
	VND: true, VUV: true, XAF: true, XOF: true, XPF: true,
}

// NewCode 文字列から通貨コードを作成
func NewCode(s string) (Code, error) {
	c := Code(s)
	if !c.IsKnown() {
		return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, s)
	}
	return c, nil
}

// String 文字列表現を返す
func (c Code) String() string {
	return string(c)
}

// IsKnown 既知の通貨コードかどうかを返す
func (c Code) IsKnown() bool {
	for _, m := range members {
		if m == c {
			return true
		}
	}
	return false
}

// Members 既知の通貨コードの一覧を返す
func (c Code) Members() []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = string(m)
	}
	return out
}

// Exponent 最小単位の桁数を返す
func (c Code) Exponent() int32 {
	if zeroDecimal[c] {
		return 0
	}
	return 2
}

// ToMinorUnits 金額を最小単位の整数に換算する (例: USD 10.25 -> 1025)
func ToMinorUnits(amount decimal.Decimal, c Code) (int64, error) {
	if !c.IsKnown() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, c)
	}
	shifted := amount.Shift(c.Exponent())
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s %s", ErrFractionalMinorUnit, amount.String(), c)
	}
	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s %s", ErrAmountOutOfRange, amount.String(), c)
	}
	return shifted.IntPart(), nil
}

// FromMinorUnits 最小単位の整数を金額に換算する (例: USD 1025 -> 10.25)
func FromMinorUnits(minor int64, c Code) decimal.Decimal {
	return decimal.New(minor, -c.Exponent())
}

// Format 通貨の桁数に合わせて金額を文字列化する
func Format(minor int64, c Code) string {
	return FromMinorUnits(minor, c).StringFixed(c.Exponent()) + " " + c.String()
}
