package marshal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation 送信値がフィールド制約に違反したエラー
	ErrValidation = errors.New("validation error")
	// ErrSchema 受信ペイロードが型定義と一致しないエラー
	ErrSchema = errors.New("schema error")
	// ErrInvalidPayloadType ペイロード型の宣言自体が不正なエラー
	ErrInvalidPayloadType = errors.New("invalid payload type")
)

// ValidationError 送信時の制約違反
// ネットワーク呼び出しの前に返され、自動リトライの対象にはならない。
type ValidationError struct {
	Type     string   // フィールドを宣言しているペイロード型
	Field    string   // Goのフィールド名
	Path     string   // ワイヤー上のパス (例: paymentMethodType.card.cardType)
	Value    any      // 受け取った値
	Expected []string // 列挙の場合の許可値
	Reason   string
}

// Error エラーメッセージを返す
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation error: %s.%s (%s): %s", e.Type, e.Field, e.Path, e.Reason)
	if e.Value != nil {
		fmt.Fprintf(&b, ": got %q", fmt.Sprint(e.Value))
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expected one of %s", strings.Join(e.Expected, ", "))
	}
	return b.String()
}

// Unwrap ErrValidationを返す
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SchemaError 受信ペイロードの構造エラー
// 同じレスポンスを再試行しても結果は変わらないため、リトライしない。
type SchemaError struct {
	Type     string // フィールドを宣言しているペイロード型
	Field    string // Goのフィールド名 (型全体のエラーでは空)
	Path     string // ワイヤー上のパス
	Expected string
	Actual   string
	Reason   string
}

// Error エラーメッセージを返す
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("schema error: ")
	b.WriteString(e.Type)
	if e.Field != "" {
		b.WriteString(".")
		b.WriteString(e.Field)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	fmt.Fprintf(&b, ": %s", e.Reason)
	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Actual)
	}
	return b.String()
}

// Unwrap ErrSchemaを返す
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
