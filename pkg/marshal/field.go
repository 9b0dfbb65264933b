// Package marshal は型付きペイロードとワイヤーJSONの相互変換を提供する。
//
// 送信側のフィールドは Field[T] で「未指定 (NotGiven)」「明示的な null」「値あり」の三状態を持ち、
// 未指定のフィールドはワイヤーに現れない。受信側のオプショナルフィールドは Opt[T] で
// 「欠落」「null」「値あり」を区別する。フィールド名は json タグのワイヤー名 (camelCase) に
// 対応付けられ、IsKnown を持つ文字列型は閉じた列挙として扱われる。
package marshal

import (
	"fmt"
	"reflect"
)

// presence フィールドの存在状態
type presence uint8

const (
	presenceAbsent presence = iota
	presenceNull
	presenceValue
)

// wrapper Field[T] / Opt[T] が満たす読み取り用インターフェース
type wrapper interface {
	presence() presence
	reflectValue() reflect.Value
	elemType() reflect.Type
	outbound() bool
}

// settable Field[T] / Opt[T] のポインタが満たす書き込み用インターフェース
type settable interface {
	setNull()
	setValue(v reflect.Value)
}

var (
	wrapperType  = reflect.TypeOf((*wrapper)(nil)).Elem()
	settableType = reflect.TypeOf((*settable)(nil)).Elem()
)

// Field 送信ペイロードの三状態フィールド
// ゼロ値は NotGiven で、エンコード時にキーごと省略される。
type Field[T any] struct {
	value T
	state presence
}

// Value 値ありのFieldを作成
func Value[T any](v T) Field[T] {
	return Field[T]{value: v, state: presenceValue}
}

// Null 明示的にnullを送るFieldを作成
func Null[T any]() Field[T] {
	return Field[T]{state: presenceNull}
}

// NotGiven 未指定のFieldを作成（ゼロ値と同じ）
func NotGiven[T any]() Field[T] {
	return Field[T]{}
}

// IsGiven 呼び出し側が値またはnullを指定したかどうかを返す
func (f Field[T]) IsGiven() bool {
	return f.state != presenceAbsent
}

// IsNull 明示的なnullかどうかを返す
func (f Field[T]) IsNull() bool {
	return f.state == presenceNull
}

// Get 値を返す。値がない場合はfalse
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == presenceValue
}

// ValueOr 値があればそれを、なければdefを返す
func (f Field[T]) ValueOr(def T) T {
	if f.state == presenceValue {
		return f.value
	}
	return def
}

// String ログ出力用の文字列表現を返す
func (f Field[T]) String() string {
	switch f.state {
	case presenceNull:
		return "null"
	case presenceValue:
		return fmt.Sprintf("%v", f.value)
	default:
		return "NOT_GIVEN"
	}
}

func (f Field[T]) presence() presence { return f.state }

func (f Field[T]) reflectValue() reflect.Value { return reflect.ValueOf(&f.value).Elem() }

func (f Field[T]) elemType() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (f Field[T]) outbound() bool { return true }

func (f *Field[T]) setNull() {
	var zero T
	f.value, f.state = zero, presenceNull
}

func (f *Field[T]) setValue(v reflect.Value) {
	reflect.ValueOf(&f.value).Elem().Set(v)
	f.state = presenceValue
}

// Opt 受信ペイロードのオプショナルフィールド
// ゼロ値はワイヤーに存在しなかったことを表す。
type Opt[T any] struct {
	value T
	state presence
}

// Some 値ありのOptを作成
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, state: presenceValue}
}

// NullOpt nullを受信したOptを作成
func NullOpt[T any]() Opt[T] {
	return Opt[T]{state: presenceNull}
}

// IsPresent 値を受信したかどうかを返す
func (o Opt[T]) IsPresent() bool {
	return o.state == presenceValue
}

// IsNull nullを受信したかどうかを返す
func (o Opt[T]) IsNull() bool {
	return o.state == presenceNull
}

// IsAbsent キー自体が存在しなかったかどうかを返す
func (o Opt[T]) IsAbsent() bool {
	return o.state == presenceAbsent
}

// Get 値を返す。値がない場合はfalse
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.state == presenceValue
}

// ValueOr 値があればそれを、なければdefを返す
func (o Opt[T]) ValueOr(def T) T {
	if o.state == presenceValue {
		return o.value
	}
	return def
}

// String ログ出力用の文字列表現を返す
func (o Opt[T]) String() string {
	switch o.state {
	case presenceNull:
		return "null"
	case presenceValue:
		return fmt.Sprintf("%v", o.value)
	default:
		return "absent"
	}
}

func (o Opt[T]) presence() presence { return o.state }

func (o Opt[T]) reflectValue() reflect.Value { return reflect.ValueOf(&o.value).Elem() }

func (o Opt[T]) elemType() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (o Opt[T]) outbound() bool { return false }

func (o *Opt[T]) setNull() {
	var zero T
	o.value, o.state = zero, presenceNull
}

func (o *Opt[T]) setValue(v reflect.Value) {
	reflect.ValueOf(&o.value).Elem().Set(v)
	o.state = presenceValue
}
