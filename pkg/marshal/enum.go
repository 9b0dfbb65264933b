package marshal

import "reflect"

// Enum 閉じた集合を持つ文字列型
// IsKnown が false の値は送信時に ValidationError となり、受信時は生の文字列のまま保持される。
type Enum interface {
	IsKnown() bool
}

// EnumMembers 許可値の一覧を返せる列挙型
type EnumMembers interface {
	Members() []string
}

var (
	enumType        = reflect.TypeOf((*Enum)(nil)).Elem()
	enumMembersType = reflect.TypeOf((*EnumMembers)(nil)).Elem()
)

// IsKnownValue vが列挙型であれば既知の値かどうかを、列挙型でなければtrueを返す
func IsKnownValue(v any) bool {
	if e, ok := v.(Enum); ok {
		return e.IsKnown()
	}
	return true
}

func enumMembers(t reflect.Type) []string {
	if !t.Implements(enumMembersType) {
		return nil
	}
	return reflect.Zero(t).Interface().(EnumMembers).Members()
}
