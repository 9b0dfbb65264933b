package marshal

import (
	"net/url"
	"reflect"
	"strconv"
)

// EncodeParam パス・ヘッダー・クエリに載せる値を文字列化する
// 列挙型は既知の値のみ受け付ける。NotGiven の Field は ok=false を返す。
func EncodeParam(name string, v any) (s string, ok bool, err error) {
	if w, isWrapper := v.(wrapper); isWrapper {
		if w.presence() != presenceValue {
			return "", false, nil
		}
		v = w.reflectValue().Interface()
	}
	if e, isEnum := v.(Enum); isEnum && !e.IsKnown() {
		var expected []string
		if m, hasMembers := v.(EnumMembers); hasMembers {
			expected = m.Members()
		}
		return "", false, &ValidationError{
			Type:     "param",
			Field:    name,
			Path:     name,
			Value:    v,
			Expected: expected,
			Reason:   "value is not a member of the enumeration",
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	default:
		return "", false, &ValidationError{Type: "param", Field: name, Path: name, Value: v, Reason: "unsupported parameter type"}
	}
}

// RequireParam 必須パラメータを文字列化する。空文字は ValidationError
func RequireParam(name string, v any) (string, error) {
	s, ok, err := EncodeParam(name, v)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return "", &ValidationError{Type: "param", Field: name, Path: name, Reason: "expected a non-empty value"}
	}
	return s, nil
}

// PathEscape パスセグメント用にパーセントエンコードする
func PathEscape(s string) string {
	return url.PathEscape(s)
}
