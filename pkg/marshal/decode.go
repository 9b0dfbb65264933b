package marshal

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
)

// Unmarshal ワイヤーJSONをペイロードに変換する
// 必須フィールドの欠落や型の不一致は SchemaError を返し、その場合 v は変更されない。
// 列挙型に未知の値が来た場合は生の文字列のまま保持する。
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: Unmarshal requires a non-nil pointer", ErrInvalidPayloadType)
	}
	target := rv.Elem()
	pt, err := DescribeType(target.Type())
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return &SchemaError{Type: pt.Name, Reason: "malformed JSON"}
	}
	out, err := decodeObject(pt, gjson.ParseBytes(data), "")
	if err != nil {
		return err
	}
	target.Set(out)
	return nil
}

// UnmarshalResult デコード済みのgjson.Resultからペイロードに変換する
func UnmarshalResult(res gjson.Result, v any) error {
	return Unmarshal([]byte(res.Raw), v)
}

func decodeObject(pt *PayloadType, res gjson.Result, path string) (reflect.Value, error) {
	if !res.IsObject() {
		return reflect.Value{}, &SchemaError{Type: pt.Name, Path: path, Expected: "object", Actual: jsonKind(res), Reason: "type mismatch"}
	}
	out := reflect.New(pt.GoType).Elem()
	seen := make(map[string]bool, len(pt.Fields))

	var err error
	res.ForEach(func(k, val gjson.Result) bool {
		key := k.String()
		fpath := joinPath(path, key)
		f, ok := pt.byWire[key]
		if !ok {
			if pt.Open {
				err = decodeExtra(pt, out.Field(pt.extrasIndex), key, val, fpath)
			}
			return err == nil
		}
		seen[key] = true
		err = decodeField(pt, f, val, out.Field(f.index), fpath)
		return err == nil
	})
	if err != nil {
		return reflect.Value{}, err
	}

	for _, f := range pt.Fields {
		if seen[f.WireName] {
			continue
		}
		fpath := joinPath(path, f.WireName)
		switch {
		case f.HasDefault:
			if err := decodeField(pt, f, defaultResult(f), out.Field(f.index), fpath); err != nil {
				return reflect.Value{}, err
			}
		case f.Optionality == Required:
			return reflect.Value{}, &SchemaError{Type: pt.Name, Field: f.Name, Path: fpath, Reason: "required field is missing"}
		}
	}
	return out, nil
}

func decodeField(pt *PayloadType, f *FieldSpec, val gjson.Result, dst reflect.Value, path string) error {
	if val.Type == gjson.Null {
		if f.Optionality == Required {
			return &SchemaError{Type: pt.Name, Field: f.Name, Path: path, Expected: f.Type.Kind.String(), Actual: "null", Reason: "required field is null"}
		}
		if f.wrapped {
			dst.Addr().Interface().(settable).setNull()
		}
		return nil
	}
	v, err := decodeValue(pt, f, f.Type, val, path)
	if err != nil {
		return err
	}
	if f.wrapped {
		dst.Addr().Interface().(settable).setValue(v)
		return nil
	}
	dst.Set(v)
	return nil
}

func decodeExtra(pt *PayloadType, dst reflect.Value, key string, val gjson.Result, path string) error {
	v, err := decodeValue(pt, nil, pt.extras.Elem, val, path)
	if err != nil {
		return err
	}
	if dst.IsNil() {
		dst.Set(reflect.MakeMap(dst.Type()))
	}
	dst.SetMapIndex(reflect.ValueOf(key).Convert(dst.Type().Key()), v)
	return nil
}

func decodeValue(pt *PayloadType, f *FieldSpec, ts *TypeSpec, val gjson.Result, path string) (reflect.Value, error) {
	mismatch := func(reason string) error {
		return &SchemaError{Type: pt.Name, Field: fieldName(f), Path: path, Expected: ts.Kind.String(), Actual: jsonKind(val), Reason: reason}
	}
	t := ts.GoType

	switch ts.Kind {
	case KindString, KindEnum:
		if val.Type != gjson.String {
			return reflect.Value{}, mismatch("type mismatch")
		}
		return reflect.ValueOf(val.Str).Convert(t), nil

	case KindInteger:
		if val.Type != gjson.Number {
			return reflect.Value{}, mismatch("type mismatch")
		}
		out := reflect.New(t).Elem()
		if out.CanInt() {
			n, ok := parseInt(val)
			if !ok || out.OverflowInt(n) {
				return reflect.Value{}, mismatch("number is not an integer in range")
			}
			out.SetInt(n)
			return out, nil
		}
		n, ok := parseUint(val)
		if !ok || out.OverflowUint(n) {
			return reflect.Value{}, mismatch("number is not an unsigned integer in range")
		}
		out.SetUint(n)
		return out, nil

	case KindNumber:
		if val.Type != gjson.Number {
			return reflect.Value{}, mismatch("type mismatch")
		}
		out := reflect.New(t).Elem()
		if out.OverflowFloat(val.Num) {
			return reflect.Value{}, mismatch("number out of range")
		}
		out.SetFloat(val.Num)
		return out, nil

	case KindBoolean:
		if val.Type != gjson.True && val.Type != gjson.False {
			return reflect.Value{}, mismatch("type mismatch")
		}
		return reflect.ValueOf(val.Type == gjson.True).Convert(t), nil

	case KindObject:
		return decodeObject(ts.Object, val, path)

	case KindList:
		if !val.IsArray() {
			return reflect.Value{}, mismatch("type mismatch")
		}
		items := val.Array()
		if t.Kind() == reflect.Array {
			if len(items) != t.Len() {
				return reflect.Value{}, mismatch(fmt.Sprintf("expected %d elements", t.Len()))
			}
		}
		out := reflect.New(t).Elem()
		if t.Kind() == reflect.Slice {
			out = reflect.MakeSlice(t, len(items), len(items))
		}
		for i, item := range items {
			el, err := decodeValue(pt, f, ts.Elem, item, indexPath(path, i))
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(el)
		}
		return out, nil

	case KindMap:
		if !val.IsObject() {
			return reflect.Value{}, mismatch("type mismatch")
		}
		out := reflect.MakeMap(t)
		var err error
		val.ForEach(func(k, item gjson.Result) bool {
			var el reflect.Value
			el, err = decodeValue(pt, f, ts.Elem, item, joinPath(path, k.String()))
			if err != nil {
				return false
			}
			out.SetMapIndex(reflect.ValueOf(k.String()).Convert(t.Key()), el)
			return true
		})
		if err != nil {
			return reflect.Value{}, err
		}
		return out, nil

	default:
		raw := val.Value()
		if raw == nil {
			return reflect.Zero(t), nil
		}
		return reflect.ValueOf(raw), nil
	}
}

func parseInt(val gjson.Result) (int64, bool) {
	if n, err := strconv.ParseInt(val.Raw, 10, 64); err == nil {
		return n, true
	}
	f := val.Num
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// parseUint parseInt と同じ基準で整数値かどうかを判定する
func parseUint(val gjson.Result) (uint64, bool) {
	if n, err := strconv.ParseUint(val.Raw, 10, 64); err == nil {
		return n, true
	}
	f := val.Num
	if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

func defaultResult(f *FieldSpec) gjson.Result {
	switch f.Type.Kind {
	case KindString, KindEnum:
		return gjson.Parse(strconv.Quote(f.Default))
	default:
		return gjson.Parse(f.Default)
	}
}

func jsonKind(res gjson.Result) string {
	switch res.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if res.IsArray() {
			return "array"
		}
		if res.IsObject() {
			return "object"
		}
		return "unknown"
	}
}
