package marshal

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Encode ペイロードをワイヤー表現のObjectに変換する
// NotGiven のフィールドは出力に含まれず、Null は optional-nullable のフィールドに限り null として出力される。
// 列挙型の値が既知の集合に含まれない場合は ValidationError を返す。
func Encode(v any) (*Object, error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil payload", ErrInvalidPayloadType)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil payload", ErrInvalidPayloadType)
	}
	pt, err := DescribeType(rv.Type())
	if err != nil {
		return nil, err
	}
	return encodeObject(pt, rv, "")
}

// Marshal ペイロードをJSONバイト列に変換する
func Marshal(v any) ([]byte, error) {
	obj, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return obj.MarshalJSON()
}

func encodeObject(pt *PayloadType, rv reflect.Value, path string) (*Object, error) {
	obj := NewObject()
	for _, f := range pt.Fields {
		fv := rv.Field(f.index)
		fpath := joinPath(path, f.WireName)
		if f.wrapped {
			w := fv.Interface().(wrapper)
			switch w.presence() {
			case presenceAbsent:
				if f.Optionality == Required {
					return nil, &ValidationError{Type: pt.Name, Field: f.Name, Path: fpath, Reason: "required field is not given"}
				}
				continue
			case presenceNull:
				if f.Optionality != OptionalNullable {
					return nil, &ValidationError{Type: pt.Name, Field: f.Name, Path: fpath, Reason: fmt.Sprintf("null is not allowed for %s field", f.Optionality)}
				}
				obj.Set(f.WireName, nil)
				continue
			}
			fv = w.reflectValue()
		}
		val, err := encodeValue(pt, f, f.Type, fv, fpath)
		if err != nil {
			return nil, err
		}
		obj.Set(f.WireName, val)
	}

	if pt.Open {
		extras := rv.Field(pt.extrasIndex)
		for _, key := range sortedKeys(extras) {
			if _, declared := pt.byWire[key.String()]; declared {
				continue
			}
			val, err := encodeValue(pt, nil, pt.extras.Elem, extras.MapIndex(key), joinPath(path, key.String()))
			if err != nil {
				return nil, err
			}
			obj.Set(key.String(), val)
		}
	}
	return obj, nil
}

func encodeValue(pt *PayloadType, f *FieldSpec, ts *TypeSpec, v reflect.Value, path string) (any, error) {
	switch ts.Kind {
	case KindString:
		return v.String(), nil
	case KindEnum:
		if !v.Interface().(Enum).IsKnown() {
			return nil, &ValidationError{
				Type:     pt.Name,
				Field:    fieldName(f),
				Path:     path,
				Value:    v.String(),
				Expected: ts.Members,
				Reason:   "value is not a member of the enumeration",
			}
		}
		return v.String(), nil
	case KindInteger:
		if v.CanInt() {
			return v.Int(), nil
		}
		return v.Uint(), nil
	case KindNumber:
		n := v.Float()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, &ValidationError{Type: pt.Name, Field: fieldName(f), Path: path, Value: n, Reason: "number is not finite"}
		}
		return n, nil
	case KindBoolean:
		return v.Bool(), nil
	case KindObject:
		return encodeObject(ts.Object, v, path)
	case KindList:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			el, err := encodeValue(pt, f, ts.Elem, v.Index(i), indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = el
		}
		return out, nil
	case KindMap:
		obj := NewObject()
		for _, key := range sortedKeys(v) {
			el, err := encodeValue(pt, f, ts.Elem, v.MapIndex(key), joinPath(path, key.String()))
			if err != nil {
				return nil, err
			}
			obj.Set(key.String(), el)
		}
		return obj, nil
	default:
		if v.IsNil() {
			return nil, nil
		}
		return v.Interface(), nil
	}
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func fieldName(f *FieldSpec) string {
	if f == nil {
		return "extras"
	}
	return f.Name
}
