package marshal

import (
	"bytes"
	"encoding/json"
)

// Object キーの挿入順を保持するJSONオブジェクト
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject 空のObjectを作成
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set 値を設定する。既存のキーは位置を保ったまま上書きする
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get キーの値を返す
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has キーが存在するかどうかを返す
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys 挿入順のキー一覧を返す
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len キー数を返す
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON キーの順序を保ったままJSONに変換する
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map 入れ子のObjectを含めて通常のmapに変換する
// structpb.NewStruct など順序を必要としない変換先に渡すために使う。
func (o *Object) Map() map[string]any {
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		m[k] = plain(o.values[k])
	}
	return m
}

func plain(v any) any {
	switch x := v.(type) {
	case *Object:
		return x.Map()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	default:
		return x
	}
}
