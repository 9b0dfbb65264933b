package marshal

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind ワイヤー上の値の種別
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindEnum
	KindObject
	KindList
	KindMap
	KindAny
)

// String 種別名を返す
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "any"
	}
}

// Optionality フィールドの必須性
type Optionality int

const (
	// OptionalNullable 省略可能で、明示的なnullも許可する (タグ指定なし)
	OptionalNullable Optionality = iota
	// Required 必須 (タグ ",required")
	Required
	// OptionalOmittable 省略可能だがnullは許可しない (タグ ",omittable")
	OptionalOmittable
)

// String 必須性の名前を返す
func (o Optionality) String() string {
	switch o {
	case Required:
		return "required"
	case OptionalOmittable:
		return "optional-omittable"
	default:
		return "optional-nullable"
	}
}

// TypeSpec フィールド値の型定義
type TypeSpec struct {
	Kind    Kind
	GoType  reflect.Type
	Elem    *TypeSpec    // KindList / KindMap の要素型
	Object  *PayloadType // KindObject のペイロード型
	Members []string     // KindEnum の許可値
}

// FieldSpec ペイロード型の一つのフィールド定義
type FieldSpec struct {
	Name        string // Goのフィールド名
	WireName    string // ワイヤー上のキー
	Type        *TypeSpec
	Optionality Optionality
	Default     string
	HasDefault  bool

	index   int
	wrapped bool
}

// PayloadType 宣言順に並んだフィールド定義の集合
// Open な型は未知のキーを extras フィールドに集める。
type PayloadType struct {
	Name   string
	GoType reflect.Type
	Fields []*FieldSpec
	Open   bool

	byWire      map[string]*FieldSpec
	extrasIndex int
	extras      *TypeSpec
}

// Field ワイヤー名からフィールド定義を返す
func (p *PayloadType) Field(wireName string) (*FieldSpec, bool) {
	f, ok := p.byWire[wireName]
	return f, ok
}

// Describe 値の型からペイロード型定義を導出する
func Describe(v any) (*PayloadType, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidPayloadType)
	}
	return DescribeType(t)
}

// DescribeType 構造体型からペイロード型定義を導出する
// 結果はキャッシュせず、呼び出しごとに導出する。
func DescribeType(t reflect.Type) (*PayloadType, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidPayloadType, t)
	}
	d := &describer{seen: make(map[reflect.Type]*PayloadType)}
	return d.payload(t)
}

type describer struct {
	seen map[reflect.Type]*PayloadType
}

func (d *describer) payload(t reflect.Type) (*PayloadType, error) {
	if pt, ok := d.seen[t]; ok {
		return pt, nil
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	pt := &PayloadType{
		Name:        name,
		GoType:      t,
		byWire:      make(map[string]*FieldSpec),
		extrasIndex: -1,
	}
	d.seen[t] = pt

	names := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		wire, opts := parseTag(sf)
		if wire == "-" {
			if opts["extras"] {
				if err := d.extrasField(pt, sf, i); err != nil {
					return nil, err
				}
			}
			continue
		}
		if names[sf.Name] {
			return nil, fmt.Errorf("%w: %s has duplicate field %s", ErrInvalidPayloadType, name, sf.Name)
		}
		if _, dup := pt.byWire[wire]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate wire name %q", ErrInvalidPayloadType, name, wire)
		}

		ft := sf.Type
		wrapped := ft.Implements(wrapperType) && reflect.PointerTo(ft).Implements(settableType)
		if wrapped {
			ft = reflect.Zero(ft).Interface().(wrapper).elemType()
		}
		ts, err := d.typeSpec(ft)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, sf.Name, err)
		}

		f := &FieldSpec{
			Name:        sf.Name,
			WireName:    wire,
			Type:        ts,
			Optionality: OptionalNullable,
			index:       i,
			wrapped:     wrapped,
		}
		switch {
		case opts["required"]:
			f.Optionality = Required
		case opts["omittable"]:
			f.Optionality = OptionalOmittable
		}
		if def, ok := sf.Tag.Lookup("default"); ok {
			f.Default, f.HasDefault = def, true
		}

		names[sf.Name] = true
		pt.byWire[wire] = f
		pt.Fields = append(pt.Fields, f)
	}
	return pt, nil
}

func (d *describer) extrasField(pt *PayloadType, sf reflect.StructField, index int) error {
	if pt.Open {
		return fmt.Errorf("%w: %s declares more than one extras field", ErrInvalidPayloadType, pt.Name)
	}
	if sf.Type.Kind() != reflect.Map || sf.Type.Key().Kind() != reflect.String {
		return fmt.Errorf("%w: %s.%s extras must be a string-keyed map", ErrInvalidPayloadType, pt.Name, sf.Name)
	}
	ts, err := d.typeSpec(sf.Type)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", pt.Name, sf.Name, err)
	}
	pt.Open = true
	pt.extrasIndex = index
	pt.extras = ts
	return nil
}

func (d *describer) typeSpec(t reflect.Type) (*TypeSpec, error) {
	ts := &TypeSpec{GoType: t}
	if t.Implements(wrapperType) {
		return nil, fmt.Errorf("%w: nested presence wrapper %s", ErrInvalidPayloadType, t)
	}
	if t.Kind() == reflect.String && t.Implements(enumType) {
		ts.Kind = KindEnum
		ts.Members = enumMembers(t)
		return ts, nil
	}
	switch t.Kind() {
	case reflect.String:
		ts.Kind = KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ts.Kind = KindInteger
	case reflect.Float32, reflect.Float64:
		ts.Kind = KindNumber
	case reflect.Bool:
		ts.Kind = KindBoolean
	case reflect.Struct:
		pt, err := d.payload(t)
		if err != nil {
			return nil, err
		}
		ts.Kind, ts.Object = KindObject, pt
	case reflect.Slice, reflect.Array:
		elem, err := d.typeSpec(t.Elem())
		if err != nil {
			return nil, err
		}
		ts.Kind, ts.Elem = KindList, elem
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key of %s must be a string", ErrInvalidPayloadType, t)
		}
		elem, err := d.typeSpec(t.Elem())
		if err != nil {
			return nil, err
		}
		ts.Kind, ts.Elem = KindMap, elem
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return nil, fmt.Errorf("%w: unsupported interface %s", ErrInvalidPayloadType, t)
		}
		ts.Kind = KindAny
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrInvalidPayloadType, t)
	}
	return ts, nil
}

func parseTag(sf reflect.StructField) (string, map[string]bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name, nil
	}
	parts := strings.Split(tag, ",")
	opts := make(map[string]bool, len(parts)-1)
	for _, p := range parts[1:] {
		opts[p] = true
	}
	if parts[0] == "" {
		return sf.Name, opts
	}
	return parts[0], opts
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
