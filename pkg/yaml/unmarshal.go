package yaml

import (
	"errors"
	"fmt"
	"reflect"
)

// Unmarshaler is implemented by types that can unmarshal a YAML
// description of themselves from a single scalar's materialised string.
type Unmarshaler interface {
	UnmarshalYAML(string) error
}

// Unmarshal parses data into a DOM tree and decodes it into the value
// pointed to by v, allocating maps, slices, and pointers as necessary.
//
// Object keys match struct fields by their `yaml:"name"` tag, falling back to the lowercased field
// name (see fields.go's getFieldInfo). Unmarshalling into an interface{}
// yields one of: bool, int64, float64, string, []interface{},
// map[string]interface{}, or nil.
func Unmarshal(data []byte, v interface{}) error {
	node, err := ReadDocument(data)
	if err != nil {
		return err
	}
	return UnmarshalNode(node, v)
}

// UnmarshalNode decodes an already-parsed DOM node into v. This is the
// entry point Unmarshal uses once it has a root node, exposed directly for
// callers that already hold a *Node (e.g. a sub-tree picked out via Get).
func UnmarshalNode(node *Node, v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || v == nil {
		return errors.New("yaml: Unmarshal(nil)")
	}
	if rv.Kind() != reflect.Ptr {
		return fmt.Errorf("yaml: Unmarshal(non-pointer %s)", rv.Type())
	}
	if rv.IsNil() {
		return fmt.Errorf("yaml: Unmarshal(nil %s)", rv.Type())
	}
	return unmarshalValue(node, rv.Elem())
}

func unmarshalValue(node *Node, rv reflect.Value) error {
	if node.IsNull() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	if u, ok := addr(rv).Interface().(Unmarshaler); ok && node.IsScalar() {
		return u.UnmarshalYAML(node.String())
	}

	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(node, rv.Elem())
	}

	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		val, err := nodeToInterface(node)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(val))
		return nil
	}

	switch node.Kind() {
	case Scalar:
		return unmarshalScalar(node, rv)
	case Object:
		return unmarshalObject(node, rv)
	case Sequence:
		return unmarshalSequence(node, rv)
	default:
		return nil
	}
}

// addr returns a value's address when it is addressable, so a method set
// defined on a pointer receiver (the common case for Unmarshaler) is still
// reachable through it.
func addr(rv reflect.Value) reflect.Value {
	if rv.CanAddr() {
		return rv.Addr()
	}
	return rv
}

func unmarshalScalar(node *Node, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(node.String())
		return nil
	case reflect.Bool:
		rv.SetBool(node.Bool(false))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := node.Int(0)
		if rv.OverflowInt(i) {
			return fmt.Errorf("yaml: value %d overflows %s", i, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := node.Uint(0)
		if rv.OverflowUint(u) {
			return fmt.Errorf("yaml: value %d overflows %s", u, rv.Type())
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		f := node.Float(0)
		if rv.OverflowFloat(f) {
			return fmt.Errorf("yaml: value %v overflows %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	default:
		return fmt.Errorf("yaml: cannot unmarshal scalar into Go value of type %s", rv.Type())
	}
}

func unmarshalObject(node *Node, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Struct:
		return unmarshalStruct(node, rv)
	case reflect.Map:
		return unmarshalMap(node, rv)
	default:
		return fmt.Errorf("yaml: cannot unmarshal mapping into Go value of type %s", rv.Type())
	}
}

func unmarshalStruct(node *Node, rv reflect.Value) error {
	structType := rv.Type()

	fieldMap := make(map[string]int, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		info := getFieldInfo(field)
		if info.skip {
			continue
		}
		fieldMap[info.name] = i
	}

	for _, key := range node.Keys() {
		fieldIdx, ok := fieldMap[key]
		if !ok {
			continue
		}
		if err := unmarshalValue(node.Get(key), rv.Field(fieldIdx)); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalMap(node *Node, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("yaml: unsupported map key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	}

	valueType := mapType.Elem()
	for _, key := range node.Keys() {
		elem := reflect.New(valueType).Elem()
		if err := unmarshalValue(node.Get(key), elem); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(mapType.Key()), elem)
	}
	return nil
}

func unmarshalSequence(node *Node, rv reflect.Value) error {
	items := node.Items()

	switch rv.Kind() {
	case reflect.Slice:
		slice := reflect.MakeSlice(rv.Type(), len(items), len(items))
		for i, item := range items {
			if err := unmarshalValue(item, slice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil
	case reflect.Array:
		if len(items) > rv.Len() {
			return fmt.Errorf("yaml: %d elements don't fit in array of size %d", len(items), rv.Len())
		}
		for i, item := range items {
			if err := unmarshalValue(item, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("yaml: cannot unmarshal sequence into Go value of type %s", rv.Type())
	}
}

// nodeToInterface is unmarshalValue's target for interface{} fields: the
// same {bool, int64, float64, string, []interface{},
// map[string]interface{}, nil} shape Unmarshal's doc comment promises.
func nodeToInterface(node *Node) (interface{}, error) {
	switch node.Kind() {
	case Null:
		return nil, nil
	case Scalar:
		return scalarToInterface(node), nil
	case Sequence:
		items := node.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			v, err := nodeToInterface(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case Object:
		out := make(map[string]interface{}, node.Len())
		for _, key := range node.Keys() {
			v, err := nodeToInterface(node.Get(key))
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, nil
	}
}

// scalarToInterface guesses the narrowest Go type a plain scalar's text
// represents: bool, then integer, then float, falling back to string.
func scalarToInterface(node *Node) interface{} {
	s := node.String()
	if trueTokens[s] {
		return true
	}
	if falseTokens[s] {
		return false
	}
	if i, ok := tryInt(s); ok {
		return i
	}
	if f, ok := tryFloat(s); ok {
		return f
	}
	return s
}
