package yaml

import (
	"reflect"
	"strings"
)

// fieldInfo is what unmarshalStruct needs to know about one struct field's
// "yaml" tag: the key it binds to, and whether the field is excluded.
type fieldInfo struct {
	name string
	skip bool
}

// getFieldInfo extracts field information from a struct field tag.
func getFieldInfo(field reflect.StructField) fieldInfo {
	tag := field.Tag.Get("yaml")

	// No tag - use lowercase field name (YAML convention)
	if tag == "" {
		return fieldInfo{name: strings.ToLower(field.Name)}
	}

	name, _, _ := strings.Cut(tag, ",")

	// Check for "-" (skip field)
	if name == "-" {
		return fieldInfo{skip: true}
	}

	// Use field name if tag name is empty
	if name == "" {
		name = field.Name
	}

	return fieldInfo{name: name}
}
