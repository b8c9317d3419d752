package schemavalidator

import (
	"reflect"
	"strings"
)

// GetJSONTag returns the JSON name of a field, or the Go name if it has none.
func GetJSONTag(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return field.Name
	}
	return strings.Split(jsonTag, ",")[0]
}

// GetJSONFieldPath maps a validator namespace ("Field.DataType.ID") to its JSON path
// ("dataType.id"). The first segment is the struct name and is dropped.
func GetJSONFieldPath(structType reflect.Type, namespace string) string {
	for structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	var path []string
	t := structType
	for _, s := range segments {
		// strip slice/map indexes such as "EnumValues[0]"
		name, index, _ := strings.Cut(s, "[")
		if t.Kind() != reflect.Struct {
			path = append(path, s)
			continue
		}
		f, ok := t.FieldByName(name)
		if !ok {
			path = append(path, s)
			continue
		}
		seg := GetJSONTag(f)
		if index != "" {
			seg += "[" + index
		}
		path = append(path, seg)
		t = f.Type
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
			t = t.Elem()
		}
	}
	return strings.Join(path, ".")
}
