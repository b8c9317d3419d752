package metamodel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
)

const base64Pattern = `^[A-Za-z0-9+/]*={0,2}$`

// kindSchema returns the JSON Schema of a single value of kind.
func kindSchema(kind types.PrimitiveKind) map[string]any {
	switch kind {
	case types.KindString, types.KindPassword:
		return map[string]any{"type": "string"}
	case types.KindBinary:
		return map[string]any{"type": "string", "pattern": base64Pattern}
	case types.KindDate:
		return map[string]any{"type": "string", "format": "date"}
	case types.KindDateTime:
		return map[string]any{"type": "string", "format": "date-time"}
	case types.KindInt32:
		return map[string]any{"type": "integer", "minimum": math.MinInt32, "maximum": math.MaxInt32}
	case types.KindInt64:
		return map[string]any{"type": "integer"}
	case types.KindByte:
		return map[string]any{"type": "integer", "minimum": 0, "maximum": 255}
	case types.KindFloat, types.KindDouble:
		return map[string]any{"type": "number"}
	case types.KindBoolean:
		return map[string]any{"type": "boolean"}
	case types.KindObject:
		return map[string]any{"type": "object"}
	}
	return map[string]any{}
}

// enumValue converts an enum entry stored as text into the JSON value of kind.
func enumValue(kind types.PrimitiveKind, s string) (any, error) {
	switch kind {
	case types.KindInt32:
		return strconv.ParseInt(s, 10, 32)
	case types.KindInt64:
		return strconv.ParseInt(s, 10, 64)
	case types.KindByte:
		return strconv.ParseUint(s, 10, 8)
	case types.KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		if math.Abs(f) > math.MaxFloat32 {
			return nil, fmt.Errorf("%s out of range for %s", s, kind)
		}
		return f, nil
	case types.KindDouble:
		return strconv.ParseFloat(s, 64)
	case types.KindBoolean:
		return strconv.ParseBool(s)
	case types.KindObject:
		return nil, fmt.Errorf("enumerations are not supported for %s", kind)
	}
	return s, nil
}

// dataTypeSchema returns the schema every value of dt must satisfy.
func dataTypeSchema(dt *models.DataType) (map[string]any, error) {
	kind := types.PrimitiveKind(dt.Kind)
	s := kindSchema(kind)
	if kind.IsStringLike() {
		if dt.Pattern != "" {
			s["pattern"] = dt.Pattern
		}
		if dt.MaxLength > 0 {
			s["maxLength"] = dt.MaxLength
		}
	}
	if len(dt.EnumValues) > 0 {
		enum := make([]any, 0, len(dt.EnumValues))
		for _, v := range dt.EnumValues {
			ev, err := enumValue(kind, v)
			if err != nil {
				return nil, fmt.Errorf("enum value %q: %w", v, err)
			}
			enum = append(enum, ev)
		}
		s["enum"] = enum
	}
	if dt.IsArray {
		return map[string]any{"type": "array", "items": s}, nil
	}
	return s, nil
}
