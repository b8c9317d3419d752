package schemavalidator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one invalid attribute of a request.
type ValidationError struct {
	Field  string
	Value  any
	ErrStr string
}

func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.ErrStr
	}
	return ve.Field + ": " + ve.ErrStr
}

// ValidationErrors is a list of ValidationError that is itself an error.
type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	var b strings.Builder
	for i, ve := range ves {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ve.Error())
	}
	return b.String()
}

func ErrMissingRequiredAttribute(attr string) ValidationError {
	return ValidationError{Field: attr, ErrStr: "missing required attribute"}
}

func ErrValueTooLong(attr string, limit string) ValidationError {
	return ValidationError{Field: attr, ErrStr: "value exceeds maximum length of " + limit}
}

func ErrUnsupportedDataType(attr string, value any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "unsupported data type"}
}

func ErrInvalidPattern(attr string, value any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "invalid regular expression"}
}

func ErrValidationFailed(attr string) ValidationError {
	return ValidationError{Field: attr, ErrStr: "validation failed"}
}

func ErrInvalidValue(attr string, msg string) ValidationError {
	return ValidationError{Field: attr, ErrStr: msg}
}

// ValidateStruct runs V() on s and converts the result into ValidationErrors.
// It returns nil when s is valid.
func ValidateStruct(s any) ValidationErrors {
	err := V().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ValidationErrors{ErrValidationFailed("")}
	}

	structType := reflect.TypeOf(s)
	var ves ValidationErrors
	for _, e := range ve {
		jsonFieldName := GetJSONFieldPath(structType, e.StructNamespace())
		switch e.Tag() {
		case "required", "notBlank":
			ves = append(ves, ErrMissingRequiredAttribute(jsonFieldName))
		case "gt":
			if e.Param() == "0" {
				ves = append(ves, ErrMissingRequiredAttribute(jsonFieldName))
			} else {
				ves = append(ves, ErrInvalidValue(jsonFieldName, "value must be greater than "+e.Param()))
			}
		case "max":
			ves = append(ves, ErrValueTooLong(jsonFieldName, e.Param()))
		case "gte":
			ves = append(ves, ErrInvalidValue(jsonFieldName, "value must not be less than "+e.Param()))
		case "primitiveKind":
			ves = append(ves, ErrUnsupportedDataType(jsonFieldName, e.Value()))
		case "regexPattern":
			ves = append(ves, ErrInvalidPattern(jsonFieldName, e.Value()))
		case "nefield":
			other := GetJSONFieldPath(structType, e.StructNamespace()[:strings.LastIndex(e.StructNamespace(), ".")+1]+e.Param())
			ves = append(ves, ErrInvalidValue(jsonFieldName, "value must differ from "+other))
		default:
			ves = append(ves, ErrValidationFailed(jsonFieldName))
		}
	}
	return ves
}
