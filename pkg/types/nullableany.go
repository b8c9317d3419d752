package types

import (
	"bytes"
	"encoding/json"
)

type Nullable interface {
	IsNil() bool
}

// NullableAny holds an arbitrary JSON value that may be absent or null.
type NullableAny struct {
	Value any
	Valid bool // Valid is true if Value is not nil
}

func NewNullableAny(v any) NullableAny {
	return NullableAny{Value: v, Valid: v != nil}
}

func (na NullableAny) IsNil() bool {
	return !na.Valid
}

func (na *NullableAny) Set(value any) {
	na.Value = value
	na.Valid = value != nil
}

var _ json.Marshaler = &NullableAny{}
var _ json.Unmarshaler = &NullableAny{}
var _ Nullable = &NullableAny{}

func (na NullableAny) MarshalJSON() ([]byte, error) {
	if na.Valid {
		return json.Marshal(na.Value)
	}
	return []byte("null"), nil
}

func (na *NullableAny) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		na.Value = nil
		na.Valid = false
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	na.Value = v
	na.Valid = true
	return nil
}
