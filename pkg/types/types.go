package types

// PrimitiveKind is the native type a DataType is built on.
type PrimitiveKind string

const (
	KindString   PrimitiveKind = "STRING"
	KindInt32    PrimitiveKind = "INT32"
	KindInt64    PrimitiveKind = "INT64"
	KindFloat    PrimitiveKind = "FLOAT"
	KindDouble   PrimitiveKind = "DOUBLE"
	KindBoolean  PrimitiveKind = "BOOLEAN"
	KindDate     PrimitiveKind = "DATE"
	KindDateTime PrimitiveKind = "DATE_TIME"
	KindByte     PrimitiveKind = "BYTE"
	KindBinary   PrimitiveKind = "BINARY"
	KindPassword PrimitiveKind = "PASSWORD"
	KindObject   PrimitiveKind = "OBJECT"
)

var primitiveKinds = []PrimitiveKind{
	KindString,
	KindInt32,
	KindInt64,
	KindFloat,
	KindDouble,
	KindBoolean,
	KindDate,
	KindDateTime,
	KindByte,
	KindBinary,
	KindPassword,
	KindObject,
}

// PrimitiveKinds returns all supported kinds in display order.
func PrimitiveKinds() []PrimitiveKind {
	kinds := make([]PrimitiveKind, len(primitiveKinds))
	copy(kinds, primitiveKinds)
	return kinds
}

func (k PrimitiveKind) IsValid() bool {
	for _, v := range primitiveKinds {
		if k == v {
			return true
		}
	}
	return false
}

// IsStringLike reports whether values of this kind are JSON strings.
func (k PrimitiveKind) IsStringLike() bool {
	switch k {
	case KindString, KindPassword, KindBinary, KindDate, KindDateTime:
		return true
	}
	return false
}

// CoreNamespace is the name of the namespace created at bootstrap.
const CoreNamespace = "objectified"

// Name and description limits.
const (
	MaxNameLength        = 80
	MaxDescriptionLength = 4096
)
