package dto

import (
	"time"

	"github.com/mugiliam/objectifiedsrv/pkg/types"
)

// DataType is a global descriptor of a primitive kind plus its constraints.
type DataType struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required,notBlank,max=80"`
	Description string `json:"description" validate:"required,notBlank,max=4096"`
	Enabled     bool   `json:"enabled"`
	// IsArray makes values of this type arrays of the primitive kind.
	IsArray          bool                `json:"isArray"`
	DataType         types.PrimitiveKind `json:"dataType" validate:"required,primitiveKind"`
	Pattern          string              `json:"pattern,omitempty" validate:"omitempty,regexPattern"`
	MaxLength        int                 `json:"maxLength" validate:"gte=0"`
	EnumValues       []string            `json:"enumValues,omitempty"`
	EnumDescriptions []string            `json:"enumDescriptions,omitempty"`
	Examples         []string            `json:"examples,omitempty"`
	// CoreType marks a system data type that cannot be edited or deleted.
	CoreType   bool       `json:"coreType"`
	CreateDate time.Time  `json:"createDate"`
	UpdateDate *time.Time `json:"updateDate,omitempty"`
}

func NewDataType() *DataType {
	return &DataType{
		Enabled:    true,
		CoreType:   false,
		CreateDate: time.Now().UTC(),
	}
}

// DataTypeRef references a data type from a field.
type DataTypeRef struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"name,omitempty"`
}
