package dto

import (
	"time"

	"github.com/mugiliam/objectifiedsrv/pkg/types"
)

// Field is a named, typed attribute definition used by properties.
type Field struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required,notBlank,max=80"`
	Description string `json:"description" validate:"required,notBlank,max=4096"`
	// DefaultValue must satisfy the field's data type when set.
	DefaultValue types.NullableAny `json:"defaultValue"`
	Enabled      bool              `json:"enabled"`
	DataType     DataTypeRef       `json:"dataType" validate:"required"`
	CreateDate   time.Time         `json:"createDate"`
	UpdateDate   *time.Time        `json:"updateDate,omitempty"`
}

func NewField() *Field {
	return &Field{
		Enabled:    true,
		CreateDate: time.Now().UTC(),
	}
}
