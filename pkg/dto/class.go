package dto

import "time"

// Class is a user-defined schema scoped to a namespace.
type Class struct {
	ID          int64      `json:"id,omitempty"`
	NamespaceID int64      `json:"namespaceId" validate:"required,gt=0"`
	Name        string     `json:"name" validate:"required,notBlank,max=80"`
	Description string     `json:"description" validate:"required,notBlank,max=4096"`
	Enabled     bool       `json:"enabled"`
	CreateDate  time.Time  `json:"createDate"`
	UpdateDate  *time.Time `json:"updateDate,omitempty"`
}

func NewClass() *Class {
	return &Class{
		Enabled:    true,
		CreateDate: time.Now().UTC(),
	}
}
