// Package dto defines the JSON shapes exchanged over the REST API.
package dto

import "time"

// Namespace is the top-level grouping for classes.
type Namespace struct {
	// ID is assigned by the server on create.
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required,notBlank,max=80"`
	Description string `json:"description" validate:"required,notBlank,max=4096"`
	// Enabled is false once the namespace is deleted. Setting it back to true undeletes it.
	Enabled bool `json:"enabled"`
	// CoreNamespace marks a protected namespace that cannot be edited or deleted.
	CoreNamespace bool       `json:"coreNamespace"`
	CreateDate    time.Time  `json:"createDate"`
	UpdateDate    *time.Time `json:"updateDate,omitempty"`
}

func NewNamespace() *Namespace {
	return &Namespace{
		Enabled:       true,
		CoreNamespace: false,
		CreateDate:    time.Now().UTC(),
	}
}
