package dto

import "time"

// Instance is a data record conforming to a class.
type Instance struct {
	ID         int64          `json:"id,omitempty"`
	ClassID    int64          `json:"classId" validate:"required,gt=0"`
	Name       string         `json:"name,omitempty" validate:"max=80"`
	Data       map[string]any `json:"data" validate:"required"`
	Enabled    bool           `json:"enabled"`
	CreateDate time.Time      `json:"createDate"`
	UpdateDate *time.Time     `json:"updateDate,omitempty"`
}

func NewInstance() *Instance {
	return &Instance{
		Enabled:    true,
		CreateDate: time.Now().UTC(),
	}
}
