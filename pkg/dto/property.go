package dto

import "time"

// Property binds a field definition to a name that classes and objects can be assigned.
type Property struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name" validate:"required,notBlank,max=80"`
	Description string     `json:"description" validate:"required,notBlank,max=4096"`
	FieldID     int64      `json:"fieldId" validate:"required,gt=0"`
	Enabled     bool       `json:"enabled"`
	CreateDate  time.Time  `json:"createDate"`
	UpdateDate  *time.Time `json:"updateDate,omitempty"`
}

func NewProperty() *Property {
	return &Property{
		Enabled:    true,
		CreateDate: time.Now().UTC(),
	}
}

// ObjectProperty nests a child property under a property whose data type is OBJECT.
type ObjectProperty struct {
	ID               int64      `json:"id,omitempty"`
	ParentPropertyID int64      `json:"parentPropertyId" validate:"required,gt=0"`
	ChildPropertyID  int64      `json:"childPropertyId" validate:"required,gt=0,nefield=ParentPropertyID"`
	Required         bool       `json:"required"`
	Enabled          bool       `json:"enabled"`
	CreateDate       time.Time  `json:"createDate"`
	UpdateDate       *time.Time `json:"updateDate,omitempty"`
}

func NewObjectProperty() *ObjectProperty {
	return &ObjectProperty{
		Enabled:    true,
		CreateDate: time.Now().UTC(),
	}
}

// ClassProperty assigns a property to a class.
type ClassProperty struct {
	ID         int64      `json:"id,omitempty"`
	ClassID    int64      `json:"classId" validate:"required,gt=0"`
	PropertyID int64      `json:"propertyId" validate:"required,gt=0"`
	Required   bool       `json:"required"`
	Enabled    bool       `json:"enabled"`
	CreateDate time.Time  `json:"createDate"`
	UpdateDate *time.Time `json:"updateDate,omitempty"`
}

func NewClassProperty() *ClassProperty {
	return &ClassProperty{
		Enabled:    true,
		CreateDate: time.Now().UTC(),
	}
}
