// Package metamodel implements the services behind every REST resource. Services validate
// DTOs, enforce the meta-model rules, and translate storage errors into application errors.
package metamodel

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/cache"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
)

type NamespaceService interface {
	CreateNamespace(ctx context.Context, ns *dto.Namespace) (*dto.Namespace, apperrors.Error)
	EditNamespace(ctx context.Context, id int64, ns *dto.Namespace) apperrors.Error
	DeleteNamespace(ctx context.Context, id int64) apperrors.Error
	GetNamespaceById(ctx context.Context, id int64) (*dto.Namespace, apperrors.Error)
	ListNamespaces(ctx context.Context) ([]dto.Namespace, apperrors.Error)
	FindNamespaces(ctx context.Context, value string) ([]dto.Namespace, apperrors.Error)
}

type ClassService interface {
	CreateClass(ctx context.Context, c *dto.Class) (*dto.Class, apperrors.Error)
	EditClass(ctx context.Context, id int64, c *dto.Class) apperrors.Error
	DeleteClass(ctx context.Context, id int64) apperrors.Error
	GetClassById(ctx context.Context, id int64) (*dto.Class, apperrors.Error)
	// ListClasses lists the classes of a namespace, or all classes when namespaceID is 0.
	ListClasses(ctx context.Context, namespaceID int64) ([]dto.Class, apperrors.Error)
	FindClasses(ctx context.Context, value string) ([]dto.Class, apperrors.Error)
	// GetClassSchema returns the JSON Schema instances of the class must satisfy.
	GetClassSchema(ctx context.Context, id int64) ([]byte, apperrors.Error)
}

type DataTypeService interface {
	CreateDataType(ctx context.Context, dt *dto.DataType) (*dto.DataType, apperrors.Error)
	EditDataType(ctx context.Context, id int64, dt *dto.DataType) apperrors.Error
	DeleteDataType(ctx context.Context, id int64) apperrors.Error
	GetDataTypeById(ctx context.Context, id int64) (*dto.DataType, apperrors.Error)
	ListDataTypes(ctx context.Context) ([]dto.DataType, apperrors.Error)
}

type FieldService interface {
	CreateField(ctx context.Context, f *dto.Field) (*dto.Field, apperrors.Error)
	EditField(ctx context.Context, id int64, f *dto.Field) apperrors.Error
	DeleteField(ctx context.Context, id int64) apperrors.Error
	GetFieldById(ctx context.Context, id int64) (*dto.Field, apperrors.Error)
	ListFields(ctx context.Context) ([]dto.Field, apperrors.Error)
}

type PropertyService interface {
	CreateProperty(ctx context.Context, p *dto.Property) (*dto.Property, apperrors.Error)
	EditProperty(ctx context.Context, id int64, p *dto.Property) apperrors.Error
	DeleteProperty(ctx context.Context, id int64) apperrors.Error
	GetPropertyById(ctx context.Context, id int64) (*dto.Property, apperrors.Error)
	GetPropertyByName(ctx context.Context, name string) (*dto.Property, apperrors.Error)
	ListProperties(ctx context.Context) ([]dto.Property, apperrors.Error)
}

type ObjectPropertyService interface {
	CreateObjectProperty(ctx context.Context, op *dto.ObjectProperty) (*dto.ObjectProperty, apperrors.Error)
	EditObjectProperty(ctx context.Context, id int64, op *dto.ObjectProperty) apperrors.Error
	DeleteObjectProperty(ctx context.Context, id int64) apperrors.Error
	GetObjectPropertyById(ctx context.Context, id int64) (*dto.ObjectProperty, apperrors.Error)
	// ListObjectProperties lists the children of a property, or every row when parentPropertyID is 0.
	ListObjectProperties(ctx context.Context, parentPropertyID int64) ([]dto.ObjectProperty, apperrors.Error)
}

type ClassPropertyService interface {
	CreateClassProperty(ctx context.Context, cp *dto.ClassProperty) (*dto.ClassProperty, apperrors.Error)
	EditClassProperty(ctx context.Context, id int64, cp *dto.ClassProperty) apperrors.Error
	DeleteClassProperty(ctx context.Context, id int64) apperrors.Error
	GetClassPropertyById(ctx context.Context, id int64) (*dto.ClassProperty, apperrors.Error)
	ListClassProperties(ctx context.Context, classID int64) ([]dto.ClassProperty, apperrors.Error)
}

type InstanceService interface {
	CreateInstance(ctx context.Context, in *dto.Instance) (*dto.Instance, apperrors.Error)
	EditInstance(ctx context.Context, id int64, in *dto.Instance) apperrors.Error
	DeleteInstance(ctx context.Context, id int64) apperrors.Error
	GetInstanceById(ctx context.Context, id int64) (*dto.Instance, apperrors.Error)
	ListInstances(ctx context.Context, classID int64) ([]dto.Instance, apperrors.Error)
}

// Services groups one implementation of every service interface.
type Services struct {
	Namespaces       NamespaceService
	Classes          ClassService
	DataTypes        DataTypeService
	Fields           FieldService
	Properties       PropertyService
	ObjectProperties ObjectPropertyService
	ClassProperties  ClassPropertyService
	Instances        InstanceService
}

// NewServices returns the database backed services. Generated class schemas are kept in c.
func NewServices(c cache.Cache) *Services {
	schemas := newSchemaBuilder(c)
	return &Services{
		Namespaces:       &namespaceService{},
		Classes:          &classService{schemas: schemas},
		DataTypes:        &dataTypeService{schemas: schemas},
		Fields:           &fieldService{schemas: schemas},
		Properties:       &propertyService{schemas: schemas},
		ObjectProperties: &objectPropertyService{schemas: schemas},
		ClassProperties:  &classPropertyService{schemas: schemas},
		Instances:        &instanceService{schemas: schemas},
	}
}

// ServicesFrom uses impl for every interface it implements and UnimplementedServices for
// the rest.
func ServicesFrom(impl any) *Services {
	s := &Services{}
	u := UnimplementedServices{}
	s.Namespaces, _ = impl.(NamespaceService)
	if s.Namespaces == nil {
		s.Namespaces = u
	}
	s.Classes, _ = impl.(ClassService)
	if s.Classes == nil {
		s.Classes = u
	}
	s.DataTypes, _ = impl.(DataTypeService)
	if s.DataTypes == nil {
		s.DataTypes = u
	}
	s.Fields, _ = impl.(FieldService)
	if s.Fields == nil {
		s.Fields = u
	}
	s.Properties, _ = impl.(PropertyService)
	if s.Properties == nil {
		s.Properties = u
	}
	s.ObjectProperties, _ = impl.(ObjectPropertyService)
	if s.ObjectProperties == nil {
		s.ObjectProperties = u
	}
	s.ClassProperties, _ = impl.(ClassPropertyService)
	if s.ClassProperties == nil {
		s.ClassProperties = u
	}
	s.Instances, _ = impl.(InstanceService)
	if s.Instances == nil {
		s.Instances = u
	}
	return s
}
