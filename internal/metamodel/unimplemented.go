package metamodel

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
)

// UnimplementedServices implements every service interface, failing each call with
// ErrUnimplemented. Partial implementations embed it so that missing operations report
// 501 Not Implemented.
type UnimplementedServices struct{}

func (UnimplementedServices) CreateNamespace(context.Context, *dto.Namespace) (*dto.Namespace, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditNamespace(context.Context, int64, *dto.Namespace) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteNamespace(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetNamespaceById(context.Context, int64) (*dto.Namespace, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListNamespaces(context.Context) ([]dto.Namespace, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) FindNamespaces(context.Context, string) ([]dto.Namespace, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateClass(context.Context, *dto.Class) (*dto.Class, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditClass(context.Context, int64, *dto.Class) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteClass(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetClassById(context.Context, int64) (*dto.Class, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListClasses(context.Context, int64) ([]dto.Class, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) FindClasses(context.Context, string) ([]dto.Class, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) GetClassSchema(context.Context, int64) ([]byte, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateDataType(context.Context, *dto.DataType) (*dto.DataType, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditDataType(context.Context, int64, *dto.DataType) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteDataType(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetDataTypeById(context.Context, int64) (*dto.DataType, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListDataTypes(context.Context) ([]dto.DataType, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateField(context.Context, *dto.Field) (*dto.Field, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditField(context.Context, int64, *dto.Field) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteField(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetFieldById(context.Context, int64) (*dto.Field, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListFields(context.Context) ([]dto.Field, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateProperty(context.Context, *dto.Property) (*dto.Property, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditProperty(context.Context, int64, *dto.Property) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteProperty(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetPropertyById(context.Context, int64) (*dto.Property, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) GetPropertyByName(context.Context, string) (*dto.Property, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListProperties(context.Context) ([]dto.Property, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateObjectProperty(context.Context, *dto.ObjectProperty) (*dto.ObjectProperty, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditObjectProperty(context.Context, int64, *dto.ObjectProperty) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteObjectProperty(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetObjectPropertyById(context.Context, int64) (*dto.ObjectProperty, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListObjectProperties(context.Context, int64) ([]dto.ObjectProperty, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateClassProperty(context.Context, *dto.ClassProperty) (*dto.ClassProperty, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditClassProperty(context.Context, int64, *dto.ClassProperty) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteClassProperty(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetClassPropertyById(context.Context, int64) (*dto.ClassProperty, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListClassProperties(context.Context, int64) ([]dto.ClassProperty, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) CreateInstance(context.Context, *dto.Instance) (*dto.Instance, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) EditInstance(context.Context, int64, *dto.Instance) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) DeleteInstance(context.Context, int64) apperrors.Error {
	return ErrUnimplemented
}

func (UnimplementedServices) GetInstanceById(context.Context, int64) (*dto.Instance, apperrors.Error) {
	return nil, ErrUnimplemented
}

func (UnimplementedServices) ListInstances(context.Context, int64) ([]dto.Instance, apperrors.Error) {
	return nil, ErrUnimplemented
}

var (
	_ NamespaceService      = UnimplementedServices{}
	_ ClassService          = UnimplementedServices{}
	_ DataTypeService       = UnimplementedServices{}
	_ FieldService          = UnimplementedServices{}
	_ PropertyService       = UnimplementedServices{}
	_ ObjectPropertyService = UnimplementedServices{}
	_ ClassPropertyService  = UnimplementedServices{}
	_ InstanceService       = UnimplementedServices{}
)
