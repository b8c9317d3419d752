package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/mugiliam/objectifiedsrv/pkg/dto"
)

const (
	namespacesPath       = "/namespaces"
	classesPath          = "/classes"
	dataTypesPath        = "/data-types"
	fieldsPath           = "/fields"
	propertiesPath       = "/property"
	objectPropertiesPath = "/object-property"
	classPropertiesPath  = "/class-property"
	instancesPath        = "/instances"
)

func (c *Client) CreateNamespace(ctx context.Context, ns *dto.Namespace) (*dto.Namespace, error) {
	if err := validateForm(ns.Name, ns.Description); err != nil {
		return nil, err
	}
	return create(ctx, c, namespacesPath, ns)
}

func (c *Client) GetNamespaceById(ctx context.Context, id int64) (*dto.Namespace, error) {
	return get[dto.Namespace](ctx, c, idPath(namespacesPath, id))
}

func (c *Client) ListNamespaces(ctx context.Context) ([]dto.Namespace, error) {
	return list[dto.Namespace](ctx, c, namespacesPath+"/list", nil)
}

func (c *Client) FindNamespaces(ctx context.Context, value string) ([]dto.Namespace, error) {
	return list[dto.Namespace](ctx, c, namespacesPath+"/find/"+url.PathEscape(value), nil)
}

func (c *Client) EditNamespace(ctx context.Context, id int64, ns *dto.Namespace) error {
	return edit(ctx, c, namespacesPath, id, ns)
}

func (c *Client) DeleteNamespace(ctx context.Context, id int64) error {
	return remove(ctx, c, namespacesPath, id)
}

func (c *Client) CreateClass(ctx context.Context, cl *dto.Class) (*dto.Class, error) {
	if err := errors.Join(validateForm(cl.Name, cl.Description), validateRef("namespaceId", cl.NamespaceID)); err != nil {
		return nil, err
	}
	return create(ctx, c, classesPath, cl)
}

func (c *Client) GetClassById(ctx context.Context, id int64) (*dto.Class, error) {
	return get[dto.Class](ctx, c, idPath(classesPath, id))
}

// ListClasses lists the classes of a namespace, or every class when namespaceID is 0.
func (c *Client) ListClasses(ctx context.Context, namespaceID int64) ([]dto.Class, error) {
	return list[dto.Class](ctx, c, classesPath+"/list", filter("namespaceId", namespaceID))
}

func (c *Client) FindClasses(ctx context.Context, value string) ([]dto.Class, error) {
	return list[dto.Class](ctx, c, classesPath+"/find/"+url.PathEscape(value), nil)
}

// GetClassSchema returns the JSON Schema document of a class as sent by the server.
func (c *Client) GetClassSchema(ctx context.Context, id int64) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, idPath(classesPath, id, "/schema"), nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) EditClass(ctx context.Context, id int64, cl *dto.Class) error {
	return edit(ctx, c, classesPath, id, cl)
}

func (c *Client) DeleteClass(ctx context.Context, id int64) error {
	return remove(ctx, c, classesPath, id)
}

func (c *Client) CreateDataType(ctx context.Context, dt *dto.DataType) (*dto.DataType, error) {
	if err := validateForm(dt.Name, dt.Description); err != nil {
		return nil, err
	}
	if dt.DataType == "" {
		return nil, &ValidationError{Fields: []string{"dataType is required"}}
	}
	return create(ctx, c, dataTypesPath, dt)
}

func (c *Client) GetDataTypeById(ctx context.Context, id int64) (*dto.DataType, error) {
	return get[dto.DataType](ctx, c, idPath(dataTypesPath, id))
}

func (c *Client) ListDataTypes(ctx context.Context) ([]dto.DataType, error) {
	return list[dto.DataType](ctx, c, dataTypesPath+"/list", nil)
}

func (c *Client) EditDataType(ctx context.Context, id int64, dt *dto.DataType) error {
	return edit(ctx, c, dataTypesPath, id, dt)
}

func (c *Client) DeleteDataType(ctx context.Context, id int64) error {
	return remove(ctx, c, dataTypesPath, id)
}

func (c *Client) CreateField(ctx context.Context, f *dto.Field) (*dto.Field, error) {
	if err := errors.Join(validateForm(f.Name, f.Description), validateRef("dataType", f.DataType.ID)); err != nil {
		return nil, err
	}
	return create(ctx, c, fieldsPath, f)
}

func (c *Client) GetFieldById(ctx context.Context, id int64) (*dto.Field, error) {
	return get[dto.Field](ctx, c, idPath(fieldsPath, id))
}

func (c *Client) ListFields(ctx context.Context) ([]dto.Field, error) {
	return list[dto.Field](ctx, c, fieldsPath+"/list", nil)
}

func (c *Client) EditField(ctx context.Context, id int64, f *dto.Field) error {
	return edit(ctx, c, fieldsPath, id, f)
}

func (c *Client) DeleteField(ctx context.Context, id int64) error {
	return remove(ctx, c, fieldsPath, id)
}

func (c *Client) CreateProperty(ctx context.Context, p *dto.Property) (*dto.Property, error) {
	if err := errors.Join(validateForm(p.Name, p.Description), validateRef("fieldId", p.FieldID)); err != nil {
		return nil, err
	}
	return create(ctx, c, propertiesPath, p)
}

func (c *Client) GetPropertyById(ctx context.Context, id int64) (*dto.Property, error) {
	return get[dto.Property](ctx, c, idPath(propertiesPath, id, "/byId"))
}

func (c *Client) GetPropertyByName(ctx context.Context, name string) (*dto.Property, error) {
	return get[dto.Property](ctx, c, propertiesPath+"/"+url.PathEscape(name)+"/byName")
}

func (c *Client) ListProperties(ctx context.Context) ([]dto.Property, error) {
	return list[dto.Property](ctx, c, propertiesPath+"/list", nil)
}

func (c *Client) EditProperty(ctx context.Context, id int64, p *dto.Property) error {
	return edit(ctx, c, propertiesPath, id, p)
}

func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return remove(ctx, c, propertiesPath, id)
}

func (c *Client) CreateObjectProperty(ctx context.Context, op *dto.ObjectProperty) (*dto.ObjectProperty, error) {
	err := errors.Join(validateRef("parentPropertyId", op.ParentPropertyID), validateRef("childPropertyId", op.ChildPropertyID))
	if err != nil {
		return nil, err
	}
	return create(ctx, c, objectPropertiesPath, op)
}

func (c *Client) GetObjectPropertyById(ctx context.Context, id int64) (*dto.ObjectProperty, error) {
	return get[dto.ObjectProperty](ctx, c, idPath(objectPropertiesPath, id))
}

func (c *Client) ListObjectProperties(ctx context.Context, parentPropertyID int64) ([]dto.ObjectProperty, error) {
	return list[dto.ObjectProperty](ctx, c, objectPropertiesPath+"/list", filter("parentPropertyId", parentPropertyID))
}

func (c *Client) EditObjectProperty(ctx context.Context, id int64, op *dto.ObjectProperty) error {
	return edit(ctx, c, objectPropertiesPath, id, op)
}

func (c *Client) DeleteObjectProperty(ctx context.Context, id int64) error {
	return remove(ctx, c, objectPropertiesPath, id)
}

func (c *Client) CreateClassProperty(ctx context.Context, cp *dto.ClassProperty) (*dto.ClassProperty, error) {
	if err := errors.Join(validateRef("classId", cp.ClassID), validateRef("propertyId", cp.PropertyID)); err != nil {
		return nil, err
	}
	return create(ctx, c, classPropertiesPath, cp)
}

func (c *Client) GetClassPropertyById(ctx context.Context, id int64) (*dto.ClassProperty, error) {
	return get[dto.ClassProperty](ctx, c, idPath(classPropertiesPath, id))
}

func (c *Client) ListClassProperties(ctx context.Context, classID int64) ([]dto.ClassProperty, error) {
	return list[dto.ClassProperty](ctx, c, classPropertiesPath+"/list", filter("classId", classID))
}

func (c *Client) EditClassProperty(ctx context.Context, id int64, cp *dto.ClassProperty) error {
	return edit(ctx, c, classPropertiesPath, id, cp)
}

func (c *Client) DeleteClassProperty(ctx context.Context, id int64) error {
	return remove(ctx, c, classPropertiesPath, id)
}

func (c *Client) CreateInstance(ctx context.Context, in *dto.Instance) (*dto.Instance, error) {
	if err := validateRef("classId", in.ClassID); err != nil {
		return nil, err
	}
	if in.Data == nil {
		return nil, &ValidationError{Fields: []string{"data is required"}}
	}
	return create(ctx, c, instancesPath, in)
}

func (c *Client) GetInstanceById(ctx context.Context, id int64) (*dto.Instance, error) {
	return get[dto.Instance](ctx, c, idPath(instancesPath, id))
}

func (c *Client) ListInstances(ctx context.Context, classID int64) ([]dto.Instance, error) {
	return list[dto.Instance](ctx, c, instancesPath+"/list", filter("classId", classID))
}

func (c *Client) EditInstance(ctx context.Context, id int64, in *dto.Instance) error {
	return edit(ctx, c, instancesPath, id, in)
}

func (c *Client) DeleteInstance(ctx context.Context, id int64) error {
	return remove(ctx, c, instancesPath, id)
}
