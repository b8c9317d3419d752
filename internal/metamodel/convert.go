package metamodel

import (
	"encoding/json"

	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
)

func namespaceToDto(m *models.Namespace) dto.Namespace {
	return dto.Namespace{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Enabled:       m.Enabled,
		CoreNamespace: m.CoreNamespace,
		CreateDate:    m.CreatedAt,
		UpdateDate:    m.UpdatedAt,
	}
}

func classToDto(m *models.Class) dto.Class {
	return dto.Class{
		ID:          m.ID,
		NamespaceID: m.NamespaceID,
		Name:        m.Name,
		Description: m.Description,
		Enabled:     m.Enabled,
		CreateDate:  m.CreatedAt,
		UpdateDate:  m.UpdatedAt,
	}
}

func dataTypeToDto(m *models.DataType) dto.DataType {
	return dto.DataType{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Enabled:          m.Enabled,
		IsArray:          m.IsArray,
		DataType:         types.PrimitiveKind(m.Kind),
		Pattern:          m.Pattern,
		MaxLength:        m.MaxLength,
		EnumValues:       m.EnumValues,
		EnumDescriptions: m.EnumDescriptions,
		Examples:         m.Examples,
		CoreType:         m.CoreType,
		CreateDate:       m.CreatedAt,
		UpdateDate:       m.UpdatedAt,
	}
}

func dataTypeToModel(d *dto.DataType) models.DataType {
	return models.DataType{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Enabled:          d.Enabled,
		IsArray:          d.IsArray,
		Kind:             string(d.DataType),
		Pattern:          d.Pattern,
		MaxLength:        d.MaxLength,
		EnumValues:       d.EnumValues,
		EnumDescriptions: d.EnumDescriptions,
		Examples:         d.Examples,
		CoreType:         d.CoreType,
	}
}

func fieldToDto(m *models.Field) dto.Field {
	f := dto.Field{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Enabled:     m.Enabled,
		DataType:    dto.DataTypeRef{ID: m.DataTypeID, Name: m.DataTypeName},
		CreateDate:  m.CreatedAt,
		UpdateDate:  m.UpdatedAt,
	}
	if m.DefaultValue != nil {
		var v any
		if err := json.Unmarshal(m.DefaultValue, &v); err == nil {
			f.DefaultValue = types.NewNullableAny(v)
		}
	}
	return f
}

// defaultValueJSON returns nil when the default is unset.
func defaultValueJSON(v types.NullableAny) ([]byte, error) {
	if v.IsNil() {
		return nil, nil
	}
	return json.Marshal(v.Value)
}

func propertyToDto(m *models.Property) dto.Property {
	return dto.Property{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		FieldID:     m.FieldID,
		Enabled:     m.Enabled,
		CreateDate:  m.CreatedAt,
		UpdateDate:  m.UpdatedAt,
	}
}

func objectPropertyToDto(m *models.ObjectProperty) dto.ObjectProperty {
	return dto.ObjectProperty{
		ID:               m.ID,
		ParentPropertyID: m.ParentPropertyID,
		ChildPropertyID:  m.ChildPropertyID,
		Required:         m.Required,
		Enabled:          m.Enabled,
		CreateDate:       m.CreatedAt,
		UpdateDate:       m.UpdatedAt,
	}
}

func classPropertyToDto(m *models.ClassProperty) dto.ClassProperty {
	return dto.ClassProperty{
		ID:         m.ID,
		ClassID:    m.ClassID,
		PropertyID: m.PropertyID,
		Required:   m.Required,
		Enabled:    m.Enabled,
		CreateDate: m.CreatedAt,
		UpdateDate: m.UpdatedAt,
	}
}

func instanceToDto(m *models.Instance) dto.Instance {
	in := dto.Instance{
		ID:         m.ID,
		ClassID:    m.ClassID,
		Name:       m.Name,
		Enabled:    m.Enabled,
		CreateDate: m.CreatedAt,
		UpdateDate: m.UpdatedAt,
	}
	if len(m.Data) > 0 {
		_ = json.Unmarshal(m.Data, &in.Data)
	}
	return in
}

func mapList[M any, D any](list []M, conv func(*M) D) []D {
	out := make([]D, 0, len(list))
	for i := range list {
		out = append(out, conv(&list[i]))
	}
	return out
}
