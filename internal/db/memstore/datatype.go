package memstore

import (
	"context"
	"slices"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

func (m *Store) CreateDataType(ctx context.Context, dt *models.DataType) apperrors.Error {
	if dt.MaxLength < 0 {
		return dberror.ErrInvalidInput.Msg("invalid data type")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.DataTypes.exists(0, func(v *models.DataType) bool { return sameName(v.Name, dt.Name) }) {
		return alreadyExists("data type")
	}
	if dt.CreatedAt.IsZero() {
		dt.CreatedAt = now()
	}
	row := *dt
	row.EnumValues = slices.Clone(dt.EnumValues)
	row.EnumDescriptions = slices.Clone(dt.EnumDescriptions)
	row.Examples = slices.Clone(dt.Examples)
	dt.ID = m.s.DataTypes.insert(&row)
	row.ID = dt.ID
	return nil
}

func (m *Store) GetDataType(ctx context.Context, id int64) (*models.DataType, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dt, ok := m.s.DataTypes.get(id)
	if !ok {
		return nil, notFound("data type")
	}
	return &dt, nil
}

func (m *Store) GetDataTypeByName(ctx context.Context, name string) (*models.DataType, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.s.DataTypes.list(func(v *models.DataType) bool { return sameName(v.Name, name) })
	if len(list) == 0 {
		return nil, notFound("data type")
	}
	return &list[0], nil
}

func (m *Store) ListDataTypes(ctx context.Context) ([]models.DataType, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.DataTypes.list(nil), nil
}

func (m *Store) UpdateDataType(ctx context.Context, dt *models.DataType) apperrors.Error {
	if dt.MaxLength < 0 {
		return dberror.ErrInvalidInput.Msg("invalid data type")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.DataTypes.Rows[dt.ID]
	if !ok {
		return notFound("data type")
	}
	if m.s.DataTypes.exists(dt.ID, func(v *models.DataType) bool { return sameName(v.Name, dt.Name) }) {
		return alreadyExists("data type")
	}
	updatedAt := now()
	row.Name = dt.Name
	row.Description = dt.Description
	row.Enabled = dt.Enabled
	row.IsArray = dt.IsArray
	row.Kind = dt.Kind
	row.Pattern = dt.Pattern
	row.MaxLength = dt.MaxLength
	row.EnumValues = slices.Clone(dt.EnumValues)
	row.EnumDescriptions = slices.Clone(dt.EnumDescriptions)
	row.Examples = slices.Clone(dt.Examples)
	row.UpdatedAt = &updatedAt
	dt.UpdatedAt = &updatedAt
	return nil
}
