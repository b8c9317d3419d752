package memstore

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

// withDataTypeName mirrors the join the PostgreSQL backend performs on read.
func (m *Store) withDataTypeName(f models.Field) models.Field {
	if dt, ok := m.s.DataTypes.Rows[f.DataTypeID]; ok {
		f.DataTypeName = dt.Name
	}
	return f
}

func (m *Store) CreateField(ctx context.Context, f *models.Field) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.s.DataTypes.Rows[f.DataTypeID]; !ok {
		return referenceNotFound("data type not found")
	}
	if m.s.Fields.exists(0, func(v *models.Field) bool { return sameName(v.Name, f.Name) }) {
		return alreadyExists("field")
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now()
	}
	row := *f
	row.DefaultValue = cloneBytes(f.DefaultValue)
	row.DataTypeName = ""
	f.ID = m.s.Fields.insert(&row)
	row.ID = f.ID
	return nil
}

func (m *Store) GetField(ctx context.Context, id int64) (*models.Field, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.s.Fields.get(id)
	if !ok {
		return nil, notFound("field")
	}
	f = m.withDataTypeName(f)
	return &f, nil
}

func (m *Store) ListFields(ctx context.Context) ([]models.Field, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.s.Fields.list(nil)
	for i := range list {
		list[i] = m.withDataTypeName(list[i])
	}
	return list, nil
}

func (m *Store) UpdateField(ctx context.Context, f *models.Field) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.Fields.Rows[f.ID]
	if !ok {
		return notFound("field")
	}
	if _, ok := m.s.DataTypes.Rows[f.DataTypeID]; !ok {
		return referenceNotFound("data type not found")
	}
	if m.s.Fields.exists(f.ID, func(v *models.Field) bool { return sameName(v.Name, f.Name) }) {
		return alreadyExists("field")
	}
	updatedAt := now()
	row.Name = f.Name
	row.Description = f.Description
	row.DefaultValue = cloneBytes(f.DefaultValue)
	row.Enabled = f.Enabled
	row.DataTypeID = f.DataTypeID
	row.UpdatedAt = &updatedAt
	f.UpdatedAt = &updatedAt
	return nil
}
