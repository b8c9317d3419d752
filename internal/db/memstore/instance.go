package memstore

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

func (m *Store) CreateInstance(ctx context.Context, in *models.Instance) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.s.Classes.Rows[in.ClassID]; !ok {
		return referenceNotFound("class not found")
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now()
	}
	row := *in
	row.Data = cloneBytes(in.Data)
	in.ID = m.s.Instances.insert(&row)
	row.ID = in.ID
	return nil
}

func (m *Store) GetInstance(ctx context.Context, id int64) (*models.Instance, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	in, ok := m.s.Instances.get(id)
	if !ok {
		return nil, notFound("instance")
	}
	return &in, nil
}

func (m *Store) ListInstances(ctx context.Context, classID int64) ([]models.Instance, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Instances.list(func(v *models.Instance) bool {
		return classID == 0 || v.ClassID == classID
	}), nil
}

func (m *Store) UpdateInstance(ctx context.Context, in *models.Instance) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.Instances.Rows[in.ID]
	if !ok {
		return notFound("instance")
	}
	if _, ok := m.s.Classes.Rows[in.ClassID]; !ok {
		return referenceNotFound("class not found")
	}
	updatedAt := now()
	row.ClassID = in.ClassID
	row.Name = in.Name
	row.Data = cloneBytes(in.Data)
	row.Enabled = in.Enabled
	row.UpdatedAt = &updatedAt
	in.UpdatedAt = &updatedAt
	return nil
}
