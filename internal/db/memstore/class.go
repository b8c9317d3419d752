package memstore

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

func (m *Store) classNameTaken(exceptID int64, c *models.Class) bool {
	return m.s.Classes.exists(exceptID, func(v *models.Class) bool {
		return v.NamespaceID == c.NamespaceID && sameName(v.Name, c.Name)
	})
}

func (m *Store) CreateClass(ctx context.Context, c *models.Class) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.s.Namespaces.Rows[c.NamespaceID]; !ok {
		return referenceNotFound("namespace not found")
	}
	if m.classNameTaken(0, c) {
		return alreadyExists("class")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
	row := *c
	c.ID = m.s.Classes.insert(&row)
	row.ID = c.ID
	return nil
}

func (m *Store) GetClass(ctx context.Context, id int64) (*models.Class, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.s.Classes.get(id)
	if !ok {
		return nil, notFound("class")
	}
	return &c, nil
}

func (m *Store) ListClasses(ctx context.Context, namespaceID int64) ([]models.Class, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Classes.list(func(v *models.Class) bool {
		return namespaceID == 0 || v.NamespaceID == namespaceID
	}), nil
}

func (m *Store) FindClasses(ctx context.Context, value string) ([]models.Class, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Classes.list(func(v *models.Class) bool {
		return contains(v.Name, value) || contains(v.Description, value)
	}), nil
}

func (m *Store) UpdateClass(ctx context.Context, c *models.Class) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.Classes.Rows[c.ID]
	if !ok {
		return notFound("class")
	}
	if _, ok := m.s.Namespaces.Rows[c.NamespaceID]; !ok {
		return referenceNotFound("namespace not found")
	}
	if m.classNameTaken(c.ID, c) {
		return alreadyExists("class")
	}
	updatedAt := now()
	row.NamespaceID = c.NamespaceID
	row.Name = c.Name
	row.Description = c.Description
	row.Enabled = c.Enabled
	row.UpdatedAt = &updatedAt
	c.UpdatedAt = &updatedAt
	return nil
}
