package memstore

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

func (m *Store) CreateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.Namespaces.exists(0, func(v *models.Namespace) bool { return sameName(v.Name, ns.Name) }) {
		return alreadyExists("namespace")
	}
	if ns.CreatedAt.IsZero() {
		ns.CreatedAt = now()
	}
	row := *ns
	ns.ID = m.s.Namespaces.insert(&row)
	row.ID = ns.ID
	return nil
}

func (m *Store) GetNamespace(ctx context.Context, id int64) (*models.Namespace, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ns, ok := m.s.Namespaces.get(id)
	if !ok {
		return nil, notFound("namespace")
	}
	return &ns, nil
}

func (m *Store) GetNamespaceByName(ctx context.Context, name string) (*models.Namespace, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.s.Namespaces.list(func(v *models.Namespace) bool { return sameName(v.Name, name) })
	if len(list) == 0 {
		return nil, notFound("namespace")
	}
	return &list[0], nil
}

func (m *Store) ListNamespaces(ctx context.Context) ([]models.Namespace, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Namespaces.list(nil), nil
}

func (m *Store) FindNamespaces(ctx context.Context, value string) ([]models.Namespace, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Namespaces.list(func(v *models.Namespace) bool {
		return contains(v.Name, value) || contains(v.Description, value)
	}), nil
}

func (m *Store) UpdateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.Namespaces.Rows[ns.ID]
	if !ok {
		return notFound("namespace")
	}
	if m.s.Namespaces.exists(ns.ID, func(v *models.Namespace) bool { return sameName(v.Name, ns.Name) }) {
		return alreadyExists("namespace")
	}
	updatedAt := now()
	row.Name = ns.Name
	row.Description = ns.Description
	row.Enabled = ns.Enabled
	row.UpdatedAt = &updatedAt
	ns.UpdatedAt = &updatedAt
	return nil
}
