package memstore

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

func (m *Store) CreateProperty(ctx context.Context, p *models.Property) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.s.Fields.Rows[p.FieldID]; !ok {
		return referenceNotFound("field not found")
	}
	if m.s.Properties.exists(0, func(v *models.Property) bool { return sameName(v.Name, p.Name) }) {
		return alreadyExists("property")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	row := *p
	p.ID = m.s.Properties.insert(&row)
	row.ID = p.ID
	return nil
}

func (m *Store) GetProperty(ctx context.Context, id int64) (*models.Property, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.s.Properties.get(id)
	if !ok {
		return nil, notFound("property")
	}
	return &p, nil
}

func (m *Store) GetPropertyByName(ctx context.Context, name string) (*models.Property, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.s.Properties.list(func(v *models.Property) bool { return sameName(v.Name, name) })
	if len(list) == 0 {
		return nil, notFound("property")
	}
	return &list[0], nil
}

func (m *Store) ListProperties(ctx context.Context) ([]models.Property, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Properties.list(nil), nil
}

func (m *Store) UpdateProperty(ctx context.Context, p *models.Property) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.Properties.Rows[p.ID]
	if !ok {
		return notFound("property")
	}
	if _, ok := m.s.Fields.Rows[p.FieldID]; !ok {
		return referenceNotFound("field not found")
	}
	if m.s.Properties.exists(p.ID, func(v *models.Property) bool { return sameName(v.Name, p.Name) }) {
		return alreadyExists("property")
	}
	updatedAt := now()
	row.Name = p.Name
	row.Description = p.Description
	row.FieldID = p.FieldID
	row.Enabled = p.Enabled
	row.UpdatedAt = &updatedAt
	p.UpdatedAt = &updatedAt
	return nil
}

func (m *Store) checkObjectProperty(exceptID int64, op *models.ObjectProperty) apperrors.Error {
	if op.ParentPropertyID == op.ChildPropertyID {
		return dberror.ErrInvalidInput.Msg("invalid object property")
	}
	if _, ok := m.s.Properties.Rows[op.ParentPropertyID]; !ok {
		return referenceNotFound("parent property not found")
	}
	if _, ok := m.s.Properties.Rows[op.ChildPropertyID]; !ok {
		return referenceNotFound("child property not found")
	}
	if m.s.ObjectProperties.exists(exceptID, func(v *models.ObjectProperty) bool {
		return v.ParentPropertyID == op.ParentPropertyID && v.ChildPropertyID == op.ChildPropertyID
	}) {
		return alreadyExists("object property")
	}
	return nil
}

func (m *Store) CreateObjectProperty(ctx context.Context, op *models.ObjectProperty) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkObjectProperty(0, op); err != nil {
		return err
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = now()
	}
	row := *op
	op.ID = m.s.ObjectProperties.insert(&row)
	row.ID = op.ID
	return nil
}

func (m *Store) GetObjectProperty(ctx context.Context, id int64) (*models.ObjectProperty, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	op, ok := m.s.ObjectProperties.get(id)
	if !ok {
		return nil, notFound("object property")
	}
	return &op, nil
}

func (m *Store) ListObjectProperties(ctx context.Context, parentPropertyID int64) ([]models.ObjectProperty, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.ObjectProperties.list(func(v *models.ObjectProperty) bool {
		return parentPropertyID == 0 || v.ParentPropertyID == parentPropertyID
	}), nil
}

func (m *Store) UpdateObjectProperty(ctx context.Context, op *models.ObjectProperty) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.ObjectProperties.Rows[op.ID]
	if !ok {
		return notFound("object property")
	}
	if err := m.checkObjectProperty(op.ID, op); err != nil {
		return err
	}
	updatedAt := now()
	row.ParentPropertyID = op.ParentPropertyID
	row.ChildPropertyID = op.ChildPropertyID
	row.Required = op.Required
	row.Enabled = op.Enabled
	row.UpdatedAt = &updatedAt
	op.UpdatedAt = &updatedAt
	return nil
}

func (m *Store) checkClassProperty(exceptID int64, cp *models.ClassProperty) apperrors.Error {
	if _, ok := m.s.Classes.Rows[cp.ClassID]; !ok {
		return referenceNotFound("class not found")
	}
	if _, ok := m.s.Properties.Rows[cp.PropertyID]; !ok {
		return referenceNotFound("property not found")
	}
	if m.s.ClassProperties.exists(exceptID, func(v *models.ClassProperty) bool {
		return v.ClassID == cp.ClassID && v.PropertyID == cp.PropertyID
	}) {
		return alreadyExists("class property")
	}
	return nil
}

func (m *Store) CreateClassProperty(ctx context.Context, cp *models.ClassProperty) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkClassProperty(0, cp); err != nil {
		return err
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now()
	}
	row := *cp
	cp.ID = m.s.ClassProperties.insert(&row)
	row.ID = cp.ID
	return nil
}

func (m *Store) GetClassProperty(ctx context.Context, id int64) (*models.ClassProperty, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp, ok := m.s.ClassProperties.get(id)
	if !ok {
		return nil, notFound("class property")
	}
	return &cp, nil
}

func (m *Store) ListClassProperties(ctx context.Context, classID int64) ([]models.ClassProperty, apperrors.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.ClassProperties.list(func(v *models.ClassProperty) bool {
		return classID == 0 || v.ClassID == classID
	}), nil
}

func (m *Store) UpdateClassProperty(ctx context.Context, cp *models.ClassProperty) apperrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.s.ClassProperties.Rows[cp.ID]
	if !ok {
		return notFound("class property")
	}
	if err := m.checkClassProperty(cp.ID, cp); err != nil {
		return err
	}
	updatedAt := now()
	row.ClassID = cp.ClassID
	row.PropertyID = cp.PropertyID
	row.Required = cp.Required
	row.Enabled = cp.Enabled
	row.UpdatedAt = &updatedAt
	cp.UpdatedAt = &updatedAt
	return nil
}
