package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

const propertyColumns = `id, name, description, field_id, enabled, created_at, updated_at`

func scanProperty(r rowScanner) (*models.Property, error) {
	var p models.Property
	var updatedAt sql.NullTime
	if err := r.Scan(&p.ID, &p.Name, &p.Description, &p.FieldID, &p.Enabled, &p.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	p.UpdatedAt = nullTime(updatedAt)
	return &p, nil
}

func (h *objectifiedDb) CreateProperty(ctx context.Context, p *models.Property) apperrors.Error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	query := `
		INSERT INTO properties (name, description, field_id, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query, p.Name, p.Description, p.FieldID, p.Enabled, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return h.dbError(ctx, err, "property")
	}
	return nil
}

func (h *objectifiedDb) GetProperty(ctx context.Context, id int64) (*models.Property, apperrors.Error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "property")
	}
	return p, nil
}

func (h *objectifiedDb) GetPropertyByName(ctx context.Context, name string) (*models.Property, apperrors.Error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE LOWER(name) = LOWER($1)`
	p, err := scanProperty(h.q.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, h.dbError(ctx, err, "property")
	}
	return p, nil
}

func (h *objectifiedDb) ListProperties(ctx context.Context) ([]models.Property, apperrors.Error) {
	list, err := queryAll(ctx, h.q, scanProperty, `SELECT `+propertyColumns+` FROM properties ORDER BY id`)
	if err != nil {
		return nil, h.dbError(ctx, err, "property")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateProperty(ctx context.Context, p *models.Property) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE properties SET name = $2, description = $3, field_id = $4, enabled = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.FieldID, p.Enabled, updatedAt)
	if err != nil {
		return h.dbError(ctx, err, "property")
	}
	if err := h.checkAffected(ctx, result, "property"); err != nil {
		return err
	}
	p.UpdatedAt = &updatedAt
	return nil
}

const objectPropertyColumns = `id, parent_property_id, child_property_id, required, enabled, created_at, updated_at`

func scanObjectProperty(r rowScanner) (*models.ObjectProperty, error) {
	var op models.ObjectProperty
	var updatedAt sql.NullTime
	if err := r.Scan(&op.ID, &op.ParentPropertyID, &op.ChildPropertyID, &op.Required, &op.Enabled, &op.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	op.UpdatedAt = nullTime(updatedAt)
	return &op, nil
}

func (h *objectifiedDb) CreateObjectProperty(ctx context.Context, op *models.ObjectProperty) apperrors.Error {
	if op.CreatedAt.IsZero() {
		op.CreatedAt = now()
	}
	query := `
		INSERT INTO object_properties (parent_property_id, child_property_id, required, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query, op.ParentPropertyID, op.ChildPropertyID, op.Required, op.Enabled, op.CreatedAt).Scan(&op.ID)
	if err != nil {
		return h.dbError(ctx, err, "object property")
	}
	return nil
}

func (h *objectifiedDb) GetObjectProperty(ctx context.Context, id int64) (*models.ObjectProperty, apperrors.Error) {
	query := `SELECT ` + objectPropertyColumns + ` FROM object_properties WHERE id = $1`
	op, err := scanObjectProperty(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "object property")
	}
	return op, nil
}

// ListObjectProperties returns the children of one parent property, or all rows when
// parentPropertyID is 0.
func (h *objectifiedDb) ListObjectProperties(ctx context.Context, parentPropertyID int64) ([]models.ObjectProperty, apperrors.Error) {
	var (
		list []models.ObjectProperty
		err  error
	)
	if parentPropertyID == 0 {
		list, err = queryAll(ctx, h.q, scanObjectProperty, `SELECT `+objectPropertyColumns+` FROM object_properties ORDER BY id`)
	} else {
		list, err = queryAll(ctx, h.q, scanObjectProperty,
			`SELECT `+objectPropertyColumns+` FROM object_properties WHERE parent_property_id = $1 ORDER BY id`, parentPropertyID)
	}
	if err != nil {
		return nil, h.dbError(ctx, err, "object property")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateObjectProperty(ctx context.Context, op *models.ObjectProperty) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE object_properties SET parent_property_id = $2, child_property_id = $3, required = $4,
			enabled = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query, op.ID, op.ParentPropertyID, op.ChildPropertyID, op.Required, op.Enabled, updatedAt)
	if err != nil {
		return h.dbError(ctx, err, "object property")
	}
	if err := h.checkAffected(ctx, result, "object property"); err != nil {
		return err
	}
	op.UpdatedAt = &updatedAt
	return nil
}

const classPropertyColumns = `id, class_id, property_id, required, enabled, created_at, updated_at`

func scanClassProperty(r rowScanner) (*models.ClassProperty, error) {
	var cp models.ClassProperty
	var updatedAt sql.NullTime
	if err := r.Scan(&cp.ID, &cp.ClassID, &cp.PropertyID, &cp.Required, &cp.Enabled, &cp.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	cp.UpdatedAt = nullTime(updatedAt)
	return &cp, nil
}

func (h *objectifiedDb) CreateClassProperty(ctx context.Context, cp *models.ClassProperty) apperrors.Error {
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now()
	}
	query := `
		INSERT INTO class_properties (class_id, property_id, required, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query, cp.ClassID, cp.PropertyID, cp.Required, cp.Enabled, cp.CreatedAt).Scan(&cp.ID)
	if err != nil {
		return h.dbError(ctx, err, "class property")
	}
	return nil
}

func (h *objectifiedDb) GetClassProperty(ctx context.Context, id int64) (*models.ClassProperty, apperrors.Error) {
	query := `SELECT ` + classPropertyColumns + ` FROM class_properties WHERE id = $1`
	cp, err := scanClassProperty(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "class property")
	}
	return cp, nil
}

// ListClassProperties returns the assignments of one class, or all rows when classID is 0.
func (h *objectifiedDb) ListClassProperties(ctx context.Context, classID int64) ([]models.ClassProperty, apperrors.Error) {
	var (
		list []models.ClassProperty
		err  error
	)
	if classID == 0 {
		list, err = queryAll(ctx, h.q, scanClassProperty, `SELECT `+classPropertyColumns+` FROM class_properties ORDER BY id`)
	} else {
		list, err = queryAll(ctx, h.q, scanClassProperty,
			`SELECT `+classPropertyColumns+` FROM class_properties WHERE class_id = $1 ORDER BY id`, classID)
	}
	if err != nil {
		return nil, h.dbError(ctx, err, "class property")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateClassProperty(ctx context.Context, cp *models.ClassProperty) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE class_properties SET class_id = $2, property_id = $3, required = $4, enabled = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query, cp.ID, cp.ClassID, cp.PropertyID, cp.Required, cp.Enabled, updatedAt)
	if err != nil {
		return h.dbError(ctx, err, "class property")
	}
	if err := h.checkAffected(ctx, result, "class property"); err != nil {
		return err
	}
	cp.UpdatedAt = &updatedAt
	return nil
}
