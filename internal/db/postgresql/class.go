package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

const classColumns = `id, namespace_id, name, description, enabled, created_at, updated_at`

func scanClass(r rowScanner) (*models.Class, error) {
	var c models.Class
	var updatedAt sql.NullTime
	if err := r.Scan(&c.ID, &c.NamespaceID, &c.Name, &c.Description, &c.Enabled, &c.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	c.UpdatedAt = nullTime(updatedAt)
	return &c, nil
}

func (h *objectifiedDb) CreateClass(ctx context.Context, c *models.Class) apperrors.Error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
	query := `
		INSERT INTO classes (namespace_id, name, description, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query, c.NamespaceID, c.Name, c.Description, c.Enabled, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return h.dbError(ctx, err, "class")
	}
	return nil
}

func (h *objectifiedDb) GetClass(ctx context.Context, id int64) (*models.Class, apperrors.Error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	c, err := scanClass(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "class")
	}
	return c, nil
}

// ListClasses returns the classes of one namespace, or all classes when namespaceID is 0.
func (h *objectifiedDb) ListClasses(ctx context.Context, namespaceID int64) ([]models.Class, apperrors.Error) {
	var (
		list []models.Class
		err  error
	)
	if namespaceID == 0 {
		list, err = queryAll(ctx, h.q, scanClass, `SELECT `+classColumns+` FROM classes ORDER BY id`)
	} else {
		list, err = queryAll(ctx, h.q, scanClass, `SELECT `+classColumns+` FROM classes WHERE namespace_id = $1 ORDER BY id`, namespaceID)
	}
	if err != nil {
		return nil, h.dbError(ctx, err, "class")
	}
	return list, nil
}

func (h *objectifiedDb) FindClasses(ctx context.Context, value string) ([]models.Class, apperrors.Error) {
	query := `
		SELECT ` + classColumns + ` FROM classes
		WHERE STRPOS(LOWER(name), LOWER($1)) > 0 OR STRPOS(LOWER(description), LOWER($1)) > 0
		ORDER BY id
	`
	list, err := queryAll(ctx, h.q, scanClass, query, value)
	if err != nil {
		return nil, h.dbError(ctx, err, "class")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateClass(ctx context.Context, c *models.Class) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE classes SET namespace_id = $2, name = $3, description = $4, enabled = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query, c.ID, c.NamespaceID, c.Name, c.Description, c.Enabled, updatedAt)
	if err != nil {
		return h.dbError(ctx, err, "class")
	}
	if err := h.checkAffected(ctx, result, "class"); err != nil {
		return err
	}
	c.UpdatedAt = &updatedAt
	return nil
}
