package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

const namespaceColumns = `id, name, description, enabled, core_namespace, created_at, updated_at`

func scanNamespace(r rowScanner) (*models.Namespace, error) {
	var ns models.Namespace
	var updatedAt sql.NullTime
	if err := r.Scan(&ns.ID, &ns.Name, &ns.Description, &ns.Enabled, &ns.CoreNamespace, &ns.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	ns.UpdatedAt = nullTime(updatedAt)
	return &ns, nil
}

func (h *objectifiedDb) CreateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error {
	if ns.CreatedAt.IsZero() {
		ns.CreatedAt = now()
	}
	query := `
		INSERT INTO namespaces (name, description, enabled, core_namespace, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query,
		ns.Name,
		ns.Description,
		ns.Enabled,
		ns.CoreNamespace,
		ns.CreatedAt,
	).Scan(&ns.ID)
	if err != nil {
		return h.dbError(ctx, err, "namespace")
	}
	return nil
}

func (h *objectifiedDb) GetNamespace(ctx context.Context, id int64) (*models.Namespace, apperrors.Error) {
	query := `SELECT ` + namespaceColumns + ` FROM namespaces WHERE id = $1`
	ns, err := scanNamespace(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "namespace")
	}
	return ns, nil
}

func (h *objectifiedDb) GetNamespaceByName(ctx context.Context, name string) (*models.Namespace, apperrors.Error) {
	query := `SELECT ` + namespaceColumns + ` FROM namespaces WHERE LOWER(name) = LOWER($1)`
	ns, err := scanNamespace(h.q.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, h.dbError(ctx, err, "namespace")
	}
	return ns, nil
}

func (h *objectifiedDb) ListNamespaces(ctx context.Context) ([]models.Namespace, apperrors.Error) {
	query := `SELECT ` + namespaceColumns + ` FROM namespaces ORDER BY id`
	list, err := queryAll(ctx, h.q, scanNamespace, query)
	if err != nil {
		return nil, h.dbError(ctx, err, "namespace")
	}
	return list, nil
}

func (h *objectifiedDb) FindNamespaces(ctx context.Context, value string) ([]models.Namespace, apperrors.Error) {
	query := `
		SELECT ` + namespaceColumns + ` FROM namespaces
		WHERE STRPOS(LOWER(name), LOWER($1)) > 0 OR STRPOS(LOWER(description), LOWER($1)) > 0
		ORDER BY id
	`
	list, err := queryAll(ctx, h.q, scanNamespace, query, value)
	if err != nil {
		return nil, h.dbError(ctx, err, "namespace")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE namespaces SET name = $2, description = $3, enabled = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query, ns.ID, ns.Name, ns.Description, ns.Enabled, updatedAt)
	if err != nil {
		return h.dbError(ctx, err, "namespace")
	}
	if err := h.checkAffected(ctx, result, "namespace"); err != nil {
		return err
	}
	ns.UpdatedAt = &updatedAt
	return nil
}
