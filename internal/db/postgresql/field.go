package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgtype"
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

const fieldSelect = `
	SELECT f.id, f.name, f.description, f.default_value, f.enabled, f.data_type_id, d.name,
		f.created_at, f.updated_at
	FROM fields f
	JOIN data_types d ON d.id = f.data_type_id
`

func scanField(r rowScanner) (*models.Field, error) {
	var (
		f            models.Field
		defaultValue pgtype.JSONB
		updatedAt    sql.NullTime
	)
	err := r.Scan(&f.ID, &f.Name, &f.Description, &defaultValue, &f.Enabled, &f.DataTypeID, &f.DataTypeName,
		&f.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	f.DefaultValue = fromJsonb(defaultValue)
	f.UpdatedAt = nullTime(updatedAt)
	return &f, nil
}

func (h *objectifiedDb) CreateField(ctx context.Context, f *models.Field) apperrors.Error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now()
	}
	query := `
		INSERT INTO fields (name, description, default_value, enabled, data_type_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query,
		f.Name,
		f.Description,
		jsonb(f.DefaultValue),
		f.Enabled,
		f.DataTypeID,
		f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return h.dbError(ctx, err, "field")
	}
	return nil
}

func (h *objectifiedDb) GetField(ctx context.Context, id int64) (*models.Field, apperrors.Error) {
	f, err := scanField(h.q.QueryRowContext(ctx, fieldSelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "field")
	}
	return f, nil
}

func (h *objectifiedDb) ListFields(ctx context.Context) ([]models.Field, apperrors.Error) {
	list, err := queryAll(ctx, h.q, scanField, fieldSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, h.dbError(ctx, err, "field")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateField(ctx context.Context, f *models.Field) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE fields SET name = $2, description = $3, default_value = $4, enabled = $5, data_type_id = $6,
			updated_at = $7
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.Description,
		jsonb(f.DefaultValue),
		f.Enabled,
		f.DataTypeID,
		updatedAt,
	)
	if err != nil {
		return h.dbError(ctx, err, "field")
	}
	if err := h.checkAffected(ctx, result, "field"); err != nil {
		return err
	}
	f.UpdatedAt = &updatedAt
	return nil
}
