package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgtype"
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

const dataTypeColumns = `id, name, description, enabled, is_array, data_type, pattern, max_length,
	enum_values, enum_descriptions, examples, core_type, created_at, updated_at`

func scanDataType(r rowScanner) (*models.DataType, error) {
	var (
		dt                                     models.DataType
		pattern                                sql.NullString
		enumValues, enumDescriptions, examples pgtype.TextArray
		updatedAt                              sql.NullTime
	)
	err := r.Scan(&dt.ID, &dt.Name, &dt.Description, &dt.Enabled, &dt.IsArray, &dt.Kind, &pattern, &dt.MaxLength,
		&enumValues, &enumDescriptions, &examples, &dt.CoreType, &dt.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	dt.Pattern = pattern.String
	dt.EnumValues = fromTextArray(enumValues)
	dt.EnumDescriptions = fromTextArray(enumDescriptions)
	dt.Examples = fromTextArray(examples)
	dt.UpdatedAt = nullTime(updatedAt)
	return &dt, nil
}

func (h *objectifiedDb) CreateDataType(ctx context.Context, dt *models.DataType) apperrors.Error {
	if dt.CreatedAt.IsZero() {
		dt.CreatedAt = now()
	}
	query := `
		INSERT INTO data_types (name, description, enabled, is_array, data_type, pattern, max_length,
			enum_values, enum_descriptions, examples, core_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query,
		dt.Name,
		dt.Description,
		dt.Enabled,
		dt.IsArray,
		dt.Kind,
		nullString(dt.Pattern),
		dt.MaxLength,
		textArray(dt.EnumValues),
		textArray(dt.EnumDescriptions),
		textArray(dt.Examples),
		dt.CoreType,
		dt.CreatedAt,
	).Scan(&dt.ID)
	if err != nil {
		return h.dbError(ctx, err, "data type")
	}
	return nil
}

func (h *objectifiedDb) GetDataType(ctx context.Context, id int64) (*models.DataType, apperrors.Error) {
	query := `SELECT ` + dataTypeColumns + ` FROM data_types WHERE id = $1`
	dt, err := scanDataType(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "data type")
	}
	return dt, nil
}

func (h *objectifiedDb) GetDataTypeByName(ctx context.Context, name string) (*models.DataType, apperrors.Error) {
	query := `SELECT ` + dataTypeColumns + ` FROM data_types WHERE LOWER(name) = LOWER($1)`
	dt, err := scanDataType(h.q.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, h.dbError(ctx, err, "data type")
	}
	return dt, nil
}

func (h *objectifiedDb) ListDataTypes(ctx context.Context) ([]models.DataType, apperrors.Error) {
	query := `SELECT ` + dataTypeColumns + ` FROM data_types ORDER BY id`
	list, err := queryAll(ctx, h.q, scanDataType, query)
	if err != nil {
		return nil, h.dbError(ctx, err, "data type")
	}
	return list, nil
}

// UpdateDataType overwrites the mutable columns. core_type is fixed at creation.
func (h *objectifiedDb) UpdateDataType(ctx context.Context, dt *models.DataType) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE data_types SET name = $2, description = $3, enabled = $4, is_array = $5, data_type = $6,
			pattern = $7, max_length = $8, enum_values = $9, enum_descriptions = $10, examples = $11,
			updated_at = $12
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query,
		dt.ID,
		dt.Name,
		dt.Description,
		dt.Enabled,
		dt.IsArray,
		dt.Kind,
		nullString(dt.Pattern),
		dt.MaxLength,
		textArray(dt.EnumValues),
		textArray(dt.EnumDescriptions),
		textArray(dt.Examples),
		updatedAt,
	)
	if err != nil {
		return h.dbError(ctx, err, "data type")
	}
	if err := h.checkAffected(ctx, result, "data type"); err != nil {
		return err
	}
	dt.UpdatedAt = &updatedAt
	return nil
}
