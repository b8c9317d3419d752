package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgtype"
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
)

const instanceColumns = `id, class_id, name, data, enabled, created_at, updated_at`

func scanInstance(r rowScanner) (*models.Instance, error) {
	var (
		in        models.Instance
		name      sql.NullString
		data      pgtype.JSONB
		updatedAt sql.NullTime
	)
	if err := r.Scan(&in.ID, &in.ClassID, &name, &data, &in.Enabled, &in.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	in.Name = name.String
	in.Data = fromJsonb(data)
	in.UpdatedAt = nullTime(updatedAt)
	return &in, nil
}

func (h *objectifiedDb) CreateInstance(ctx context.Context, in *models.Instance) apperrors.Error {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now()
	}
	query := `
		INSERT INTO instances (class_id, name, data, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := h.q.QueryRowContext(ctx, query, in.ClassID, nullString(in.Name), jsonb(in.Data), in.Enabled, in.CreatedAt).Scan(&in.ID)
	if err != nil {
		return h.dbError(ctx, err, "instance")
	}
	return nil
}

func (h *objectifiedDb) GetInstance(ctx context.Context, id int64) (*models.Instance, apperrors.Error) {
	query := `SELECT ` + instanceColumns + ` FROM instances WHERE id = $1`
	in, err := scanInstance(h.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, h.dbError(ctx, err, "instance")
	}
	return in, nil
}

// ListInstances returns the instances of one class, or all instances when classID is 0.
func (h *objectifiedDb) ListInstances(ctx context.Context, classID int64) ([]models.Instance, apperrors.Error) {
	var (
		list []models.Instance
		err  error
	)
	if classID == 0 {
		list, err = queryAll(ctx, h.q, scanInstance, `SELECT `+instanceColumns+` FROM instances ORDER BY id`)
	} else {
		list, err = queryAll(ctx, h.q, scanInstance, `SELECT `+instanceColumns+` FROM instances WHERE class_id = $1 ORDER BY id`, classID)
	}
	if err != nil {
		return nil, h.dbError(ctx, err, "instance")
	}
	return list, nil
}

func (h *objectifiedDb) UpdateInstance(ctx context.Context, in *models.Instance) apperrors.Error {
	updatedAt := now()
	query := `
		UPDATE instances SET class_id = $2, name = $3, data = $4, enabled = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := h.q.ExecContext(ctx, query, in.ID, in.ClassID, nullString(in.Name), jsonb(in.Data), in.Enabled, updatedAt)
	if err != nil {
		return h.dbError(ctx, err, "instance")
	}
	if err := h.checkAffected(ctx, result, "instance"); err != nil {
		return err
	}
	in.UpdatedAt = &updatedAt
	return nil
}
