// Package postgresql implements the db.DB_ contract with hand-written SQL over database/sql and
// the pgx v4 stdlib driver.
package postgresql

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type objectifiedDb struct {
	q       queryer
	release func(ctx context.Context)
}

func NewObjectifiedDb(q queryer) *objectifiedDb {
	return &objectifiedDb{q: q}
}

// WithRelease returns a copy whose Close calls release.
func (h *objectifiedDb) WithRelease(release func(ctx context.Context)) *objectifiedDb {
	return &objectifiedDb{q: h.q, release: release}
}

func (h *objectifiedDb) Close(ctx context.Context) {
	if h.release != nil {
		h.release(ctx)
	}
}

// Migrate creates any missing tables and indexes.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// constraint names mapped to the message reported when a referenced row is missing
var referenceMessages = map[string]string{
	"classes_namespace_id_fkey":                 "namespace not found",
	"fields_data_type_id_fkey":                  "data type not found",
	"properties_field_id_fkey":                  "field not found",
	"object_properties_parent_property_id_fkey": "parent property not found",
	"object_properties_child_property_id_fkey":  "child property not found",
	"class_properties_class_id_fkey":            "class not found",
	"class_properties_property_id_fkey":         "property not found",
	"instances_class_id_fkey":                   "class not found",
}

func (h *objectifiedDb) dbError(ctx context.Context, err error, entity string) apperrors.Error {
	if errors.Is(err, sql.ErrNoRows) {
		return dberror.ErrNotFound.Msg(entity + " not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return dberror.ErrAlreadyExists.Msg(entity + " already exists")
		case "23503":
			if msg, ok := referenceMessages[pgErr.ConstraintName]; ok {
				return dberror.ErrReferenceNotFound.Msg(msg)
			}
			return dberror.ErrReferenceNotFound
		case "23514":
			log.Ctx(ctx).Error().Str("constraint", pgErr.ConstraintName).Msg("check constraint violated")
			return dberror.ErrInvalidInput.Msg("invalid " + entity)
		case "22001":
			return dberror.ErrInvalidInput.Msg(entity + " value too long")
		}
	}
	log.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("database operation failed")
	return dberror.ErrDatabase.Err(err)
}

// checkAffected reports NotFound when an update touched no rows.
func (h *objectifiedDb) checkAffected(ctx context.Context, result sql.Result, entity string) apperrors.Error {
	n, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if n == 0 {
		return dberror.ErrNotFound.Msg(entity + " not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func queryAll[T any](ctx context.Context, q queryer, scan func(rowScanner) (*T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func now() time.Time {
	return time.Now().UTC()
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func textArray(values []string) pgtype.TextArray {
	var a pgtype.TextArray
	if values == nil {
		a.Status = pgtype.Null
		return a
	}
	_ = a.Set(values)
	return a
}

func fromTextArray(a pgtype.TextArray) []string {
	if a.Status != pgtype.Present {
		return nil
	}
	var values []string
	_ = a.AssignTo(&values)
	return values
}

func jsonb(data []byte) pgtype.JSONB {
	if data == nil {
		return pgtype.JSONB{Status: pgtype.Null}
	}
	return pgtype.JSONB{Bytes: data, Status: pgtype.Present}
}

func fromJsonb(j pgtype.JSONB) []byte {
	if j.Status != pgtype.Present {
		return nil
	}
	return j.Bytes
}
