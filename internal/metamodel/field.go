package metamodel

import (
	"context"
	"errors"
	"strings"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type fieldService struct {
	schemas *schemaBuilder
}

var _ FieldService = (*fieldService)(nil)

// toModel validates f against its data type and returns the row to store.
func (s *fieldService) toModel(ctx context.Context, f *dto.Field) (*models.Field, apperrors.Error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	dt, err := db.DB(ctx).GetDataType(ctx, f.DataType.ID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrReferenceNotFound.Msg("data type not found")
		}
		return nil, translate(ctx, err, dataTypeErrors)
	}
	if !dt.Enabled {
		return nil, ErrInvalidReference.Msg("data type is disabled")
	}
	if !f.DefaultValue.IsNil() {
		schema, serr := dataTypeSchema(dt)
		if serr != nil {
			return nil, invalid("dataType: " + serr.Error())
		}
		if violations := validateValue(ctx, schema, f.DefaultValue.Value); len(violations) > 0 {
			return nil, invalid("defaultValue: " + strings.Join(violations, "; "))
		}
	}
	defaultValue, jerr := defaultValueJSON(f.DefaultValue)
	if jerr != nil {
		return nil, invalid("defaultValue: " + jerr.Error())
	}
	return &models.Field{
		Name:         f.Name,
		Description:  f.Description,
		DefaultValue: defaultValue,
		Enabled:      f.Enabled,
		DataTypeID:   dt.ID,
		DataTypeName: dt.Name,
	}, nil
}

func (s *fieldService) CreateField(ctx context.Context, f *dto.Field) (*dto.Field, apperrors.Error) {
	m, err := s.toModel(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := db.DB(ctx).CreateField(ctx, m); err != nil {
		return nil, translate(ctx, err, fieldErrors)
	}
	log.Ctx(ctx).Info().Int64("id", m.ID).Str("name", m.Name).Int64("data_type_id", m.DataTypeID).Msg("field created")
	out := fieldToDto(m)
	return &out, nil
}

func (s *fieldService) load(ctx context.Context, id int64) (*models.Field, apperrors.Error) {
	if err := validId(id, fieldErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetField(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, fieldErrors)
	}
	return m, nil
}

func (s *fieldService) EditField(ctx context.Context, id int64, f *dto.Field) apperrors.Error {
	existing, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m, err := s.toModel(ctx, f)
	if err != nil {
		return err
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	if err := db.DB(ctx).UpdateField(ctx, m); err != nil {
		return translate(ctx, err, fieldErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

// DeleteField disables the field. The row is kept.
func (s *fieldService) DeleteField(ctx context.Context, id int64) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateField(ctx, m); err != nil {
		return translate(ctx, err, fieldErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *fieldService) GetFieldById(ctx context.Context, id int64) (*dto.Field, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := fieldToDto(m)
	return &out, nil
}

func (s *fieldService) ListFields(ctx context.Context) ([]dto.Field, apperrors.Error) {
	list, err := db.DB(ctx).ListFields(ctx)
	if err != nil {
		return nil, translate(ctx, err, fieldErrors)
	}
	return mapList(list, fieldToDto), nil
}
