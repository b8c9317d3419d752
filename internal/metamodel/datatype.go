package metamodel

import (
	"context"
	"fmt"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type dataTypeService struct {
	schemas *schemaBuilder
}

var _ DataTypeService = (*dataTypeService)(nil)

// checkDataType applies the rules the validate tags cannot express.
func checkDataType(dt *dto.DataType) apperrors.Error {
	if err := validate(dt); err != nil {
		return err
	}
	if !dt.DataType.IsStringLike() {
		if dt.Pattern != "" {
			return invalid(fmt.Sprintf("pattern: not supported for %s", dt.DataType))
		}
		if dt.MaxLength > 0 {
			return invalid(fmt.Sprintf("maxLength: not supported for %s", dt.DataType))
		}
	}
	if len(dt.EnumDescriptions) > len(dt.EnumValues) {
		return invalid("enumDescriptions: more descriptions than enum values")
	}
	m := dataTypeToModel(dt)
	if _, err := dataTypeSchema(&m); err != nil {
		return invalid("enumValues: " + err.Error())
	}
	return nil
}

// CreateDataType stores a user data type. Core data types only come from the bootstrap seed.
func (s *dataTypeService) CreateDataType(ctx context.Context, dt *dto.DataType) (*dto.DataType, apperrors.Error) {
	if err := checkDataType(dt); err != nil {
		return nil, err
	}
	m := dataTypeToModel(dt)
	m.CoreType = false
	if err := db.DB(ctx).CreateDataType(ctx, &m); err != nil {
		return nil, translate(ctx, err, dataTypeErrors)
	}
	log.Ctx(ctx).Info().Int64("id", m.ID).Str("name", m.Name).Str("kind", m.Kind).Msg("data type created")
	out := dataTypeToDto(&m)
	return &out, nil
}

func (s *dataTypeService) load(ctx context.Context, id int64) (*models.DataType, apperrors.Error) {
	if err := validId(id, dataTypeErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetDataType(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, dataTypeErrors)
	}
	return m, nil
}

func (s *dataTypeService) loadMutable(ctx context.Context, id int64) (*models.DataType, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.CoreType {
		return nil, ErrCoreDataType
	}
	return m, nil
}

func (s *dataTypeService) EditDataType(ctx context.Context, id int64, dt *dto.DataType) apperrors.Error {
	m, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	if err := checkDataType(dt); err != nil {
		return err
	}
	updated := dataTypeToModel(dt)
	updated.ID = m.ID
	updated.CoreType = m.CoreType
	updated.CreatedAt = m.CreatedAt
	if err := db.DB(ctx).UpdateDataType(ctx, &updated); err != nil {
		return translate(ctx, err, dataTypeErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *dataTypeService) DeleteDataType(ctx context.Context, id int64) apperrors.Error {
	m, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateDataType(ctx, m); err != nil {
		return translate(ctx, err, dataTypeErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *dataTypeService) GetDataTypeById(ctx context.Context, id int64) (*dto.DataType, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dataTypeToDto(m)
	return &out, nil
}

func (s *dataTypeService) ListDataTypes(ctx context.Context) ([]dto.DataType, apperrors.Error) {
	list, err := db.DB(ctx).ListDataTypes(ctx)
	if err != nil {
		return nil, translate(ctx, err, dataTypeErrors)
	}
	return mapList(list, dataTypeToDto), nil
}
