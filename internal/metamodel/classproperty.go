package metamodel

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type classPropertyService struct {
	schemas *schemaBuilder
}

var _ ClassPropertyService = (*classPropertyService)(nil)

func (s *classPropertyService) CreateClassProperty(ctx context.Context, cp *dto.ClassProperty) (*dto.ClassProperty, apperrors.Error) {
	if err := validate(cp); err != nil {
		return nil, err
	}
	m := models.ClassProperty{
		ClassID:    cp.ClassID,
		PropertyID: cp.PropertyID,
		Required:   cp.Required,
		Enabled:    cp.Enabled,
	}
	if err := db.DB(ctx).CreateClassProperty(ctx, &m); err != nil {
		return nil, translate(ctx, err, classPropertyErrors)
	}
	s.schemas.invalidate(ctx)
	log.Ctx(ctx).Info().Int64("id", m.ID).Int64("class_id", m.ClassID).Int64("property_id", m.PropertyID).Msg("class property created")
	out := classPropertyToDto(&m)
	return &out, nil
}

func (s *classPropertyService) load(ctx context.Context, id int64) (*models.ClassProperty, apperrors.Error) {
	if err := validId(id, classPropertyErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetClassProperty(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, classPropertyErrors)
	}
	return m, nil
}

func (s *classPropertyService) EditClassProperty(ctx context.Context, id int64, cp *dto.ClassProperty) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := validate(cp); err != nil {
		return err
	}
	m.ClassID = cp.ClassID
	m.PropertyID = cp.PropertyID
	m.Required = cp.Required
	m.Enabled = cp.Enabled
	if err := db.DB(ctx).UpdateClassProperty(ctx, m); err != nil {
		return translate(ctx, err, classPropertyErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *classPropertyService) DeleteClassProperty(ctx context.Context, id int64) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateClassProperty(ctx, m); err != nil {
		return translate(ctx, err, classPropertyErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *classPropertyService) GetClassPropertyById(ctx context.Context, id int64) (*dto.ClassProperty, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := classPropertyToDto(m)
	return &out, nil
}

func (s *classPropertyService) ListClassProperties(ctx context.Context, classID int64) ([]dto.ClassProperty, apperrors.Error) {
	if classID < 0 {
		return nil, invalid("classId: value must not be negative")
	}
	list, err := db.DB(ctx).ListClassProperties(ctx, classID)
	if err != nil {
		return nil, translate(ctx, err, classPropertyErrors)
	}
	return mapList(list, classPropertyToDto), nil
}
