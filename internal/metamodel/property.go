package metamodel

import (
	"context"
	"errors"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type propertyService struct {
	schemas *schemaBuilder
}

var _ PropertyService = (*propertyService)(nil)

// checkField verifies that an enabled property points at an enabled field.
func checkField(ctx context.Context, p *dto.Property) apperrors.Error {
	if !p.Enabled {
		return nil
	}
	f, err := db.DB(ctx).GetField(ctx, p.FieldID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrReferenceNotFound.Msg("field not found")
		}
		return translate(ctx, err, fieldErrors)
	}
	if !f.Enabled {
		return ErrInvalidReference.Msg("field is disabled")
	}
	return nil
}

func (s *propertyService) CreateProperty(ctx context.Context, p *dto.Property) (*dto.Property, apperrors.Error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if err := checkField(ctx, p); err != nil {
		return nil, err
	}
	m := models.Property{
		Name:        p.Name,
		Description: p.Description,
		FieldID:     p.FieldID,
		Enabled:     p.Enabled,
	}
	if err := db.DB(ctx).CreateProperty(ctx, &m); err != nil {
		return nil, translate(ctx, err, propertyErrors)
	}
	log.Ctx(ctx).Info().Int64("id", m.ID).Str("name", m.Name).Int64("field_id", m.FieldID).Msg("property created")
	out := propertyToDto(&m)
	return &out, nil
}

func (s *propertyService) load(ctx context.Context, id int64) (*models.Property, apperrors.Error) {
	if err := validId(id, propertyErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetProperty(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, propertyErrors)
	}
	return m, nil
}

func (s *propertyService) EditProperty(ctx context.Context, id int64, p *dto.Property) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := validate(p); err != nil {
		return err
	}
	if err := checkField(ctx, p); err != nil {
		return err
	}
	m.Name = p.Name
	m.Description = p.Description
	m.FieldID = p.FieldID
	m.Enabled = p.Enabled
	if err := db.DB(ctx).UpdateProperty(ctx, m); err != nil {
		return translate(ctx, err, propertyErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id int64) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateProperty(ctx, m); err != nil {
		return translate(ctx, err, propertyErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *propertyService) GetPropertyById(ctx context.Context, id int64) (*dto.Property, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := propertyToDto(m)
	return &out, nil
}

func (s *propertyService) GetPropertyByName(ctx context.Context, name string) (*dto.Property, apperrors.Error) {
	if name == "" {
		return nil, ErrPropertyNotFound
	}
	m, err := db.DB(ctx).GetPropertyByName(ctx, name)
	if err != nil {
		return nil, translate(ctx, err, propertyErrors)
	}
	out := propertyToDto(m)
	return &out, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]dto.Property, apperrors.Error) {
	list, err := db.DB(ctx).ListProperties(ctx)
	if err != nil {
		return nil, translate(ctx, err, propertyErrors)
	}
	return mapList(list, propertyToDto), nil
}
