package metamodel

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type classService struct {
	schemas *schemaBuilder
}

var _ ClassService = (*classService)(nil)

func (s *classService) CreateClass(ctx context.Context, c *dto.Class) (*dto.Class, apperrors.Error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	m := models.Class{
		NamespaceID: c.NamespaceID,
		Name:        c.Name,
		Description: c.Description,
		Enabled:     c.Enabled,
	}
	if err := db.DB(ctx).CreateClass(ctx, &m); err != nil {
		return nil, translate(ctx, err, classErrors)
	}
	log.Ctx(ctx).Info().Int64("id", m.ID).Int64("namespace_id", m.NamespaceID).Str("name", m.Name).Msg("class created")
	out := classToDto(&m)
	return &out, nil
}

func (s *classService) load(ctx context.Context, id int64) (*models.Class, apperrors.Error) {
	if err := validId(id, classErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetClass(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, classErrors)
	}
	return m, nil
}

func (s *classService) EditClass(ctx context.Context, id int64, c *dto.Class) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := validate(c); err != nil {
		return err
	}
	m.NamespaceID = c.NamespaceID
	m.Name = c.Name
	m.Description = c.Description
	m.Enabled = c.Enabled
	if err := db.DB(ctx).UpdateClass(ctx, m); err != nil {
		return translate(ctx, err, classErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *classService) DeleteClass(ctx context.Context, id int64) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateClass(ctx, m); err != nil {
		return translate(ctx, err, classErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *classService) GetClassById(ctx context.Context, id int64) (*dto.Class, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := classToDto(m)
	return &out, nil
}

func (s *classService) ListClasses(ctx context.Context, namespaceID int64) ([]dto.Class, apperrors.Error) {
	if namespaceID < 0 {
		return nil, invalid("namespaceId: value must not be negative")
	}
	list, err := db.DB(ctx).ListClasses(ctx, namespaceID)
	if err != nil {
		return nil, translate(ctx, err, classErrors)
	}
	return mapList(list, classToDto), nil
}

func (s *classService) FindClasses(ctx context.Context, value string) ([]dto.Class, apperrors.Error) {
	if value == "" {
		return nil, invalid("search value is required")
	}
	list, err := db.DB(ctx).FindClasses(ctx, value)
	if err != nil {
		return nil, translate(ctx, err, classErrors)
	}
	return mapList(list, classToDto), nil
}

func (s *classService) GetClassSchema(ctx context.Context, id int64) ([]byte, apperrors.Error) {
	if err := validId(id, classErrors); err != nil {
		return nil, err
	}
	return s.schemas.classSchema(ctx, id)
}
