package metamodel

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type instanceService struct {
	schemas *schemaBuilder
}

var _ InstanceService = (*instanceService)(nil)

// toModel validates the instance data against the schema of its class.
func (s *instanceService) toModel(ctx context.Context, in *dto.Instance) (*models.Instance, apperrors.Error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	c, err := db.DB(ctx).GetClass(ctx, in.ClassID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrReferenceNotFound.Msg("class not found")
		}
		return nil, translate(ctx, err, classErrors)
	}
	if !c.Enabled {
		return nil, ErrInvalidReference.Msg("class is disabled")
	}
	if err := s.schemas.validateInstance(ctx, c.ID, in.Data); err != nil {
		return nil, err
	}
	data, jerr := json.Marshal(in.Data)
	if jerr != nil {
		return nil, invalid("data: " + jerr.Error())
	}
	return &models.Instance{
		ClassID: c.ID,
		Name:    in.Name,
		Data:    data,
		Enabled: in.Enabled,
	}, nil
}

func (s *instanceService) CreateInstance(ctx context.Context, in *dto.Instance) (*dto.Instance, apperrors.Error) {
	m, err := s.toModel(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := db.DB(ctx).CreateInstance(ctx, m); err != nil {
		return nil, translate(ctx, err, instanceErrors)
	}
	log.Ctx(ctx).Info().Int64("id", m.ID).Int64("class_id", m.ClassID).Msg("instance created")
	out := instanceToDto(m)
	return &out, nil
}

func (s *instanceService) load(ctx context.Context, id int64) (*models.Instance, apperrors.Error) {
	if err := validId(id, instanceErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetInstance(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, instanceErrors)
	}
	return m, nil
}

func (s *instanceService) EditInstance(ctx context.Context, id int64, in *dto.Instance) apperrors.Error {
	existing, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m, err := s.toModel(ctx, in)
	if err != nil {
		return err
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	if err := db.DB(ctx).UpdateInstance(ctx, m); err != nil {
		return translate(ctx, err, instanceErrors)
	}
	return nil
}

func (s *instanceService) DeleteInstance(ctx context.Context, id int64) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateInstance(ctx, m); err != nil {
		return translate(ctx, err, instanceErrors)
	}
	return nil
}

func (s *instanceService) GetInstanceById(ctx context.Context, id int64) (*dto.Instance, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := instanceToDto(m)
	return &out, nil
}

func (s *instanceService) ListInstances(ctx context.Context, classID int64) ([]dto.Instance, apperrors.Error) {
	if classID < 0 {
		return nil, invalid("classId: value must not be negative")
	}
	list, err := db.DB(ctx).ListInstances(ctx, classID)
	if err != nil {
		return nil, translate(ctx, err, instanceErrors)
	}
	return mapList(list, instanceToDto), nil
}
