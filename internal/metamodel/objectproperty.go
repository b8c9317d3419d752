package metamodel

import (
	"context"
	"errors"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
	"github.com/rs/zerolog/log"
)

type objectPropertyService struct {
	schemas *schemaBuilder
}

var _ ObjectPropertyService = (*objectPropertyService)(nil)

// checkParent verifies that the parent property is typed OBJECT.
func checkParent(ctx context.Context, parentID int64) apperrors.Error {
	p, err := db.DB(ctx).GetProperty(ctx, parentID)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrReferenceNotFound.Msg("parent property not found")
		}
		return translate(ctx, err, propertyErrors)
	}
	f, err := db.DB(ctx).GetField(ctx, p.FieldID)
	if err != nil {
		return translate(ctx, err, fieldErrors)
	}
	dt, err := db.DB(ctx).GetDataType(ctx, f.DataTypeID)
	if err != nil {
		return translate(ctx, err, dataTypeErrors)
	}
	if types.PrimitiveKind(dt.Kind) != types.KindObject {
		return ErrInvalidReference.Msg("parentPropertyId: parent property data type must be OBJECT")
	}
	return nil
}

// reaches reports whether target is reachable from the property from by following enabled
// object property links, skipping the link being edited.
func reaches(ctx context.Context, from, target, skipID int64) (bool, apperrors.Error) {
	seen := map[int64]bool{}
	stack := []int64{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true, nil
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		children, err := db.DB(ctx).ListObjectProperties(ctx, id)
		if err != nil {
			return false, translate(ctx, err, objectPropertyErrors)
		}
		for _, c := range children {
			if c.Enabled && c.ID != skipID {
				stack = append(stack, c.ChildPropertyID)
			}
		}
	}
	return false, nil
}

func (s *objectPropertyService) check(ctx context.Context, op *dto.ObjectProperty, skipID int64) apperrors.Error {
	if err := validate(op); err != nil {
		return err
	}
	if err := checkParent(ctx, op.ParentPropertyID); err != nil {
		return err
	}
	cycle, err := reaches(ctx, op.ChildPropertyID, op.ParentPropertyID, skipID)
	if err != nil {
		return err
	}
	if cycle {
		return ErrObjectPropertyCycle
	}
	return nil
}

func (s *objectPropertyService) CreateObjectProperty(ctx context.Context, op *dto.ObjectProperty) (*dto.ObjectProperty, apperrors.Error) {
	if err := s.check(ctx, op, 0); err != nil {
		return nil, err
	}
	m := models.ObjectProperty{
		ParentPropertyID: op.ParentPropertyID,
		ChildPropertyID:  op.ChildPropertyID,
		Required:         op.Required,
		Enabled:          op.Enabled,
	}
	if err := db.DB(ctx).CreateObjectProperty(ctx, &m); err != nil {
		return nil, translate(ctx, err, objectPropertyErrors)
	}
	s.schemas.invalidate(ctx)
	log.Ctx(ctx).Info().Int64("id", m.ID).Int64("parent", m.ParentPropertyID).Int64("child", m.ChildPropertyID).Msg("object property created")
	out := objectPropertyToDto(&m)
	return &out, nil
}

func (s *objectPropertyService) load(ctx context.Context, id int64) (*models.ObjectProperty, apperrors.Error) {
	if err := validId(id, objectPropertyErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetObjectProperty(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, objectPropertyErrors)
	}
	return m, nil
}

func (s *objectPropertyService) EditObjectProperty(ctx context.Context, id int64, op *dto.ObjectProperty) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if op.Enabled {
		if err := s.check(ctx, op, id); err != nil {
			return err
		}
	} else if err := validate(op); err != nil {
		return err
	}
	m.ParentPropertyID = op.ParentPropertyID
	m.ChildPropertyID = op.ChildPropertyID
	m.Required = op.Required
	m.Enabled = op.Enabled
	if err := db.DB(ctx).UpdateObjectProperty(ctx, m); err != nil {
		return translate(ctx, err, objectPropertyErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *objectPropertyService) DeleteObjectProperty(ctx context.Context, id int64) apperrors.Error {
	m, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateObjectProperty(ctx, m); err != nil {
		return translate(ctx, err, objectPropertyErrors)
	}
	s.schemas.invalidate(ctx)
	return nil
}

func (s *objectPropertyService) GetObjectPropertyById(ctx context.Context, id int64) (*dto.ObjectProperty, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := objectPropertyToDto(m)
	return &out, nil
}

func (s *objectPropertyService) ListObjectProperties(ctx context.Context, parentPropertyID int64) ([]dto.ObjectProperty, apperrors.Error) {
	if parentPropertyID < 0 {
		return nil, invalid("parentPropertyId: value must not be negative")
	}
	list, err := db.DB(ctx).ListObjectProperties(ctx, parentPropertyID)
	if err != nil {
		return nil, translate(ctx, err, objectPropertyErrors)
	}
	return mapList(list, objectPropertyToDto), nil
}
