package metamodel

import (
	"context"
	"errors"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel/schemavalidator"
	"github.com/rs/zerolog/log"
)

// entityErrors holds the service errors reported for one entity.
type entityErrors struct {
	name     string
	notFound apperrors.Error
	exists   apperrors.Error
}

var (
	namespaceErrors      = entityErrors{"namespace", ErrNamespaceNotFound, ErrNamespaceExists}
	classErrors          = entityErrors{"class", ErrClassNotFound, ErrClassExists}
	dataTypeErrors       = entityErrors{"data type", ErrDataTypeNotFound, ErrDataTypeExists}
	fieldErrors          = entityErrors{"field", ErrFieldNotFound, ErrFieldExists}
	propertyErrors       = entityErrors{"property", ErrPropertyNotFound, ErrPropertyExists}
	objectPropertyErrors = entityErrors{"object property", ErrObjectPropertyNotFound, ErrObjectPropertyExists}
	classPropertyErrors  = entityErrors{"class property", ErrClassPropertyNotFound, ErrClassPropertyExists}
	instanceErrors       = entityErrors{"instance", ErrInstanceNotFound, nil}
)

// translate maps a db error onto the service error for e.
func translate(ctx context.Context, err apperrors.Error, e entityErrors) apperrors.Error {
	switch {
	case errors.Is(err, dberror.ErrNotFound):
		return e.notFound
	case errors.Is(err, dberror.ErrAlreadyExists) && e.exists != nil:
		return e.exists
	case errors.Is(err, dberror.ErrReferenceNotFound):
		return ErrReferenceNotFound.Msg(err.Error())
	case errors.Is(err, dberror.ErrInvalidInput):
		return ErrValidation.Msg(err.Error())
	}
	log.Ctx(ctx).Error().Err(err).Str("entity", e.name).Msg("storage operation failed")
	return ErrMetamodel.Err(err)
}

func validate(s any) apperrors.Error {
	if ves := schemavalidator.ValidateStruct(s); len(ves) > 0 {
		return ErrValidation.Msg(ves.Error())
	}
	return nil
}

func invalid(msg string) apperrors.Error {
	return ErrValidation.Msg(msg)
}

func validId(id int64, e entityErrors) apperrors.Error {
	if id <= 0 {
		return e.notFound
	}
	return nil
}
