package metamodel

import (
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
)

var (
	ErrMetamodel         apperrors.Error = apperrors.ErrInternal.New("error in processing request")
	ErrValidation        apperrors.Error = apperrors.ErrInvalidInput.New("validation failed")
	ErrReferenceNotFound apperrors.Error = apperrors.ErrInvalidInput.New("referenced entity not found")
	ErrInvalidReference  apperrors.Error = apperrors.ErrInvalidInput.New("invalid reference")
	ErrInstanceInvalid   apperrors.Error = apperrors.ErrInvalidInput.New("instance does not match class schema")
	ErrUnimplemented     apperrors.Error = apperrors.ErrUnimplemented.New("operation not implemented")

	ErrNamespaceNotFound      apperrors.Error = apperrors.ErrNotFound.New("namespace not found")
	ErrNamespaceExists        apperrors.Error = apperrors.ErrConflict.New("namespace already exists")
	ErrCoreNamespace          apperrors.Error = apperrors.ErrForbidden.New("core namespace cannot be modified")
	ErrClassNotFound          apperrors.Error = apperrors.ErrNotFound.New("class not found")
	ErrClassExists            apperrors.Error = apperrors.ErrConflict.New("class already exists in namespace")
	ErrDataTypeNotFound       apperrors.Error = apperrors.ErrNotFound.New("data type not found")
	ErrDataTypeExists         apperrors.Error = apperrors.ErrConflict.New("data type already exists")
	ErrCoreDataType           apperrors.Error = apperrors.ErrForbidden.New("core data type cannot be modified")
	ErrFieldNotFound          apperrors.Error = apperrors.ErrNotFound.New("field not found")
	ErrFieldExists            apperrors.Error = apperrors.ErrConflict.New("field already exists")
	ErrPropertyNotFound       apperrors.Error = apperrors.ErrNotFound.New("property not found")
	ErrPropertyExists         apperrors.Error = apperrors.ErrConflict.New("property already exists")
	ErrObjectPropertyNotFound apperrors.Error = apperrors.ErrNotFound.New("object property not found")
	ErrObjectPropertyExists   apperrors.Error = apperrors.ErrConflict.New("child property already assigned to parent")
	ErrObjectPropertyCycle    apperrors.Error = apperrors.ErrInvalidInput.New("object property would create a cycle")
	ErrClassPropertyNotFound  apperrors.Error = apperrors.ErrNotFound.New("class property not found")
	ErrClassPropertyExists    apperrors.Error = apperrors.ErrConflict.New("property already assigned to class")
	ErrInstanceNotFound       apperrors.Error = apperrors.ErrNotFound.New("instance not found")
)
