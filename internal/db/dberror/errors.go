// Package dberror defines the errors returned by every database backend.
package dberror

import "github.com/mugiliam/objectifiedsrv/internal/apperrors"

// Each error derives from the application kind it maps to, so callers that do not translate
// db errors still report a sensible status.
var (
	ErrDatabase          apperrors.Error = apperrors.ErrInternal.New("db error")
	ErrAlreadyExists     apperrors.Error = apperrors.ErrConflict.New("already exists")
	ErrNotFound          apperrors.Error = apperrors.ErrNotFound.New("not found")
	ErrInvalidInput      apperrors.Error = apperrors.ErrInvalidInput.New("invalid input")
	ErrReferenceNotFound apperrors.Error = apperrors.ErrInvalidInput.New("referenced entity not found")
)
