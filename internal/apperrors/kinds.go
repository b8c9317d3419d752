package apperrors

import "net/http"

// Error kinds understood by the transport layer.
var (
	ErrInternal      Error = New("internal error").SetStatusCode(http.StatusInternalServerError)
	ErrInvalidInput  Error = New("invalid input").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrUnauthorized  Error = New("unauthorized").SetStatusCode(http.StatusUnauthorized)
	ErrForbidden     Error = New("forbidden").SetExpandError(true).SetStatusCode(http.StatusForbidden)
	ErrNotFound      Error = New("not found").SetStatusCode(http.StatusNotFound)
	ErrConflict      Error = New("conflict").SetStatusCode(http.StatusConflict)
	ErrUnimplemented Error = New("not implemented").SetStatusCode(http.StatusNotImplemented)
)
