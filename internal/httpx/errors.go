package httpx

import (
	"net/http"
	"strings"
)

func newError(statusCode int, description string, msg []string) *Error {
	if len(msg) > 0 {
		description = strings.Join(msg, "; ")
	}
	return &Error{
		StatusCode:  statusCode,
		Result:      "error",
		Description: description,
	}
}

func ErrInvalidRequest(msg ...string) *Error {
	return newError(http.StatusBadRequest, "invalid request", msg)
}

func ErrUnableToReadRequest() *Error {
	return newError(http.StatusBadRequest, "unable to read request", nil)
}

func ErrInvalidId(msg ...string) *Error {
	return newError(http.StatusBadRequest, "invalid id", msg)
}

func ErrUnAuthorized(msg ...string) *Error {
	return newError(http.StatusUnauthorized, "unauthorized", msg)
}

func ErrForbidden(msg ...string) *Error {
	return newError(http.StatusForbidden, "forbidden", msg)
}

func ErrNotFound(msg ...string) *Error {
	return newError(http.StatusNotFound, "not found", msg)
}

func ErrApplicationError(msg ...string) *Error {
	return newError(http.StatusInternalServerError, "application error", msg)
}
