package apis

import (
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
)

func errIdMismatch() error {
	return httpx.ErrInvalidId("id in request body does not match the path")
}

func errInvalidFilter(name string) error {
	return httpx.ErrInvalidRequest("invalid value for " + name)
}

func errNotAnObject() error {
	return httpx.ErrInvalidRequest("request body must be a JSON object")
}
