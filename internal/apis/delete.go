package apis

import (
	"net/http"

	"github.com/mugiliam/objectifiedsrv/internal/httpx"
)

// deleteObject disables the entity and answers 200 with an empty body.
func (rs resource[T]) deleteObject(r *http.Request) (*httpx.Response, error) {
	id, err := pathId(r)
	if err != nil {
		return nil, err
	}
	if aerr := rs.delete(r.Context(), id); aerr != nil {
		return nil, aerr
	}
	return &httpx.Response{StatusCode: http.StatusOK}, nil
}
