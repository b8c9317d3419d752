package apis

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
)

// resource holds the service calls behind the standard routes of one entity.
type resource[T any] struct {
	path   string
	newDto func() *T
	idOf   func(*T) int64
	create func(context.Context, *T) (*T, apperrors.Error)
	edit   func(context.Context, int64, *T) apperrors.Error
	delete func(context.Context, int64) apperrors.Error
	get    func(context.Context, int64) (*T, apperrors.Error)
}

func (rs resource[T]) location(id int64) string {
	return rs.path + "/" + strconv.FormatInt(id, 10)
}

func (rs resource[T]) createObject(r *http.Request) (*httpx.Response, error) {
	req, err := readJsonObject(r)
	if err != nil {
		return nil, err
	}
	in := rs.newDto()
	if err := decodeInto(req, in); err != nil {
		return nil, err
	}
	out, aerr := rs.create(r.Context(), in)
	if aerr != nil {
		return nil, aerr
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   rs.location(rs.idOf(out)),
		Response:   out,
	}, nil
}
