package apis

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/mugiliam/objectifiedsrv/pkg/api/schemastore"
	"github.com/rs/zerolog/log"
)

func ok(v any) *httpx.Response {
	return &httpx.Response{StatusCode: http.StatusOK, Response: v}
}

func (rs resource[T]) getObject(r *http.Request) (*httpx.Response, error) {
	id, err := pathId(r)
	if err != nil {
		return nil, err
	}
	out, aerr := rs.get(r.Context(), id)
	if aerr != nil {
		return nil, aerr
	}
	return ok(out), nil
}

func listObjects[T any](list func(context.Context) ([]T, apperrors.Error)) httpx.RequestHandler {
	return func(r *http.Request) (*httpx.Response, error) {
		out, err := list(r.Context())
		if err != nil {
			return nil, err
		}
		return ok(out), nil
	}
}

// listObjectsBy passes the numeric query parameter param to list.
func listObjectsBy[T any](param string, list func(context.Context, int64) ([]T, apperrors.Error)) httpx.RequestHandler {
	return func(r *http.Request) (*httpx.Response, error) {
		id, err := queryId(r, param)
		if err != nil {
			return nil, err
		}
		out, aerr := list(r.Context(), id)
		if aerr != nil {
			return nil, aerr
		}
		return ok(out), nil
	}
}

func findObjects[T any](find func(context.Context, string) ([]T, apperrors.Error)) httpx.RequestHandler {
	return func(r *http.Request) (*httpx.Response, error) {
		out, err := find(r.Context(), chi.URLParam(r, "value"))
		if err != nil {
			return nil, err
		}
		return ok(out), nil
	}
}

func getByName[T any](get func(context.Context, string) (*T, apperrors.Error)) httpx.RequestHandler {
	return func(r *http.Request) (*httpx.Response, error) {
		out, err := get(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			return nil, err
		}
		return ok(out), nil
	}
}

// getSchema serves a JSON Schema produced by the service as is, tagged with its fingerprint.
func getSchema(get func(context.Context, int64) ([]byte, apperrors.Error)) httpx.RequestHandler {
	return func(r *http.Request) (*httpx.Response, error) {
		id, err := pathId(r)
		if err != nil {
			return nil, err
		}
		out, aerr := get(r.Context(), id)
		if aerr != nil {
			return nil, aerr
		}
		rsp := ok(out)
		if etag, err := schemastore.ETag(out); err == nil {
			rsp.ETag = etag
		} else {
			log.Ctx(r.Context()).Error().Err(err).Int64("class_id", id).Msg("failed to fingerprint class schema")
		}
		return rsp, nil
	}
}
