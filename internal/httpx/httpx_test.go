package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func serve(h RequestHandler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	WrapHttpRsp(h).ServeHTTP(rr, req)
	return rr
}

func TestETag(t *testing.T) {
	h := WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return &Response{StatusCode: http.StatusOK, ETag: `"abc"`, Response: []byte(`{}`)}, nil
	})
	tests := []struct {
		name        string
		ifNoneMatch string
		code        int
	}{
		{name: "no header", code: http.StatusOK},
		{name: "match", ifNoneMatch: `"abc"`, code: http.StatusNotModified},
		{name: "weak match in list", ifNoneMatch: `"x", W/"abc"`, code: http.StatusNotModified},
		{name: "wildcard", ifNoneMatch: "*", code: http.StatusNotModified},
		{name: "stale", ifNoneMatch: `"old"`, code: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tt.ifNoneMatch)
			}
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, `"abc"`, rr.Header().Get("ETag"))
		})
	}
}

func TestWrapHttpRsp(t *testing.T) {
	tests := []struct {
		name     string
		handler  RequestHandler
		code     int
		body     string
		location string
	}{
		{
			name: "struct body",
			handler: func(r *http.Request) (*Response, error) {
				return &Response{StatusCode: http.StatusCreated, Location: "/fields/1", Response: map[string]int{"id": 1}}, nil
			},
			code:     http.StatusCreated,
			body:     `{"id":1}`,
			location: "/fields/1",
		},
		{
			name: "raw json",
			handler: func(r *http.Request) (*Response, error) {
				return &Response{StatusCode: http.StatusOK, Response: []byte(`[1,2]`)}, nil
			},
			code: http.StatusOK,
			body: `[1,2]`,
		},
		{
			name: "nil response",
			handler: func(r *http.Request) (*Response, error) {
				return nil, nil
			},
			code: http.StatusNoContent,
		},
		{
			name: "app error",
			handler: func(r *http.Request) (*Response, error) {
				return nil, apperrors.ErrNotFound.Msg("field not found")
			},
			code: http.StatusNotFound,
			body: `{"result":"error","description":"field not found"}`,
		},
		{
			name: "httpx error",
			handler: func(r *http.Request) (*Response, error) {
				return nil, ErrInvalidRequest("missing body")
			},
			code: http.StatusBadRequest,
			body: `{"result":"error","description":"missing body"}`,
		},
		{
			name: "plain error",
			handler: func(r *http.Request) (*Response, error) {
				return nil, errors.New("boom")
			},
			code: http.StatusInternalServerError,
			body: `{"result":"error","description":"application error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(tt.handler)
			assert.Equal(t, tt.code, rr.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			} else {
				assert.Empty(t, rr.Body.String())
			}
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}
