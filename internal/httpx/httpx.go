// Package httpx holds the HTTP response plumbing shared by all handlers.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/rs/zerolog/log"
)

// Response is what a RequestHandler returns on success. Response may be raw JSON ([]byte),
// nil for an empty body, or any value that marshals to JSON.
type Response struct {
	StatusCode int
	Location   string
	// ETag is sent as is. A request whose If-None-Match carries it gets 304 without a body.
	ETag     string
	Response any
}

// RequestHandler is the signature of every API handler.
type RequestHandler func(r *http.Request) (*Response, error)

// Error is the JSON error body sent to clients.
type Error struct {
	StatusCode  int    `json:"-"`
	Result      string `json:"result"`
	Description string `json:"description"`
}

func (e *Error) Error() string {
	return e.Description
}

// Send writes the error to w.
func (e *Error) Send(w http.ResponseWriter) {
	statusCode := e.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	e.Result = "error"
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// WrapHttpRsp adapts a RequestHandler to an http.HandlerFunc and renders its result or error.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			ToHttpxError(r.Context(), err).Send(w)
			return
		}
		if rsp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if rsp.Location != "" {
			w.Header().Set("Location", rsp.Location)
		}
		if rsp.ETag != "" {
			w.Header().Set("ETag", rsp.ETag)
			if etagMatches(r.Header.Get("If-None-Match"), rsp.ETag) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		statusCode := rsp.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusOK
		}
		if rsp.Response == nil {
			w.WriteHeader(statusCode)
			return
		}
		SendJsonRsp(r.Context(), w, statusCode, rsp.Response)
	}
}

// SendJsonRsp writes rsp as JSON. A []byte value is written as is.
func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, rsp any) {
	var body []byte
	switch v := rsp.(type) {
	case []byte:
		body = v
	case json.RawMessage:
		body = v
	default:
		var err error
		body, err = json.Marshal(rsp)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("unable to marshal response")
			ErrApplicationError().Send(w)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to write response")
	}
}

// ToHttpxError converts any error into its wire representation.
func ToHttpxError(ctx context.Context, err error) *Error {
	if he, ok := err.(*Error); ok {
		return he
	}
	if appErr, ok := apperrors.As(err); ok {
		statusCode := appErr.StatusCode()
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		if statusCode >= http.StatusInternalServerError {
			log.Ctx(ctx).Error().Err(err).Msg("request failed")
		}
		return &Error{
			StatusCode:  statusCode,
			Description: appErr.ErrorAll(),
		}
	}
	log.Ctx(ctx).Error().Err(err).Msg("unexpected error")
	return ErrApplicationError()
}

func etagMatches(header, etag string) bool {
	for _, v := range strings.Split(header, ",") {
		v = strings.TrimPrefix(strings.TrimSpace(v), "W/")
		if v == etag || v == "*" {
			return true
		}
	}
	return false
}
