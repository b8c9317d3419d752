package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mugiliam/objectifiedsrv/internal/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const RequestIdHeader = "X-Request-ID"

// RequestLogger tags the request with an id, attaches a request scoped logger to the context
// and writes one access log line per request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIdHeader)
		if _, err := uuid.Parse(requestId); err != nil {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)

		logger := log.Logger.With().Str("request_id", requestId).Logger()
		ctx := common.SetRequestIdInContext(logger.WithContext(r.Context()), requestId)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			var e *zerolog.Event
			switch {
			case status >= 500:
				e = logger.Error()
			case status >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}
			e.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
