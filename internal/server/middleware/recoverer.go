package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/rs/zerolog/log"
)

// Recoverer turns a panicking handler into a 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				httpx.ErrApplicationError().Send(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
