package middleware

import (
	"net/http"

	"github.com/mugiliam/objectifiedsrv/internal/db"
)

// LoadScopedDB binds one pooled connection to the request and releases it when the handler returns.
func LoadScopedDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := db.ConnCtx(r.Context())
		if d := db.DB(ctx); d != nil {
			defer d.Close(ctx)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
