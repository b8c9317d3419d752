package middleware

import (
	"net/http"

	"github.com/mugiliam/objectifiedsrv/internal/common"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/rs/zerolog/log"
)

// Authenticate verifies the bearer token and stores its claims in the request context.
// Preflight requests pass without a token.
func Authenticate(a *rbac.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.Enabled() || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := a.Verify(r.Header.Get("Authorization"))
			if err != nil {
				log.Ctx(r.Context()).Warn().Err(err).Msg("request rejected")
				httpx.ToHttpxError(r.Context(), err).Send(w)
				return
			}
			ctx := common.SetClaimsInContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
