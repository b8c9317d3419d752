package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/objectifiedsrv/internal/apis"
	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/mugiliam/objectifiedsrv/internal/server/docs"
	"github.com/mugiliam/objectifiedsrv/internal/server/middleware"
	"github.com/mugiliam/objectifiedsrv/pkg/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ObjectifiedServer struct {
	Router   *chi.Mux
	services *metamodel.Services
	auth     *rbac.Authorizer
	metrics  *middleware.Metrics
}

// CreateNewServer builds a server around svc using the active configuration.
func CreateNewServer(svc *metamodel.Services) (*ObjectifiedServer, error) {
	if svc == nil {
		return nil, errors.New("services are required")
	}
	s := &ObjectifiedServer{
		Router:   chi.NewRouter(),
		services: svc,
		auth:     rbac.NewAuthorizer(config.Config().Auth.JWTSecret),
		metrics:  middleware.NewMetrics(),
	}
	return s, nil
}

func (s *ObjectifiedServer) MountHandlers() {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(s.metrics.Middleware)
	if config.Config().Server.HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Get("/version", s.getVersion)
	s.Router.Handle("/metrics", s.metrics.Handler())
	s.Router.Route(config.Config().Server.DocsPath, docs.Router(config.Config().Server.DocsPath))
	s.Router.Group(s.mountResourceHandlers)
	s.Router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.ErrNotFound("no such route").Send(w)
	})
	s.Router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.ErrInvalidRequest("method not allowed").Send(w)
	})

	if log.Logger.GetLevel() <= zerolog.TraceLevel {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			log.Trace().Str("method", method).Str("route", route).Msg("route")
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			log.Error().Err(err).Msg("unable to walk routes")
		}
	}
}

func (s *ObjectifiedServer) mountResourceHandlers(r chi.Router) {
	r.Use(middleware.Authenticate(s.auth))
	r.Use(middleware.LoadScopedDB)
	apis.Router(s.services)(r)
}

func (s *ObjectifiedServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &api.GetVersionRsp{
		ServerVersion: api.ServerVersion,
		ApiVersion:    api.ApiVersion_1_0,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func (s *ObjectifiedServer) HandleCORS(next http.Handler) http.Handler {
	origin := config.Config().Server.CORSOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set CORS headers
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Location, X-Request-ID")

		if r.Method == http.MethodOptions {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down within timeout.
func (s *ObjectifiedServer) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return log.Logger.WithContext(context.Background())
		},
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("objectified server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down objectified server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
