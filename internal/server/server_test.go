package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthentication(t *testing.T) {
	newDb(t)
	withConfig(t, func(c *config.ObjectifiedConfig) { c.Auth.JWTSecret = "s3cret" })
	a := rbac.NewAuthorizer("s3cret")
	reader, err := a.Issue("ann", rbac.RoleReader, time.Minute)
	require.NoError(t, err)
	editor, err := a.Issue("bob", rbac.RoleEditor, time.Minute)
	require.NoError(t, err)

	body := `{"name":"sales","description":"Sales objects"}`
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  *string
		code   int
	}{
		{"no token", http.MethodGet, "/namespaces/list", "", nil, http.StatusUnauthorized},
		{"reader lists", http.MethodGet, "/namespaces/list", "", &reader, http.StatusOK},
		{"reader creates", http.MethodPost, "/namespaces/create", body, &reader, http.StatusForbidden},
		{"editor creates", http.MethodPost, "/namespaces/create", body, &editor, http.StatusCreated},
		{"version is public", http.MethodGet, "/version", "", nil, http.StatusOK},
		{"docs are public", http.MethodGet, "/api/openapi.json", "", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			if tt.body != "" {
				setRequestBodyAndHeader(t, req, tt.body)
			}
			rsp := executeTestRequest(t, req, tt.token)
			assert.Equal(t, tt.code, rsp.Code, rsp.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	newDb(t)
	s := newTestServer(t)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/fields/5", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	s.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	out := rr.Body.String()
	assert.Contains(t, out, `objectified_http_requests_total{code="404",method="GET",route="/fields/{id}"} 1`)
	assert.Contains(t, out, "objectified_http_request_duration_seconds_bucket")
	assert.Contains(t, out, "objectified_db_conn_requests 1")
	assert.Contains(t, out, "objectified_db_conn_returns 1")
}

func TestRequestId(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("X-Request-ID", "0b5d0f3e-7a8c-4c55-9a57-2f36f5c1f0aa")
	rsp := executeTestRequest(t, req, nil)
	assert.Equal(t, "0b5d0f3e-7a8c-4c55-9a57-2f36f5c1f0aa", rsp.Header().Get("X-Request-ID"))

	req, _ = http.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("X-Request-ID", "not a uuid")
	rsp = executeTestRequest(t, req, nil)
	assert.NotEqual(t, "not a uuid", rsp.Header().Get("X-Request-ID"))
	assert.Len(t, rsp.Header().Get("X-Request-ID"), 36)
}

func TestHandleCORS(t *testing.T) {
	withConfig(t, func(c *config.ObjectifiedConfig) {
		c.Server.HandleCORS = true
		c.Server.CORSOrigin = "http://console.local"
	})
	req, _ := http.NewRequest(http.MethodOptions, "/fields/list", nil)
	rsp := executeTestRequest(t, req, nil)
	assert.Equal(t, http.StatusOK, rsp.Code)
	assert.Equal(t, "http://console.local", rsp.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rsp.Header().Get("Access-Control-Allow-Methods"), "DELETE"))
}

func TestDocsPage(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/api", nil)
	rsp := executeTestRequest(t, req, nil)
	require.Equal(t, http.StatusOK, rsp.Code)
	assert.Contains(t, rsp.Body.String(), "swagger-ui")
}

func TestCreateNewServerRequiresServices(t *testing.T) {
	_, err := CreateNewServer(nil)
	assert.Error(t, err)
}
