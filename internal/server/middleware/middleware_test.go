package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mugiliam/objectifiedsrv/internal/common"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dbmanager"
	"github.com/mugiliam/objectifiedsrv/internal/db/memstore"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"result":"error","description":"application error"}`, rr.Body.String())
}

func TestRequestLoggerSetsContext(t *testing.T) {
	var requestId string
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId = common.RequestIdFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, requestId)
	assert.Equal(t, requestId, rr.Header().Get(RequestIdHeader))
}

func TestAuthenticate(t *testing.T) {
	a := rbac.NewAuthorizer("s3cret")
	token, err := a.Issue("ann", rbac.RoleAdmin, time.Minute)
	require.NoError(t, err)

	var claims *rbac.Claims
	h := Authenticate(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims = common.ClaimsFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, claims)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, claims)
	assert.Equal(t, rbac.RoleAdmin, claims.Role)

	// a disabled authorizer lets requests through without claims
	claims = &rbac.Claims{}
	passthrough := Authenticate(rbac.NewAuthorizer(""))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims = common.ClaimsFromContext(r.Context())
	}))
	rr = httptest.NewRecorder()
	passthrough.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, claims)
}

func TestLoadScopedDB(t *testing.T) {
	db.SetPool(dbmanager.NewMemoryDbFromStore(memstore.New()))
	t.Cleanup(func() { db.SetPool(nil) })

	h := LoadScopedDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := db.DB(r.Context()).ListFields(r.Context())
		assert.NoError(t, err)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	requests, returns := db.Pool().Stats()
	assert.Equal(t, uint64(1), requests)
	assert.Equal(t, uint64(1), returns)

	// without a pool the handler still runs
	db.SetPool(nil)
	called := false
	LoadScopedDB(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}
