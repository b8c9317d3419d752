package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/cache"
	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dbmanager"
	"github.com/mugiliam/objectifiedsrv/internal/db/memstore"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// newDb installs an empty, seeded memory pool for the test.
func newDb(t *testing.T) context.Context {
	t.Helper()
	db.SetPool(dbmanager.NewMemoryDbFromStore(memstore.New()))
	t.Cleanup(func() { db.SetPool(nil) })
	ctx := log.Logger.WithContext(context.Background())
	require.NoError(t, metamodel.Seed(ctx))
	return ctx
}

// withConfig makes c the active configuration for the test.
func withConfig(t *testing.T, change func(c *config.ObjectifiedConfig)) {
	t.Helper()
	c := config.Default()
	change(c)
	config.SetConfig(c)
	t.Cleanup(func() { config.SetConfig(config.Default()) })
}

func newTestServer(t *testing.T) *ObjectifiedServer {
	t.Helper()
	s, err := CreateNewServer(metamodel.NewServices(cache.NewMemory(0)))
	require.NoError(t, err, "create new server")
	s.MountHandlers()
	return s
}

func executeTestRequest(t *testing.T, req *http.Request, token *string) *httptest.ResponseRecorder {
	s := newTestServer(t)
	if token != nil {
		req.Header.Set("Authorization", "Bearer "+*token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data interface{}) {
	var jsonData []byte
	switch v := data.(type) {
	case string:
		jsonData = []byte(v)
	default:
		var err error
		jsonData, err = json.Marshal(data)
		assert.NoError(t, err, "Failed to marshal data into JSON")
	}

	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}

// call sends one request to a fresh server and returns the response.
func call(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	if body != nil {
		setRequestBodyAndHeader(t, req, body)
	}
	return executeTestRequest(t, req, nil)
}

// create posts body to path and returns the assigned id.
func create(t *testing.T, path string, body any) int64 {
	t.Helper()
	rsp := call(t, http.MethodPost, path+"/create", body)
	if !assert.Equal(t, http.StatusCreated, rsp.Code) {
		t.Logf("Response: %v", rsp.Body.String())
		t.FailNow()
	}
	id := gjson.Get(rsp.Body.String(), "id").Int()
	require.Greater(t, id, int64(0))
	return id
}

// idByName finds the id of the entry called name in the list at path.
func idByName(t *testing.T, path, name string) int64 {
	t.Helper()
	rsp := call(t, http.MethodGet, path+"/list", nil)
	require.Equal(t, http.StatusOK, rsp.Code)
	for _, e := range gjson.Parse(rsp.Body.String()).Array() {
		if e.Get("name").String() == name {
			return e.Get("id").Int()
		}
	}
	t.Fatalf("%s not found in %s", name, path)
	return 0
}
