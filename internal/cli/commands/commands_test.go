package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/cache"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dbmanager"
	"github.com/mugiliam/objectifiedsrv/internal/db/memstore"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel"
	"github.com/mugiliam/objectifiedsrv/internal/server"
	"github.com/mugiliam/objectifiedsrv/pkg/api"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// newTestServer starts a seeded server and returns its url.
func newTestServer(t *testing.T) string {
	t.Helper()
	db.SetPool(dbmanager.NewMemoryDbFromStore(memstore.New()))
	t.Cleanup(func() { db.SetPool(nil) })
	require.NoError(t, metamodel.Seed(log.Logger.WithContext(context.Background())))

	s, err := server.CreateNewServer(metamodel.NewServices(cache.NewMemory(0)))
	require.NoError(t, err)
	s.MountHandlers()
	srv := httptest.NewServer(s.Router)
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes objectifiedctl with args and returns its output.
func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", url, "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, url string, args ...string) string {
	t.Helper()
	out, err := run(t, url, args...)
	require.NoError(t, err, out)
	return out
}

// createdID creates an entity with -o json and returns its id.
func createdID(t *testing.T, url string, args ...string) string {
	t.Helper()
	out := mustRun(t, url, append([]string{"-o", "json"}, args...)...)
	id := gjson.Get(out, "id")
	require.True(t, id.Exists(), out)
	return id.String()
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "objectifiedctl", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	expected := map[string][]string{
		"namespaces":        {"list", "get", "delete", "create", "find"},
		"classes":           {"list", "get", "delete", "create", "find"},
		"data-types":        {"list", "get", "delete", "create"},
		"fields":            {"list", "get", "delete", "create"},
		"properties":        {"list", "get", "delete", "create", "get-by-name"},
		"object-properties": {"list", "get", "delete", "create"},
		"class-properties":  {"list", "get", "delete", "create"},
		"instances":         {"list", "get", "delete", "create"},
		"version":           nil,
		"schema":            nil,
	}
	for name, subs := range expected {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		require.Equal(t, name, sub.Name())
		for _, s := range subs {
			found, _, err := cmd.Find([]string{name, s})
			require.NoError(t, err, name+" "+s)
			assert.Equal(t, s, found.Name(), name+" "+s)
		}
	}
	for _, flag := range []string{"server", "token", "no-color", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersion(t *testing.T) {
	url := newTestServer(t)
	out := mustRun(t, url, "version")
	assert.Contains(t, out, api.ServerVersion)
	assert.Contains(t, out, "client:")

	out = mustRun(t, url, "-o", "json", "version")
	assert.Equal(t, api.ServerVersion, gjson.Get(out, "server").String())
}

func TestListTable(t *testing.T) {
	url := newTestServer(t)
	out := mustRun(t, url, "data-types", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[0], "KIND")
	assert.Contains(t, out, "STRING")
	assert.Contains(t, out, "OBJECT")

	out = mustRun(t, url, "-o", "json", "namespaces", "list")
	assert.Equal(t, "objectified", gjson.Get(out, "0.name").String())
	assert.True(t, gjson.Get(out, "0.coreNamespace").Bool())
}

func TestBuildModel(t *testing.T) {
	url := newTestServer(t)

	nsID := createdID(t, url, "namespaces", "create", "--name", "sales", "--description", "Sales objects")
	classID := createdID(t, url, "classes", "create", "--namespace-id", nsID, "--name", "Customer", "--description", "A customer")

	dtID := createdID(t, url, "data-types", "create", "--name", "email", "--description", "Email address",
		"--kind", "string", "--pattern", "^.+@.+$", "--max-length", "120")
	fieldID := createdID(t, url, "fields", "create", "--name", "emailAddress", "--description", "Email", "--data-type-id", dtID)
	propID := createdID(t, url, "properties", "create", "--name", "email", "--description", "Primary email", "--field-id", fieldID)
	createdID(t, url, "class-properties", "create", "--class-id", classID, "--property-id", propID, "--required")

	out := mustRun(t, url, "schema", classID)
	assert.Equal(t, "^.+@.+$", gjson.Get(out, "properties.email.pattern").String())
	assert.Equal(t, "email", gjson.Get(out, "required.0").String())

	out = mustRun(t, url, "classes", "list", "--namespace-id", nsID)
	assert.Contains(t, out, "Customer")
	out = mustRun(t, url, "classes", "find", "CUST")
	assert.Contains(t, out, "Customer")
	out = mustRun(t, url, "properties", "get-by-name", "email")
	assert.Contains(t, out, "Primary email")

	dataFile := filepath.Join(t.TempDir(), "customer.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"email":"ann@example.com"}`), 0o600))
	instID := createdID(t, url, "instances", "create", "--class-id", classID, "--data-file", dataFile)

	_, err := run(t, url, "instances", "create", "--class-id", classID, "--data", `{"email":"nope"}`)
	require.Error(t, err)

	out = mustRun(t, url, "instances", "list", "--class-id", classID)
	assert.Contains(t, out, "ann@example.com")

	out = mustRun(t, url, "instances", "delete", instID)
	assert.Contains(t, out, "instance "+instID+" deleted")
	out = mustRun(t, url, "instances", "get", instID)
	assert.Regexp(t, `enabled:\s+false`, out)
}

func TestErrors(t *testing.T) {
	url := newTestServer(t)

	_, err := run(t, url, "fields", "get", "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	_, err = run(t, url, "fields", "get", "abc")
	assert.EqualError(t, err, `invalid id "abc"`)

	_, err = run(t, url, "-o", "yaml", "fields", "list")
	assert.ErrorContains(t, err, "unsupported output")

	// rejected before any request is sent
	_, err = run(t, "http://127.0.0.1:1", "fields", "create", "--name", "", "--description", "x", "--data-type-id", "1")
	assert.ErrorContains(t, err, "name is required")

	_, err = run(t, url, "namespaces", "delete", "1")
	assert.ErrorContains(t, err, "403")
}
