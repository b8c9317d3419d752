package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seen struct {
	mu    sync.Mutex
	path  string
	query string
	auth  string
}

func (s *seen) get() (path, query, auth string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path, s.query, s.auth
}

// countingServer answers every request with status and body and counts the calls.
func countingServer(t *testing.T, status int, body string) (*Client, *atomic.Int32, *seen) {
	t.Helper()
	var calls atomic.Int32
	last := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		last.mu.Lock()
		last.path, last.query, last.auth = r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization")
		last.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, WithToken("t0ken"))
	require.NoError(t, err)
	return c, &calls, last
}

func TestCreateValidatesBeforeSending(t *testing.T) {
	c, calls, _ := countingServer(t, http.StatusCreated, `{}`)
	ctx := context.Background()

	tests := []struct {
		name   string
		create func() error
		fields []string
	}{
		{
			name: "field without name",
			create: func() error {
				_, err := c.CreateField(ctx, &dto.Field{Name: "", Description: "x", DataType: dto.DataTypeRef{ID: 1}})
				return err
			},
			fields: []string{"name is required"},
		},
		{
			name: "field without data type",
			create: func() error {
				_, err := c.CreateField(ctx, &dto.Field{Name: "age", Description: "x"})
				return err
			},
			fields: []string{"dataType is required"},
		},
		{
			name: "blank namespace",
			create: func() error {
				_, err := c.CreateNamespace(ctx, &dto.Namespace{Name: "  ", Description: " "})
				return err
			},
			fields: []string{"name is required", "description is required"},
		},
		{
			name: "class without namespace",
			create: func() error {
				_, err := c.CreateClass(ctx, &dto.Class{Name: "Person", Description: "People"})
				return err
			},
			fields: []string{"namespaceId is required"},
		},
		{
			name: "instance without data",
			create: func() error {
				_, err := c.CreateInstance(ctx, &dto.Instance{ClassID: 3})
				return err
			},
			fields: []string{"data is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.create()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			for _, f := range tt.fields {
				assert.Contains(t, err.Error(), f)
			}
		})
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestErrorResponses(t *testing.T) {
	c, calls, last := countingServer(t, http.StatusNotFound, `{"result":"error","description":"field not found"}`)
	_, err := c.GetFieldById(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "field not found", apiErr.Description)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), calls.Load())
	path, _, auth := last.get()
	assert.Equal(t, "/fields/42", path)
	assert.Equal(t, "Bearer t0ken", auth)
}

func TestPlainErrorBody(t *testing.T) {
	c, _, _ := countingServer(t, http.StatusBadGateway, "upstream down")
	_, err := c.ListFields(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream down", apiErr.Description)
	assert.False(t, IsNotFound(err))
}

func TestListFilters(t *testing.T) {
	c, _, last := countingServer(t, http.StatusOK, `[{"id":1,"classId":7,"data":{}}]`)
	ctx := context.Background()

	in, err := c.ListInstances(ctx, 7)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, int64(7), in[0].ClassID)
	path, query, _ := last.get()
	assert.Equal(t, "/instances/list", path)
	assert.Equal(t, "classId=7", query)

	_, err = c.ListClasses(ctx, 0)
	require.NoError(t, err)
	path, query, _ = last.get()
	assert.Equal(t, "/classes/list", path)
	assert.Empty(t, query)

	_, err = c.FindNamespaces(ctx, "sales data")
	require.NoError(t, err)
	path, _, _ = last.get()
	assert.Equal(t, "/namespaces/find/sales data", path)
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServer, c.Server())

	c, err = New("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.Server())

	for _, bad := range []string{"localhost:3001", "ftp://host", "http://"} {
		_, err := New(bad)
		assert.ErrorIs(t, err, ErrInvalidServer, bad)
	}
}
