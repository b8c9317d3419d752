package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/cache"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dbmanager"
	"github.com/mugiliam/objectifiedsrv/internal/db/memstore"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel"
	"github.com/mugiliam/objectifiedsrv/internal/server"
	"github.com/mugiliam/objectifiedsrv/pkg/api"
	"github.com/mugiliam/objectifiedsrv/pkg/client"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newClient(t *testing.T) (*client.Client, context.Context) {
	t.Helper()
	db.SetPool(dbmanager.NewMemoryDbFromStore(memstore.New()))
	t.Cleanup(func() { db.SetPool(nil) })
	ctx := log.Logger.WithContext(context.Background())
	require.NoError(t, metamodel.Seed(ctx))

	s, err := server.CreateNewServer(metamodel.NewServices(cache.NewMemory(0)))
	require.NoError(t, err)
	s.MountHandlers()
	srv := httptest.NewServer(s.Router)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	return c, ctx
}

func dataTypeId(t *testing.T, c *client.Client, ctx context.Context, name string) int64 {
	t.Helper()
	dts, err := c.ListDataTypes(ctx)
	require.NoError(t, err)
	for _, dt := range dts {
		if dt.Name == name {
			return dt.ID
		}
	}
	t.Fatalf("data type %s not seeded", name)
	return 0
}

func TestRoundTrip(t *testing.T) {
	c, ctx := newClient(t)

	v, err := c.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, api.ServerVersion, v.ServerVersion)

	ns, err := c.CreateNamespace(ctx, &dto.Namespace{Name: "sales", Description: "Sales objects"})
	require.NoError(t, err)
	require.Greater(t, ns.ID, int64(0))

	found, err := c.FindNamespaces(ctx, "SALES")
	require.NoError(t, err)
	require.Len(t, found, 1)

	class, err := c.CreateClass(ctx, &dto.Class{NamespaceID: ns.ID, Name: "Customer", Description: "A customer"})
	require.NoError(t, err)

	f, err := c.CreateField(ctx, &dto.Field{
		Name:        "customerName",
		Description: "Name of a customer",
		DataType:    dto.DataTypeRef{ID: dataTypeId(t, c, ctx, "string")},
	})
	require.NoError(t, err)

	p, err := c.CreateProperty(ctx, &dto.Property{Name: "name", Description: "Customer name", FieldID: f.ID})
	require.NoError(t, err)
	byName, err := c.GetPropertyByName(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	_, err = c.CreateClassProperty(ctx, &dto.ClassProperty{ClassID: class.ID, PropertyID: p.ID, Required: true})
	require.NoError(t, err)

	schema, err := c.GetClassSchema(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, "string", gjson.GetBytes(schema, "properties.name.type").String())

	in, err := c.CreateInstance(ctx, &dto.Instance{ClassID: class.ID, Data: map[string]any{"name": "Acme"}})
	require.NoError(t, err)
	list, err := c.ListInstances(ctx, class.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Data["name"])

	_, err = c.CreateInstance(ctx, &dto.Instance{ClassID: class.ID, Data: map[string]any{}})
	require.Error(t, err)

	in.Data["name"] = "Acme Corp"
	require.NoError(t, c.EditInstance(ctx, in.ID, in))
	got, err := c.GetInstanceById(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Data["name"])
	assert.NotNil(t, got.UpdateDate)

	require.NoError(t, c.DeleteField(ctx, f.ID))
	deleted, err := c.GetFieldById(ctx, f.ID)
	require.NoError(t, err)
	assert.False(t, deleted.Enabled)

	_, err = c.GetFieldById(ctx, 999)
	assert.True(t, client.IsNotFound(err))
}
