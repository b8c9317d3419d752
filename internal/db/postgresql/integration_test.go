//go:build integration

package postgresql

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("objectified"),
		postgres.WithUsername("objectified"),
		postgres.WithPassword("objectified"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	sqlDb, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDb.Close() })

	require.NoError(t, Migrate(ctx, sqlDb))
	// migrations are idempotent
	require.NoError(t, Migrate(ctx, sqlDb))
	return sqlDb
}

func TestPostgresRoundTrip(t *testing.T) {
	sqlDb := startPostgres(t)
	ctx := log.Logger.WithContext(context.Background())
	conn, err := sqlDb.Conn(ctx)
	require.NoError(t, err)
	h := NewObjectifiedDb(conn).WithRelease(func(context.Context) { conn.Close() })
	defer h.Close(ctx)

	ns := &models.Namespace{Name: "sales", Description: "Sales", Enabled: true}
	require.NoError(t, h.CreateNamespace(ctx, ns))
	assert.ErrorIs(t, h.CreateNamespace(ctx, &models.Namespace{Name: "SALES", Description: "dup"}), dberror.ErrAlreadyExists)

	dt := &models.DataType{Name: "color", Description: "Color", Kind: "STRING", Enabled: true, EnumValues: []string{"red", "green"}}
	require.NoError(t, h.CreateDataType(ctx, dt))
	f := &models.Field{Name: "color", Description: "Color", DataTypeID: dt.ID, Enabled: true, DefaultValue: []byte(`"red"`)}
	require.NoError(t, h.CreateField(ctx, f))
	assert.ErrorIs(t, h.CreateField(ctx, &models.Field{Name: "x", Description: "x", DataTypeID: 999}), dberror.ErrReferenceNotFound)

	got, err := h.GetField(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "color", got.DataTypeName)
	assert.JSONEq(t, `"red"`, string(got.DefaultValue))

	gotDt, err := h.GetDataTypeByName(ctx, "COLOR")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green"}, gotDt.EnumValues)

	c := &models.Class{NamespaceID: ns.ID, Name: "order", Description: "Order", Enabled: true}
	require.NoError(t, h.CreateClass(ctx, c))
	p := &models.Property{Name: "color", Description: "Color", FieldID: f.ID, Enabled: true}
	require.NoError(t, h.CreateProperty(ctx, p))
	require.NoError(t, h.CreateClassProperty(ctx, &models.ClassProperty{ClassID: c.ID, PropertyID: p.ID, Required: true, Enabled: true}))
	assert.ErrorIs(t, h.CreateClassProperty(ctx, &models.ClassProperty{ClassID: c.ID, PropertyID: p.ID}), dberror.ErrAlreadyExists)

	in := &models.Instance{ClassID: c.ID, Data: []byte(`{"color":"red"}`), Enabled: true}
	require.NoError(t, h.CreateInstance(ctx, in))
	in.Enabled = false
	require.NoError(t, h.UpdateInstance(ctx, in))
	list, err := h.ListInstances(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Enabled)

	found, err := h.FindClasses(ctx, "ORD")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
