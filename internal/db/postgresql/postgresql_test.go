package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDb(t *testing.T) (*objectifiedDb, sqlmock.Sqlmock, context.Context) {
	t.Helper()
	sqlDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDb.Close()
	})
	return NewObjectifiedDb(sqlDb), mock, log.Logger.WithContext(context.Background())
}

func TestCreateNamespace(t *testing.T) {
	h, mock, ctx := newMockDb(t)

	mock.ExpectQuery("INSERT INTO namespaces").
		WithArgs("sales", "Sales objects", true, false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	ns := &models.Namespace{Name: "sales", Description: "Sales objects", Enabled: true}
	err := h.CreateNamespace(ctx, ns)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ns.ID)
	assert.False(t, ns.CreatedAt.IsZero())
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name  string
		pgErr *pgconn.PgError
		want  error
		msg   string
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "classes_namespace_id_name_key"}, dberror.ErrAlreadyExists, "class already exists"},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "classes_namespace_id_fkey"}, dberror.ErrReferenceNotFound, "namespace not found"},
		{"check violation", &pgconn.PgError{Code: "23514"}, dberror.ErrInvalidInput, "invalid class"},
		{"other", &pgconn.PgError{Code: "XX000"}, dberror.ErrDatabase, "db error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock, ctx := newMockDb(t)
			mock.ExpectQuery("INSERT INTO classes").WillReturnError(tt.pgErr)

			err := h.CreateClass(ctx, &models.Class{NamespaceID: 1, Name: "order", Description: "Order"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGetNamespaceNotFound(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	mock.ExpectQuery("SELECT (.+) FROM namespaces WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ns, err := h.GetNamespace(ctx, 5)
	assert.Nil(t, ns)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestUpdateNamespace(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	mock.ExpectExec("UPDATE namespaces SET").
		WithArgs(int64(3), "sales", "Sales", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE namespaces SET").
		WithArgs(int64(4), "hr", "HR", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ns := &models.Namespace{ID: 3, Name: "sales", Description: "Sales", Enabled: false}
	require.NoError(t, h.UpdateNamespace(ctx, ns))
	assert.NotNil(t, ns.UpdatedAt)

	err := h.UpdateNamespace(ctx, &models.Namespace{ID: 4, Name: "hr", Description: "HR", Enabled: true})
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestListDataTypes(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cols := []string{"id", "name", "description", "enabled", "is_array", "data_type", "pattern", "max_length",
		"enum_values", "enum_descriptions", "examples", "core_type", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM data_types ORDER BY id").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "string", "String", true, false, "STRING", nil, 0, nil, nil, nil, true, created, nil).
			AddRow(2, "color", "Color", true, false, "STRING", "^[a-z]+$", 10, "{red,green}", "{Red}", nil, false, created, created))

	list, err := h.ListDataTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CoreType)
	assert.Nil(t, list[0].EnumValues)
	assert.Empty(t, list[0].Pattern)
	assert.Nil(t, list[0].UpdatedAt)
	assert.Equal(t, []string{"red", "green"}, list[1].EnumValues)
	assert.Equal(t, []string{"Red"}, list[1].EnumDescriptions)
	assert.Equal(t, "^[a-z]+$", list[1].Pattern)
	assert.Equal(t, 10, list[1].MaxLength)
	require.NotNil(t, list[1].UpdatedAt)
	assert.Equal(t, created, *list[1].UpdatedAt)
}

func TestFieldDefaultValue(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	mock.ExpectQuery("INSERT INTO fields").
		WithArgs("age", "Age", "21", true, int64(2), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery("SELECT (.+) FROM fields f JOIN data_types d (.+) WHERE f.id").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "default_value", "enabled",
			"data_type_id", "data_type_name", "created_at", "updated_at"}).
			AddRow(11, "age", "Age", []byte("21"), true, 2, "int32", time.Now(), nil))

	f := &models.Field{Name: "age", Description: "Age", DefaultValue: []byte("21"), Enabled: true, DataTypeID: 2}
	require.NoError(t, h.CreateField(ctx, f))

	got, err := h.GetField(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "int32", got.DataTypeName)
	assert.JSONEq(t, "21", string(got.DefaultValue))
}

func TestListInstancesByClass(t *testing.T) {
	h, mock, ctx := newMockDb(t)
	cols := []string{"id", "class_id", "name", "data", "enabled", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM instances WHERE class_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 9, nil, `{"title":"x"}`, true, time.Now(), nil))

	list, err := h.ListInstances(ctx, 9)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Name)
	assert.JSONEq(t, `{"title":"x"}`, string(list[0].Data))
}

func TestMigrate(t *testing.T) {
	sqlDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDb.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS namespaces").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), sqlDb))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseReleases(t *testing.T) {
	released := 0
	h := NewObjectifiedDb(nil).WithRelease(func(ctx context.Context) { released++ })
	h.Close(context.Background())
	assert.Equal(t, 1, released)

	// pool level accessors have nothing to release
	NewObjectifiedDb(nil).Close(context.Background())
}
