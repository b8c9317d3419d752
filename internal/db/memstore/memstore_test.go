package memstore

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSchema(t *testing.T, ctx context.Context, m *Store) (ns models.Namespace, dt models.DataType, f models.Field) {
	t.Helper()
	ns = models.Namespace{Name: "sales", Description: "Sales", Enabled: true}
	require.NoError(t, m.CreateNamespace(ctx, &ns))
	dt = models.DataType{Name: "text", Description: "Text", Kind: "STRING", Enabled: true, EnumValues: []string{"a", "b"}}
	require.NoError(t, m.CreateDataType(ctx, &dt))
	f = models.Field{Name: "title", Description: "Title", DataTypeID: dt.ID, Enabled: true, DefaultValue: []byte(`"a"`)}
	require.NoError(t, m.CreateField(ctx, &f))
	return
}

func TestUniqueness(t *testing.T) {
	ctx := context.Background()
	m := New()
	ns, dt, f := seedSchema(t, ctx, m)

	tests := []struct {
		name string
		run  func() error
	}{
		{"namespace", func() error { return m.CreateNamespace(ctx, &models.Namespace{Name: "Sales"}) }},
		{"data type", func() error { return m.CreateDataType(ctx, &models.DataType{Name: "TEXT", Kind: "STRING"}) }},
		{"field", func() error { return m.CreateField(ctx, &models.Field{Name: "title", DataTypeID: dt.ID}) }},
		{"rename namespace onto existing", func() error {
			other := models.Namespace{Name: "hr", Description: "HR"}
			require.NoError(t, m.CreateNamespace(ctx, &other))
			other.Name = ns.Name
			return m.UpdateNamespace(ctx, &other)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), dberror.ErrAlreadyExists)
		})
	}

	// same class name in two namespaces is allowed
	other, err := m.GetNamespaceByName(ctx, "HR")
	require.NoError(t, err)
	require.NoError(t, m.CreateClass(ctx, &models.Class{NamespaceID: ns.ID, Name: "order", Description: "Order"}))
	require.NoError(t, m.CreateClass(ctx, &models.Class{NamespaceID: other.ID, Name: "order", Description: "Order"}))
	err = m.CreateClass(ctx, &models.Class{NamespaceID: ns.ID, Name: "ORDER", Description: "Order"})
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	// updating a row without renaming it does not conflict with itself
	got, err := m.GetField(ctx, f.ID)
	require.NoError(t, err)
	got.Description = "Changed"
	assert.NoError(t, m.UpdateField(ctx, got))
}

func TestReferences(t *testing.T) {
	ctx := context.Background()
	m := New()
	_, _, f := seedSchema(t, ctx, m)
	p1 := models.Property{Name: "p1", Description: "P1", FieldID: f.ID}
	require.NoError(t, m.CreateProperty(ctx, &p1))
	p2 := models.Property{Name: "p2", Description: "P2", FieldID: f.ID}
	require.NoError(t, m.CreateProperty(ctx, &p2))

	assert.ErrorIs(t, m.CreateField(ctx, &models.Field{Name: "x", DataTypeID: 99}), dberror.ErrReferenceNotFound)
	assert.ErrorIs(t, m.CreateProperty(ctx, &models.Property{Name: "x", FieldID: 99}), dberror.ErrReferenceNotFound)
	assert.ErrorIs(t, m.CreateInstance(ctx, &models.Instance{ClassID: 99, Data: []byte(`{}`)}), dberror.ErrReferenceNotFound)
	assert.ErrorIs(t, m.CreateClassProperty(ctx, &models.ClassProperty{ClassID: 99, PropertyID: p1.ID}), dberror.ErrReferenceNotFound)

	err := m.CreateObjectProperty(ctx, &models.ObjectProperty{ParentPropertyID: p1.ID, ChildPropertyID: p1.ID})
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	op := models.ObjectProperty{ParentPropertyID: p1.ID, ChildPropertyID: p2.ID}
	require.NoError(t, m.CreateObjectProperty(ctx, &op))
	err = m.CreateObjectProperty(ctx, &models.ObjectProperty{ParentPropertyID: p1.ID, ChildPropertyID: p2.ID})
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	list, err := m.ListObjectProperties(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = m.ListObjectProperties(ctx, p2.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	m := New()
	_, dt, f := seedSchema(t, ctx, m)

	got, err := m.GetField(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, dt.Name, got.DataTypeName)
	assert.Nil(t, got.UpdatedAt)

	got.Enabled = false
	require.NoError(t, m.UpdateField(ctx, got))
	assert.NotNil(t, got.UpdatedAt)

	list, err := m.ListFields(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Enabled)

	assert.ErrorIs(t, m.UpdateField(ctx, &models.Field{ID: 99, DataTypeID: dt.ID}), dberror.ErrNotFound)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	m := New()
	require.NoError(t, m.CreateNamespace(ctx, &models.Namespace{Name: "sales", Description: "Quotes and orders"}))
	require.NoError(t, m.CreateNamespace(ctx, &models.Namespace{Name: "hr", Description: "People"}))

	list, err := m.FindNamespaces(ctx, "ORDER")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sales", list[0].Name)

	list, err = m.FindNamespaces(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReturnedRowsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := New()
	ns := models.Namespace{Name: "sales", Description: "Sales"}
	require.NoError(t, m.CreateNamespace(ctx, &ns))
	ns.Name = "changed"

	got, err := m.GetNamespace(ctx, ns.ID)
	require.NoError(t, err)
	got.Description = "changed"

	again, err := m.GetNamespace(ctx, ns.ID)
	require.NoError(t, err)
	assert.Equal(t, "sales", again.Name)
	assert.Equal(t, "Sales", again.Description)
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	m := New()
	_, dt, f := seedSchema(t, ctx, m)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	restored := New()
	require.NoError(t, restored.Load(&buf))
	got, err := restored.GetDataType(ctx, dt.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.EnumValues)
	field, err := restored.GetField(ctx, f.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `"a"`, string(field.DefaultValue))

	// ids keep counting from where the snapshot left off
	next := models.DataType{Name: "number", Description: "Number", Kind: "DOUBLE"}
	require.NoError(t, restored.CreateDataType(ctx, &next))
	assert.Equal(t, dt.ID+1, next.ID)

	assert.Error(t, New().Load(bytes.NewBufferString("not a snapshot")))
}

func TestSnapshotFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "objectified.snap")

	loaded, err := New().LoadFile(path)
	require.NoError(t, err)
	assert.False(t, loaded)

	m := New()
	seedSchema(t, ctx, m)
	require.NoError(t, m.SaveFile(path))

	restored := New()
	loaded, err = restored.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	list, err := restored.ListNamespaces(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	m := New()
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.CreateNamespace(ctx, &models.Namespace{Name: "same", Description: "Same"})
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, dberror.ErrAlreadyExists)
		}
	}
	assert.Equal(t, 1, created)
}
