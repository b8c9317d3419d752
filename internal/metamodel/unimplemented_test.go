package metamodel

import (
	"context"
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/stretchr/testify/assert"
)

type namespacesOnly struct {
	UnimplementedServices
}

func (namespacesOnly) ListNamespaces(context.Context) ([]dto.Namespace, apperrors.Error) {
	return []dto.Namespace{}, nil
}

func TestUnimplementedServices(t *testing.T) {
	ctx := context.Background()
	u := UnimplementedServices{}

	calls := map[string]apperrors.Error{
		"CreateNamespace":      errOf(u.CreateNamespace(ctx, dto.NewNamespace())),
		"EditNamespace":        u.EditNamespace(ctx, 1, dto.NewNamespace()),
		"FindNamespaces":       errOf(u.FindNamespaces(ctx, "x")),
		"ListClasses":          errOf(u.ListClasses(ctx, 0)),
		"GetClassSchema":       errOf(u.GetClassSchema(ctx, 1)),
		"DeleteDataType":       u.DeleteDataType(ctx, 1),
		"CreateField":          errOf(u.CreateField(ctx, dto.NewField())),
		"GetFieldById":         errOf(u.GetFieldById(ctx, 1)),
		"ListFields":           errOf(u.ListFields(ctx)),
		"EditField":            u.EditField(ctx, 1, dto.NewField()),
		"DeleteField":          u.DeleteField(ctx, 1),
		"GetPropertyByName":    errOf(u.GetPropertyByName(ctx, "x")),
		"ListObjectProperties": errOf(u.ListObjectProperties(ctx, 1)),
		"EditClassProperty":    u.EditClassProperty(ctx, 1, dto.NewClassProperty()),
		"ListInstances":        errOf(u.ListInstances(ctx, 1)),
	}
	for name, err := range calls {
		assert.ErrorIs(t, err, ErrUnimplemented, name)
		assert.ErrorIs(t, err, apperrors.ErrUnimplemented, name)
		assert.Equal(t, 501, err.StatusCode(), name)
	}
}

func TestServicesFrom(t *testing.T) {
	ctx := context.Background()
	s := ServicesFrom(namespacesOnly{})

	list, err := s.Namespaces.ListNamespaces(ctx)
	assert.NoError(t, err)
	assert.Empty(t, list)
	assert.ErrorIs(t, errOf(s.Namespaces.GetNamespaceById(ctx, 1)), ErrUnimplemented)
	assert.ErrorIs(t, errOf(s.Instances.GetInstanceById(ctx, 1)), ErrUnimplemented)

	// a value with no service methods falls back everywhere
	s = ServicesFrom(struct{}{})
	assert.ErrorIs(t, s.Fields.DeleteField(ctx, 1), ErrUnimplemented)
}
