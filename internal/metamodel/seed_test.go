package metamodel

import (
	"testing"

	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	sd, err := loadSeed()
	require.NoError(t, err)

	kinds := map[types.PrimitiveKind]bool{}
	for _, dt := range sd.DataTypes {
		assert.NoError(t, checkDataType(&dt), dt.Name)
		kinds[dt.DataType] = true
	}
	for _, k := range types.PrimitiveKinds() {
		assert.True(t, kinds[k], "no core data type for %s", k)
	}
	require.Len(t, sd.Namespaces, 1)
	assert.Equal(t, types.CoreNamespace, sd.Namespaces[0].Name)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx, s := newTestServices(t)
	require.NoError(t, Seed(ctx))
	require.NoError(t, Seed(ctx))

	namespaces, err := s.Namespaces.ListNamespaces(ctx)
	require.NoError(t, err)
	require.Len(t, namespaces, 1)
	assert.True(t, namespaces[0].CoreNamespace)

	dataTypes, err := s.DataTypes.ListDataTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, dataTypes, len(types.PrimitiveKinds()))
	for _, dt := range dataTypes {
		assert.True(t, dt.CoreType, dt.Name)
		assert.True(t, dt.Enabled, dt.Name)
	}

	// a missing entry is recreated without touching the rest
	m, derr := db.DB(ctx).GetDataTypeByName(ctx, "int64")
	require.NoError(t, derr)
	m.Name = "long"
	require.NoError(t, db.DB(ctx).UpdateDataType(ctx, m))
	require.NoError(t, Seed(ctx))
	dataTypes, err = s.DataTypes.ListDataTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, dataTypes, len(types.PrimitiveKinds())+1)
}
