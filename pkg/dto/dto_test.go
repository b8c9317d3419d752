package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	ns := NewNamespace()
	assert.True(t, ns.Enabled)
	assert.False(t, ns.CoreNamespace)
	assert.False(t, ns.CreateDate.IsZero())

	assert.True(t, NewField().Enabled)
	assert.True(t, NewDataType().Enabled)
	assert.False(t, NewDataType().CoreType)
	assert.True(t, NewClass().Enabled)
	assert.True(t, NewProperty().Enabled)
	assert.True(t, NewObjectProperty().Enabled)
	assert.True(t, NewClassProperty().Enabled)
	assert.True(t, NewInstance().Enabled)
}

func TestDecodeKeepsDefaults(t *testing.T) {
	ns := NewNamespace()
	err := json.Unmarshal([]byte(`{"name":"sales","description":"Sales objects"}`), ns)
	require.NoError(t, err)
	assert.True(t, ns.Enabled)
	assert.False(t, ns.CoreNamespace)

	f := NewField()
	err = json.Unmarshal([]byte(`{"name":"age","description":"Age","dataType":{"id":2},"defaultValue":null}`), f)
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.DataType.ID)
	assert.True(t, f.DefaultValue.IsNil())

	err = json.Unmarshal([]byte(`{"defaultValue":21}`), f)
	require.NoError(t, err)
	assert.False(t, f.DefaultValue.IsNil())
	assert.Equal(t, float64(21), f.DefaultValue.Value)
}
