package schemastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeJSON(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		expected string
	}{
		{name: "sorted keys", jsonData: `{"b":1, "a": {"d":true,"c":null}}`, expected: `{"a":{"c":null,"d":true},"b":1}`},
		{name: "numbers keep their text", jsonData: `[1.50, 1e3, 12345678901234567890]`, expected: `[1.50,1e3,12345678901234567890]`},
		{name: "no html escaping", jsonData: `{"pattern":"^<a>&$"}`, expected: `{"pattern":"^<a>&$"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeJSON([]byte(tt.jsonData))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}

	for _, bad := range []string{``, `{"a":`, `{} {}`} {
		_, err := NormalizeJSON([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestETag(t *testing.T) {
	a, err := ETag([]byte(`{"type":"object","title":"Person"}`))
	require.NoError(t, err)
	b, err := ETag([]byte("{\n  \"title\": \"Person\",\n  \"type\": \"object\"\n}"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 34)

	c, err := ETag([]byte(`{"type":"object","title":"People"}`))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
	assert.Len(t, HexEncodedSHA512(nil), 128)
}
