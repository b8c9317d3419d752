package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, 3001, c.Server.Port)
	assert.Equal(t, "memory", c.DB.Driver)
	assert.Equal(t, 30*time.Minute, c.DB.ConnMaxLifetime.Duration)
	assert.Equal(t, ":3001", c.ListenAddr())
	assert.Same(t, c, Config())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objectified.toml")
	data := `
seed_core_data = false

[server]
port = 8080
handle_cors = true

[db]
driver = "postgresql"
dsn = "postgres://db:5432/objectified"
conn_max_lifetime = "5m"

[cache]
driver = "redis"
ttl = "1m"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("OBJECTIFIED_PORT", "9090")
	t.Setenv("OBJECTIFIED_JWT_SECRET", "s3cret")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Server.Port)
	assert.True(t, c.Server.HandleCORS)
	assert.Equal(t, "postgresql", c.DB.Driver)
	assert.Equal(t, 5*time.Minute, c.DB.ConnMaxLifetime.Duration)
	assert.Equal(t, "redis", c.Cache.Driver)
	assert.Equal(t, time.Minute, c.Cache.TTL.Duration)
	assert.Equal(t, "s3cret", c.Auth.JWTSecret)
	assert.False(t, c.SeedCoreData)
	// untouched values keep their defaults
	assert.Equal(t, "/api", c.Server.DocsPath)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"OBJECTIFIED_PORT": "abc"}},
		{name: "port out of range", env: map[string]string{"OBJECTIFIED_PORT": "70000"}},
		{name: "bad driver", env: map[string]string{"OBJECTIFIED_DB_DRIVER": "mysql"}},
		{name: "bad cache driver", env: map[string]string{"OBJECTIFIED_CACHE_DRIVER": "memcached"}},
		{name: "bad bool", env: map[string]string{"OBJECTIFIED_LOG_PRETTY": "maybe"}},
		{name: "bad duration", env: map[string]string{"OBJECTIFIED_CACHE_TTL": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}
