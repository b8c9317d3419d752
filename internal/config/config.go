// Package config loads the server configuration from a TOML file and OBJECTIFIED_* environment
// variables. Values from the environment win over the file, and the file wins over defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Port       int    `toml:"port"`
	HandleCORS bool   `toml:"handle_cors"`
	CORSOrigin string `toml:"cors_origin"`
	DocsPath   string `toml:"docs_path"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type DBConfig struct {
	// Driver is "postgresql" or "memory".
	Driver          string   `toml:"driver"`
	DSN             string   `toml:"dsn"`
	MaxOpenConns    int      `toml:"max_open_conns"`
	MaxIdleConns    int      `toml:"max_idle_conns"`
	ConnMaxLifetime Duration `toml:"conn_max_lifetime"`
	AutoMigrate     bool     `toml:"auto_migrate"`
	// SnapshotFile is only used by the memory driver.
	SnapshotFile string `toml:"snapshot_file"`
}

type CacheConfig struct {
	// Driver is "memory" or "redis".
	Driver        string   `toml:"driver"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	TTL           Duration `toml:"ttl"`
	Prefix        string   `toml:"prefix"`
}

type AuthConfig struct {
	// JWTSecret enables bearer token checks when non-empty.
	JWTSecret string `toml:"jwt_secret"`
}

type ObjectifiedConfig struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	DB     DBConfig     `toml:"db"`
	Cache  CacheConfig  `toml:"cache"`
	Auth   AuthConfig   `toml:"auth"`
	// SeedCoreData creates the core namespace and data types at startup.
	SeedCoreData bool `toml:"seed_core_data"`
}

// Duration lets TOML files express durations as strings such as "30m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *ObjectifiedConfig {
	return &ObjectifiedConfig{
		Server: ServerConfig{
			Port:            3001,
			HandleCORS:      false,
			CORSOrigin:      "http://localhost:3000",
			DocsPath:        "/api",
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Log: LogConfig{
			Level: "info",
		},
		DB: DBConfig{
			Driver:          "memory",
			DSN:             "postgres://localhost:5432/objectified",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: Duration{30 * time.Minute},
			AutoMigrate:     true,
		},
		Cache: CacheConfig{
			Driver:    "memory",
			RedisAddr: "localhost:6379",
			TTL:       Duration{5 * time.Minute},
			Prefix:    "objectified:",
		},
		SeedCoreData: true,
	}
}

var (
	cfg   *ObjectifiedConfig
	cfgMu sync.RWMutex
)

// Config returns the active configuration. Defaults are used until Load or SetConfig is called.
func Config() *ObjectifiedConfig {
	cfgMu.RLock()
	c := cfg
	cfgMu.RUnlock()
	if c != nil {
		return c
	}
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if cfg == nil {
		cfg = Default()
	}
	return cfg
}

// SetConfig replaces the active configuration.
func SetConfig(c *ObjectifiedConfig) {
	cfgMu.Lock()
	cfg = c
	cfgMu.Unlock()
}

// Load reads path (if it exists), applies environment overrides, validates the result and
// makes it the active configuration.
func Load(path string) (*ObjectifiedConfig, error) {
	c := Default()
	if path != "" {
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			if _, err := toml.DecodeFile(path, c); err != nil {
				return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) && err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
		}
	}
	if err := applyEnv(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	SetConfig(c)
	return c, nil
}

func (c *ObjectifiedConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.DB.Driver {
	case "postgresql", "memory":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.DB.Driver == "postgresql" && c.DB.DSN == "" {
		return fmt.Errorf("db dsn is required for the postgresql driver")
	}
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache driver %q", c.Cache.Driver)
	}
	if !strings.HasPrefix(c.Server.DocsPath, "/") {
		return fmt.Errorf("docs path must start with '/'")
	}
	return nil
}

func (c *ObjectifiedConfig) ListenAddr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func applyEnv(c *ObjectifiedConfig) error {
	var err error
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && err == nil {
			var b bool
			b, err = strconv.ParseBool(v)
			if err != nil {
				err = fmt.Errorf("invalid value for %s: %w", key, err)
				return
			}
			*dst = b
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok && err == nil {
			var n int
			n, err = strconv.Atoi(v)
			if err != nil {
				err = fmt.Errorf("invalid value for %s: %w", key, err)
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *Duration) {
		if v, ok := lookup(key); ok && err == nil {
			if e := dst.UnmarshalText([]byte(v)); e != nil {
				err = fmt.Errorf("invalid value for %s: %w", key, e)
			}
		}
	}

	setInt("OBJECTIFIED_PORT", &c.Server.Port)
	setBool("OBJECTIFIED_HANDLE_CORS", &c.Server.HandleCORS)
	setString("OBJECTIFIED_CORS_ORIGIN", &c.Server.CORSOrigin)
	setString("OBJECTIFIED_DOCS_PATH", &c.Server.DocsPath)
	setDuration("OBJECTIFIED_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)
	setString("OBJECTIFIED_LOG_LEVEL", &c.Log.Level)
	setBool("OBJECTIFIED_LOG_PRETTY", &c.Log.Pretty)
	setString("OBJECTIFIED_DB_DRIVER", &c.DB.Driver)
	setString("OBJECTIFIED_DB_DSN", &c.DB.DSN)
	setInt("OBJECTIFIED_DB_MAX_OPEN_CONNS", &c.DB.MaxOpenConns)
	setInt("OBJECTIFIED_DB_MAX_IDLE_CONNS", &c.DB.MaxIdleConns)
	setDuration("OBJECTIFIED_DB_CONN_MAX_LIFETIME", &c.DB.ConnMaxLifetime)
	setBool("OBJECTIFIED_DB_AUTO_MIGRATE", &c.DB.AutoMigrate)
	setString("OBJECTIFIED_DB_SNAPSHOT_FILE", &c.DB.SnapshotFile)
	setString("OBJECTIFIED_CACHE_DRIVER", &c.Cache.Driver)
	setString("OBJECTIFIED_REDIS_ADDR", &c.Cache.RedisAddr)
	setString("OBJECTIFIED_REDIS_PASSWORD", &c.Cache.RedisPassword)
	setInt("OBJECTIFIED_REDIS_DB", &c.Cache.RedisDB)
	setDuration("OBJECTIFIED_CACHE_TTL", &c.Cache.TTL)
	setString("OBJECTIFIED_CACHE_PREFIX", &c.Cache.Prefix)
	setString("OBJECTIFIED_JWT_SECRET", &c.Auth.JWTSecret)
	setBool("OBJECTIFIED_SEED_CORE_DATA", &c.SeedCoreData)
	return err
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
