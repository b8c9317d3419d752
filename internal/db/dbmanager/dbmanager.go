// Package dbmanager owns the connection pools behind the db package. A pool hands out
// ScopedConns whose underlying handle is either a *sql.Conn or a *memstore.Store.
package dbmanager

import (
	"context"
	"errors"

	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/rs/zerolog/log"
)

type ScopedDb interface {
	// Conn returns a new connection to the database.
	// Returns a ScopedConn and an error, if any.
	Conn(ctx context.Context) (ScopedConn, error)
	// Handle returns the pool-level handle used when no connection is bound to the context.
	Handle() any
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
	Close() error
}

type ScopedConn interface {
	Conn() any
	Close(ctx context.Context)
}

var ErrUnsupportedDriver = errors.New("unsupported db driver")

func NewScopedDb(ctx context.Context, cfg config.DBConfig) (ScopedDb, error) {
	switch cfg.Driver {
	case "postgresql":
		db, err := NewPostgresqlDb(cfg)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil, err
		}
		return db, nil
	case "memory":
		return NewMemoryDb(ctx, cfg)
	}
	return nil, ErrUnsupportedDriver
}
