package dbmanager

import (
	"context"
	"sync/atomic"

	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/db/memstore"
	"github.com/rs/zerolog/log"
)

type memoryDb struct {
	store        *memstore.Store
	snapshotFile string
	requests     atomic.Uint64
	returns      atomic.Uint64
}

type memoryConn struct {
	db       *memoryDb
	released atomic.Bool
}

// NewMemoryDb creates an in-process store. When a snapshot file is configured and present,
// the store is restored from it, and Close writes it back.
func NewMemoryDb(ctx context.Context, cfg config.DBConfig) (*memoryDb, error) {
	store := memstore.New()
	if cfg.SnapshotFile != "" {
		loaded, err := store.LoadFile(cfg.SnapshotFile)
		if err != nil {
			return nil, err
		}
		if loaded {
			log.Ctx(ctx).Info().Str("file", cfg.SnapshotFile).Msg("restored memory store snapshot")
		}
	}
	return &memoryDb{store: store, snapshotFile: cfg.SnapshotFile}, nil
}

// NewMemoryDbFromStore wraps an existing store, typically in tests.
func NewMemoryDbFromStore(store *memstore.Store) *memoryDb {
	return &memoryDb{store: store}
}

func (m *memoryDb) Conn(ctx context.Context) (ScopedConn, error) {
	m.requests.Add(1)
	return &memoryConn{db: m}, nil
}

func (m *memoryDb) Handle() any {
	return m.store
}

func (m *memoryDb) Stats() (requests, returns uint64) {
	return m.requests.Load(), m.returns.Load()
}

func (m *memoryDb) Close() error {
	if m.snapshotFile == "" {
		return nil
	}
	return m.store.SaveFile(m.snapshotFile)
}

func (c *memoryConn) Conn() any {
	return c.db.store
}

func (c *memoryConn) Close(ctx context.Context) {
	if c.released.CompareAndSwap(false, true) {
		c.db.returns.Add(1)
	}
}
