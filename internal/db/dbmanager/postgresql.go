package dbmanager

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/rs/zerolog/log"
)

type postgresqlDb struct {
	db       *sql.DB
	requests atomic.Uint64
	returns  atomic.Uint64
}

type postgresqlConn struct {
	conn     *sql.Conn
	pool     *postgresqlDb
	released atomic.Bool
}

// NewPostgresqlDb opens a pgx backed pool and verifies it with a ping.
func NewPostgresqlDb(cfg config.DBConfig) (*postgresqlDb, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	return NewPostgresqlDbFromSql(db, cfg)
}

// NewPostgresqlDbFromSql wraps an already opened *sql.DB.
func NewPostgresqlDbFromSql(db *sql.DB, cfg config.DBConfig) (*postgresqlDb, error) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime.Duration > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return &postgresqlDb{db: db}, nil
}

func (p *postgresqlDb) Conn(ctx context.Context) (ScopedConn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	p.requests.Add(1)
	return &postgresqlConn{conn: conn, pool: p}, nil
}

func (p *postgresqlDb) Handle() any {
	return p.db
}

func (p *postgresqlDb) Stats() (requests, returns uint64) {
	return p.requests.Load(), p.returns.Load()
}

func (p *postgresqlDb) Close() error {
	return p.db.Close()
}

func (c *postgresqlConn) Conn() any {
	return c.conn
}

// Close returns the connection to the pool. Calling it more than once is harmless.
func (c *postgresqlConn) Close(ctx context.Context) {
	if !c.released.CompareAndSwap(false, true) {
		return
	}
	if err := c.conn.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to return connection to pool")
	}
	c.pool.returns.Add(1)
}
