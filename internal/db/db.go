package db

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/config"
	"github.com/mugiliam/objectifiedsrv/internal/db/dbmanager"
	"github.com/mugiliam/objectifiedsrv/internal/db/memstore"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/internal/db/postgresql"
	"github.com/rs/zerolog/log"
)

// DB_ is the storage contract shared by the PostgreSQL and memory backends. Update methods
// overwrite every mutable column, including enabled, which is how soft delete is expressed.
type DB_ interface {
	// Namespace
	CreateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error
	GetNamespace(ctx context.Context, id int64) (*models.Namespace, apperrors.Error)
	GetNamespaceByName(ctx context.Context, name string) (*models.Namespace, apperrors.Error)
	ListNamespaces(ctx context.Context) ([]models.Namespace, apperrors.Error)
	FindNamespaces(ctx context.Context, value string) ([]models.Namespace, apperrors.Error)
	UpdateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error

	// Class
	CreateClass(ctx context.Context, c *models.Class) apperrors.Error
	GetClass(ctx context.Context, id int64) (*models.Class, apperrors.Error)
	ListClasses(ctx context.Context, namespaceID int64) ([]models.Class, apperrors.Error)
	FindClasses(ctx context.Context, value string) ([]models.Class, apperrors.Error)
	UpdateClass(ctx context.Context, c *models.Class) apperrors.Error

	// DataType
	CreateDataType(ctx context.Context, dt *models.DataType) apperrors.Error
	GetDataType(ctx context.Context, id int64) (*models.DataType, apperrors.Error)
	GetDataTypeByName(ctx context.Context, name string) (*models.DataType, apperrors.Error)
	ListDataTypes(ctx context.Context) ([]models.DataType, apperrors.Error)
	UpdateDataType(ctx context.Context, dt *models.DataType) apperrors.Error

	// Field
	CreateField(ctx context.Context, f *models.Field) apperrors.Error
	GetField(ctx context.Context, id int64) (*models.Field, apperrors.Error)
	ListFields(ctx context.Context) ([]models.Field, apperrors.Error)
	UpdateField(ctx context.Context, f *models.Field) apperrors.Error

	// Property
	CreateProperty(ctx context.Context, p *models.Property) apperrors.Error
	GetProperty(ctx context.Context, id int64) (*models.Property, apperrors.Error)
	GetPropertyByName(ctx context.Context, name string) (*models.Property, apperrors.Error)
	ListProperties(ctx context.Context) ([]models.Property, apperrors.Error)
	UpdateProperty(ctx context.Context, p *models.Property) apperrors.Error

	// ObjectProperty
	CreateObjectProperty(ctx context.Context, op *models.ObjectProperty) apperrors.Error
	GetObjectProperty(ctx context.Context, id int64) (*models.ObjectProperty, apperrors.Error)
	ListObjectProperties(ctx context.Context, parentPropertyID int64) ([]models.ObjectProperty, apperrors.Error)
	UpdateObjectProperty(ctx context.Context, op *models.ObjectProperty) apperrors.Error

	// ClassProperty
	CreateClassProperty(ctx context.Context, cp *models.ClassProperty) apperrors.Error
	GetClassProperty(ctx context.Context, id int64) (*models.ClassProperty, apperrors.Error)
	ListClassProperties(ctx context.Context, classID int64) ([]models.ClassProperty, apperrors.Error)
	UpdateClassProperty(ctx context.Context, cp *models.ClassProperty) apperrors.Error

	// Instance
	CreateInstance(ctx context.Context, in *models.Instance) apperrors.Error
	GetInstance(ctx context.Context, id int64) (*models.Instance, apperrors.Error)
	ListInstances(ctx context.Context, classID int64) ([]models.Instance, apperrors.Error)
	UpdateInstance(ctx context.Context, in *models.Instance) apperrors.Error

	// Close the connection to the database.
	Close(ctx context.Context)
}

var (
	_ DB_ = (*memstore.Store)(nil)
	_ DB_ = postgresql.NewObjectifiedDb(nil)
)

var (
	pool   dbmanager.ScopedDb
	poolMu sync.RWMutex
	once   sync.Once
)

var ErrPoolNotInitialized = errors.New("db pool is not initialized")

// Init creates the process-wide pool. Only the first call has any effect.
func Init(ctx context.Context, cfg config.DBConfig) error {
	var err error
	once.Do(func() {
		var p dbmanager.ScopedDb
		p, err = dbmanager.NewScopedDb(ctx, cfg)
		if err != nil {
			return
		}
		if sqlDb, ok := p.Handle().(*sql.DB); ok && cfg.AutoMigrate {
			if err = postgresql.Migrate(ctx, sqlDb); err != nil {
				p.Close()
				return
			}
			log.Ctx(ctx).Info().Msg("database schema is up to date")
		}
		SetPool(p)
	})
	return err
}

// SetPool installs p as the process-wide pool. Tests use it to swap backends.
func SetPool(p dbmanager.ScopedDb) {
	poolMu.Lock()
	pool = p
	poolMu.Unlock()
}

func Pool() dbmanager.ScopedDb {
	poolMu.RLock()
	defer poolMu.RUnlock()
	return pool
}

// Shutdown closes the pool. For the memory backend this writes the snapshot file.
func Shutdown(ctx context.Context) error {
	p := Pool()
	if p == nil {
		return nil
	}
	return p.Close()
}

func Conn(ctx context.Context) dbmanager.ScopedConn {
	if p := Pool(); p != nil {
		conn, err := p.Conn(ctx)
		if err == nil {
			return conn
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
	}
	return nil
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "ObjectifiedDb"

// ConnCtx checks out a connection and binds it to the returned context. The caller releases
// it with DB(ctx).Close(ctx).
func ConnCtx(ctx context.Context) context.Context {
	conn := Conn(ctx)
	if conn == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxDbKey, conn)
}

// DB returns the accessor for the connection bound to ctx, falling back to the pool itself
// when none is bound.
func DB(ctx context.Context) DB_ {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.ScopedConn); ok {
		return newDb(conn.Conn(), conn)
	}
	if p := Pool(); p != nil {
		return newDb(p.Handle(), nil)
	}
	log.Ctx(ctx).Error().Err(ErrPoolNotInitialized).Msg("unable to get db connection from context")
	return nil
}

func newDb(handle any, conn dbmanager.ScopedConn) DB_ {
	switch h := handle.(type) {
	case *memstore.Store:
		return h.WithRelease(releaser(conn))
	case *sql.Conn:
		return postgresql.NewObjectifiedDb(h).WithRelease(releaser(conn))
	case *sql.DB:
		return postgresql.NewObjectifiedDb(h)
	}
	return nil
}

func releaser(conn dbmanager.ScopedConn) func(ctx context.Context) {
	if conn == nil {
		return nil
	}
	return conn.Close
}
