// Package memstore is an in-process implementation of the db.DB_ contract. It enforces the
// same uniqueness and reference rules as the PostgreSQL schema, and can be persisted to a
// snappy compressed snapshot file.
package memstore

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
)

type table[T any] struct {
	Seq  int64        `json:"seq"`
	Rows map[int64]*T `json:"rows"`
}

func newTable[T any]() table[T] {
	return table[T]{Rows: make(map[int64]*T)}
}

func (t *table[T]) insert(v *T) int64 {
	t.Seq++
	t.Rows[t.Seq] = v
	return t.Seq
}

func (t *table[T]) get(id int64) (T, bool) {
	var zero T
	v, ok := t.Rows[id]
	if !ok {
		return zero, false
	}
	return *v, true
}

// list returns copies of the rows accepted by keep, ordered by id.
func (t *table[T]) list(keep func(*T) bool) []T {
	ids := make([]int64, 0, len(t.Rows))
	for id := range t.Rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := []T{}
	for _, id := range ids {
		v := t.Rows[id]
		if keep == nil || keep(v) {
			list = append(list, *v)
		}
	}
	return list
}

// exists reports whether some row other than exceptID satisfies match.
func (t *table[T]) exists(exceptID int64, match func(*T) bool) bool {
	for id, v := range t.Rows {
		if id != exceptID && match(v) {
			return true
		}
	}
	return false
}

func (t *table[T]) ensure() {
	if t.Rows == nil {
		t.Rows = make(map[int64]*T)
	}
}

type Store struct {
	mu sync.RWMutex
	s  *state
}

func New() *Store {
	return &Store{s: newState()}
}

// Conn is a Store bound to a pooled connection. Close releases the connection.
type Conn struct {
	*Store
	release func(ctx context.Context)
}

func (m *Store) WithRelease(release func(ctx context.Context)) *Conn {
	return &Conn{Store: m, release: release}
}

func (c *Conn) Close(ctx context.Context) {
	if c.release != nil {
		c.release(ctx)
	}
}

func (m *Store) Close(ctx context.Context) {}

func now() time.Time {
	return time.Now().UTC()
}

func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

func contains(s, value string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(value))
}

func notFound(entity string) apperrors.Error {
	return dberror.ErrNotFound.Msg(entity + " not found")
}

func alreadyExists(entity string) apperrors.Error {
	return dberror.ErrAlreadyExists.Msg(entity + " already exists")
}

func referenceNotFound(msg string) apperrors.Error {
	return dberror.ErrReferenceNotFound.Msg(msg)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return slices.Clone(b)
}
