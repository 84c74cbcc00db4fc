// Package baserepo provides a generic, in-memory entity repository with
// ordered secondary indexes. Unique indexes are backed by the ordereddict
// search tree; non-unique indexes by a B-tree.
package baserepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")
var ErrDuplicateKey = errors.New("duplicate key on unique index")

// BaseModel provides common fields for all entities.
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entity is any object stored in a Repo.
type Entity interface {
	GetBase() *BaseModel
}

// Event describes a repository mutation delivered to subscribers.
type Event[T any] struct {
	Type string // "create", "update", "delete"
	Obj  T
}

// Repo is the public repository contract.
type Repo[T Entity] interface {
	Create(ctx context.Context, obj T) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	GetAllByIds(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]T, error)
	Update(ctx context.Context, obj T) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) []T
	Exists(ctx context.Context, id uuid.UUID) bool
	Count(ctx context.Context, predicate func(T) bool) int
	Find(ctx context.Context, predicate func(T) bool) []T
	FindFirst(ctx context.Context, predicate func(T) bool) (T, bool)
	WithStore(fn func(store *sync.Map))

	// Index support
	AddIndex(ctx context.Context, name string, idx Indexer[T])
	GetIndex(ctx context.Context, name string) (Indexer[T], bool)

	// Subscribers
	AddSubscriber(ch chan Event[T])
}

// Indexer is the minimal contract a secondary index must satisfy to be
// maintained by a Repo.
type Indexer[T Entity] interface {
	Insert(ctx context.Context, obj T) error
	Delete(ctx context.Context, obj T)
	Ascend(ctx context.Context, fn func(T) bool)
}
