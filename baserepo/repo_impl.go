package baserepo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RepoImpl is a generic, thread-safe, in-memory repository.
type RepoImpl[T Entity] struct {
	store   sync.Map // map[uuid.UUID]T
	indexes map[string]Indexer[T]
	mu      sync.RWMutex // protects indexes

	subscribers   []chan Event[T]
	subscribersMu sync.RWMutex
}

func NewRepo[T Entity]() *RepoImpl[T] {
	return &RepoImpl[T]{
		indexes: make(map[string]Indexer[T]),
	}
}

// notify fans an event out to all subscriber channels.
func (r *RepoImpl[T]) notify(eventType string, obj T) {
	r.subscribersMu.RLock()
	defer r.subscribersMu.RUnlock()

	for _, ch := range r.subscribers {
		ch <- Event[T]{Type: eventType, Obj: obj}
	}
}

// insertIndexes inserts obj into every index, rolling back the ones already
// updated when a later one fails.
func (r *RepoImpl[T]) insertIndexes(ctx context.Context, obj T) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var updated []Indexer[T]
	for name, idx := range r.indexes {
		if err := idx.Insert(ctx, obj); err != nil {
			for _, u := range updated {
				u.Delete(ctx, obj)
			}
			return fmt.Errorf("failed to insert into index %s: %w", name, err)
		}
		updated = append(updated, idx)
	}
	return nil
}

func (r *RepoImpl[T]) Create(ctx context.Context, obj T) (uuid.UUID, error) {
	base := obj.GetBase()
	base.ID = uuid.New()
	base.CreatedAt = time.Now()
	base.UpdatedAt = base.CreatedAt

	r.store.Store(base.ID, obj)

	if err := r.insertIndexes(ctx, obj); err != nil {
		r.store.Delete(base.ID) // Rollback main store
		return uuid.Nil, err
	}

	r.notify("create", obj)
	return base.ID, nil
}

func (r *RepoImpl[T]) Update(ctx context.Context, obj T) error {
	base := obj.GetBase()
	oldObj, err := r.Get(ctx, base.ID)
	if err != nil {
		return err
	}

	base.UpdatedAt = time.Now()
	r.store.Store(base.ID, obj)

	if err := r.insertIndexes(ctx, obj); err != nil {
		r.store.Store(base.ID, oldObj) // Rollback main store
		return err
	}

	r.notify("update", obj)
	return nil
}

func (r *RepoImpl[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	v, ok := r.store.Load(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v.(T), nil
}

func (r *RepoImpl[T]) GetAllByIds(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]T, error) {
	result := make(map[uuid.UUID]T, len(ids))
	for _, id := range ids {
		if v, ok := r.store.Load(id); ok {
			result[id] = v.(T)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}

func (r *RepoImpl[T]) Delete(ctx context.Context, id uuid.UUID) error {
	v, ok := r.store.Load(id)
	if !ok {
		return ErrNotFound
	}
	obj := v.(T)
	r.store.Delete(id)

	r.mu.RLock()
	for _, idx := range r.indexes {
		idx.Delete(ctx, obj)
	}
	r.mu.RUnlock()

	r.notify("delete", obj)
	return nil
}

func (r *RepoImpl[T]) GetAll(ctx context.Context) []T {
	var result []T
	r.store.Range(func(_, value any) bool {
		result = append(result, value.(T))
		return true
	})
	return result
}

func (r *RepoImpl[T]) Exists(ctx context.Context, id uuid.UUID) bool {
	_, ok := r.store.Load(id)
	return ok
}

func (r *RepoImpl[T]) Count(ctx context.Context, predicate func(T) bool) int {
	count := 0
	r.store.Range(func(_, value any) bool {
		if predicate == nil || predicate(value.(T)) {
			count++
		}
		return true
	})
	return count
}

func (r *RepoImpl[T]) Find(ctx context.Context, predicate func(T) bool) []T {
	var result []T
	r.store.Range(func(_, value any) bool {
		if obj := value.(T); predicate(obj) {
			result = append(result, obj)
		}
		return true
	})
	return result
}

func (r *RepoImpl[T]) FindFirst(ctx context.Context, predicate func(T) bool) (T, bool) {
	var found T
	ok := false
	r.store.Range(func(_, value any) bool {
		if obj := value.(T); predicate(obj) {
			found = obj
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// WithStore allows direct access to the underlying sync.Map for custom
// operations, e.g. bulk updates.
func (r *RepoImpl[T]) WithStore(fn func(store *sync.Map)) {
	fn(&r.store)
}

// AddIndex registers an index and builds it from the existing data.
func (r *RepoImpl[T]) AddIndex(ctx context.Context, name string, idx Indexer[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexes[name] = idx
	r.store.Range(func(_, value any) bool {
		idx.Insert(ctx, value.(T))
		return true
	})
}

func (r *RepoImpl[T]) GetIndex(ctx context.Context, name string) (Indexer[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.indexes[name]
	return idx, ok
}

// AddSubscriber registers a channel to receive events. The channel must be
// drained; notify blocks on a full channel.
func (r *RepoImpl[T]) AddSubscriber(ch chan Event[T]) {
	r.subscribersMu.Lock()
	defer r.subscribersMu.Unlock()
	r.subscribers = append(r.subscribers, ch)
}

// String implements fmt.Stringer
func (r *RepoImpl[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	r.store.Range(func(_, value any) bool {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", value))
		first = false
		return true
	})
	sb.WriteString("]")
	return sb.String()
}
