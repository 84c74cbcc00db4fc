package baserepo

import (
	"context"

	"github.com/meavi1994/go-ordered-dict/ordereddict"
)

// DictIndex is a unique ordered index backed by an ordereddict search tree.
// Each key maps to exactly one entity; inserting a different entity under an
// existing key fails with ErrDuplicateKey.
type DictIndex[K comparable, T Entity] struct {
	dict    *ordereddict.SafeDict[K, T]
	keyFunc func(T) K
}

// NewUniqueIndex creates a unique index extracting keys with keyFunc and
// ordering them with less.
func NewUniqueIndex[K comparable, T Entity](keyFunc func(T) K, less func(a, b K) bool) *DictIndex[K, T] {
	return &DictIndex[K, T]{
		dict:    ordereddict.NewSafeFunc[K, T](less),
		keyFunc: keyFunc,
	}
}

// Insert adds obj to the index, replacing the entry when the same entity is
// re-inserted (an update) and failing when a different entity already holds
// the key.
func (idx *DictIndex[K, T]) Insert(ctx context.Context, obj T) error {
	key := idx.keyFunc(obj)

	if existing, err := idx.dict.Get(key); err == nil {
		if existing.GetBase().ID != obj.GetBase().ID {
			return ErrDuplicateKey
		}
	}

	idx.dict.Set(key, obj)
	return nil
}

// Delete removes obj's key from the index. Deleting an unindexed entity is a
// no-op.
func (idx *DictIndex[K, T]) Delete(ctx context.Context, obj T) {
	key := idx.keyFunc(obj)

	// Only drop the entry if it actually points at this entity; the key may
	// have been taken over by another entity since.
	if existing, err := idx.dict.Get(key); err == nil {
		if existing.GetBase().ID == obj.GetBase().ID {
			idx.dict.Remove(key)
		}
	}
}

// Find returns the entity indexed under key.
func (idx *DictIndex[K, T]) Find(ctx context.Context, key K) (T, bool) {
	obj, err := idx.dict.Get(key)
	if err != nil {
		var zero T
		return zero, false
	}
	return obj, true
}

// Ascend iterates the indexed entities in ascending key order.
func (idx *DictIndex[K, T]) Ascend(ctx context.Context, fn func(T) bool) {
	idx.dict.Ascend(func(_ K, obj T) bool {
		return fn(obj)
	})
}

// Len returns the number of indexed keys.
func (idx *DictIndex[K, T]) Len() int {
	return idx.dict.Len()
}
