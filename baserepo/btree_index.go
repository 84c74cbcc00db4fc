package baserepo

import (
	"context"
	"sync"

	"github.com/google/btree"
)

// item wraps a key and the collection of entities sharing it. The value is a
// map from the entity's unique ID to the entity itself, so several entities
// may share one key.
type item[K comparable, T Entity] struct {
	key   K
	value *sync.Map
}

// BTreeIndex is a non-unique ordered index backed by a B-tree.
type BTreeIndex[K comparable, T Entity] struct {
	tree    *btree.BTreeG[item[K, T]]
	keyFunc func(T) K
}

// NewIndex creates a non-unique index extracting keys with keyFunc and
// ordering them with less.
func NewIndex[K comparable, T Entity](keyFunc func(T) K, less func(a, b K) bool) *BTreeIndex[K, T] {
	btreeLess := func(a, b item[K, T]) bool {
		return less(a.key, b.key)
	}
	return &BTreeIndex[K, T]{
		tree:    btree.NewG(2, btreeLess),
		keyFunc: keyFunc,
	}
}

// Insert adds obj under its key, joining the existing collection when other
// entities already share the key. It never fails.
func (idx *BTreeIndex[K, T]) Insert(ctx context.Context, obj T) error {
	key := idx.keyFunc(obj)

	if it, found := idx.tree.Get(item[K, T]{key: key}); found {
		it.value.Store(obj.GetBase().ID, obj)
		return nil
	}

	collection := &sync.Map{}
	collection.Store(obj.GetBase().ID, obj)
	idx.tree.ReplaceOrInsert(item[K, T]{key: key, value: collection})
	return nil
}

// Delete removes obj from its key's collection, dropping the key entirely
// when the collection becomes empty.
func (idx *BTreeIndex[K, T]) Delete(ctx context.Context, obj T) {
	key := idx.keyFunc(obj)

	it, found := idx.tree.Get(item[K, T]{key: key})
	if !found {
		return
	}
	it.value.Delete(obj.GetBase().ID)

	empty := true
	it.value.Range(func(_, _ any) bool {
		empty = false
		return false
	})
	if empty {
		idx.tree.Delete(it)
	}
}

// Find returns all entities indexed under key.
func (idx *BTreeIndex[K, T]) Find(ctx context.Context, key K) []T {
	it, found := idx.tree.Get(item[K, T]{key: key})
	if !found {
		return nil
	}

	var results []T
	it.value.Range(func(_, value any) bool {
		results = append(results, value.(T))
		return true
	})
	return results
}

// forRange adapts a btree iteration function to the per-key collections.
func (idx *BTreeIndex[K, T]) forRange(
	btreeIterFn func(fn func(i item[K, T]) bool),
	userFn func(T) bool,
) {
	btreeIterFn(func(i item[K, T]) bool {
		keepGoing := true
		i.value.Range(func(_, value any) bool {
			if !userFn(value.(T)) {
				keepGoing = false
				return false
			}
			return true
		})
		return keepGoing
	})
}

// Ascend iterates in ascending key order.
func (idx *BTreeIndex[K, T]) Ascend(ctx context.Context, fn func(T) bool) {
	idx.forRange(func(btreeFn func(i item[K, T]) bool) {
		idx.tree.Ascend(btreeFn)
	}, fn)
}

// Descend iterates in descending key order.
func (idx *BTreeIndex[K, T]) Descend(ctx context.Context, fn func(T) bool) {
	idx.forRange(func(btreeFn func(i item[K, T]) bool) {
		idx.tree.Descend(btreeFn)
	}, fn)
}

// AscendRange iterates keys in [lower, upper) in ascending order.
func (idx *BTreeIndex[K, T]) AscendRange(ctx context.Context, lower, upper K, fn func(T) bool) {
	idx.forRange(func(btreeFn func(i item[K, T]) bool) {
		idx.tree.AscendRange(item[K, T]{key: lower}, item[K, T]{key: upper}, btreeFn)
	}, fn)
}

// AscendGreaterThanOrEqual iterates from key to the end in ascending order.
func (idx *BTreeIndex[K, T]) AscendGreaterThanOrEqual(ctx context.Context, key K, fn func(T) bool) {
	idx.forRange(func(btreeFn func(i item[K, T]) bool) {
		idx.tree.AscendGreaterOrEqual(item[K, T]{key: key}, btreeFn)
	}, fn)
}
