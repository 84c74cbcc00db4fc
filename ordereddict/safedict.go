package ordereddict

import (
	"cmp"
	"sync"
)

// SafeDict wraps a Dict with an RWMutex so it can be shared between
// goroutines. Every operation takes the whole-structure lock; there is no
// finer-grained protection.
//
// SafeDict deliberately exposes no value pointers and no node-level
// iterators: pointers would escape the lock. Use Get/Set for access and
// Ascend for ordered traversal.
type SafeDict[K comparable, V any] struct {
	mu sync.RWMutex
	d  *Dict[K, V]
}

// NewSafe creates an empty SafeDict ordered by K's natural ordering.
func NewSafe[K cmp.Ordered, V any]() *SafeDict[K, V] {
	return &SafeDict[K, V]{d: New[K, V]()}
}

// NewSafeFunc creates an empty SafeDict ordered by the given less function.
func NewSafeFunc[K comparable, V any](less func(a, b K) bool) *SafeDict[K, V] {
	return &SafeDict[K, V]{d: NewFunc[K, V](less)}
}

func (s *SafeDict[K, V]) Has(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Has(key)
}

// Add inserts key with value; like Dict.Add it does nothing when key exists.
func (s *SafeDict[K, V]) Add(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Add(key, value)
}

// Set stores value under key, inserting or overwriting.
func (s *SafeDict[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.d.GetOrInsert(key) = value
}

func (s *SafeDict[K, V]) Remove(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Remove(key)
}

func (s *SafeDict[K, V]) Get(key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Get(key)
}

func (s *SafeDict[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Len()
}

func (s *SafeDict[K, V]) Min() (K, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Min()
}

func (s *SafeDict[K, V]) Max() (K, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Max()
}

// Ascend calls fn for every entry in ascending key order while holding the
// read lock. fn must not call back into the SafeDict.
func (s *SafeDict[K, V]) Ascend(fn func(key K, value V) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.d.Ascend(fn)
}

func (s *SafeDict[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Clear()
}

// Clone returns an independent deep copy as a plain Dict.
func (s *SafeDict[K, V]) Clone() *Dict[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Clone()
}
