package ordereddict

import "iter"

// Iterator is a position in the in-order key sequence of a Dict, either at a
// node or at the end sentinel. Iterators are comparable: two positions are
// equal iff they refer to the same node, and all end positions are equal.
//
// Key, Value and Next require a valid (non-end) position; calling them on the
// end sentinel is a programming error and panics. A position is invalidated
// when its node is removed from the dictionary.
type Iterator[K comparable, V any] struct {
	current *node[K, V]
}

// Begin returns the position of the smallest key, or End on an empty Dict.
func (d *Dict[K, V]) Begin() Iterator[K, V] {
	if d.root == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{current: d.root.min()}
}

// BeginAt returns the position of key, or End when key is absent. It allows
// in-order iteration to start from an arbitrary key.
func (d *Dict[K, V]) BeginAt(key K) Iterator[K, V] {
	pos, _ := d.find(key)
	return Iterator[K, V]{current: *pos}
}

// End returns the end sentinel, the position one past the largest key.
func (d *Dict[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Valid reports whether the position refers to a node rather than the end
// sentinel.
func (it Iterator[K, V]) Valid() bool {
	return it.current != nil
}

// Key returns the key at the current position.
func (it Iterator[K, V]) Key() K {
	return it.current.key
}

// Value returns the value at the current position.
func (it Iterator[K, V]) Value() V {
	return it.current.value
}

// Next returns the position of the in-order successor, or End when the
// current key is the largest. When the node has a right subtree the successor
// is that subtree's minimum; otherwise Next climbs the parent back-references
// past every node it is a right child of.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	n := it.current
	if n.right != nil {
		return Iterator[K, V]{current: n.right.min()}
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return Iterator[K, V]{current: n.parent}
}

// All returns an in-order iterator over all entries, for use with range.
// The dictionary must not be modified during iteration.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := d.Begin(); it != d.End(); it = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Ascend calls fn for every entry in ascending key order until fn returns
// false.
func (d *Dict[K, V]) Ascend(fn func(key K, value V) bool) {
	for it := d.Begin(); it != d.End(); it = it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
