// Package ordereddict implements a generic ordered dictionary backed by an
// unbalanced binary search tree.
//
// Keys are kept in ascending order and iterated in that order. There is no
// rebalancing: lookup, insert and remove are O(depth), which degrades to O(n)
// for adversarial insertion orders. A Dict holds exactly one node per distinct
// key; equality is determined solely by ==.
//
// A Dict is not safe for concurrent use. Wrap it in a SafeDict, or guard it
// with one exclusive lock, when multiple goroutines touch it.
package ordereddict

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Dict is an ordered map from K to V. The ordering is defined by the less
// function supplied at construction; equality is the == operator on K.
type Dict[K comparable, V any] struct {
	root *node[K, V]
	less func(a, b K) bool
	size int
}

// New creates an empty Dict ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Dict[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc creates an empty Dict ordered by the given less function. The
// function must define a strict total order consistent with == on K.
func NewFunc[K comparable, V any](less func(a, b K) bool) *Dict[K, V] {
	return &Dict[K, V]{less: less}
}

// find reports where the node with key lives or would live: at *pos. If *pos
// is non-nil the key is present; otherwise *pos is the empty slot where a new
// node should be attached, and parent is the node owning that slot (nil when
// pos is the root slot).
func (d *Dict[K, V]) find(key K) (pos **node[K, V], parent *node[K, V]) {
	pos = &d.root
	for x := *pos; x != nil; x = *pos {
		if x.key == key {
			break
		}
		parent = x
		if d.less(key, x.key) {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// Has reports whether key is currently in the dictionary.
func (d *Dict[K, V]) Has(key K) bool {
	pos, _ := d.find(key)
	return *pos != nil
}

// Add inserts key with the given value. If key is already present, Add does
// nothing: the stored value is NOT updated. Use GetOrInsert to modify the
// value of an existing key.
func (d *Dict[K, V]) Add(key K, value V) {
	pos, parent := d.find(key)
	if *pos != nil {
		return
	}
	*pos = &node[K, V]{key: key, value: value, parent: parent}
	d.size++
}

// Find returns a pointer to the value stored for key, or false when absent.
// It never modifies the tree. The pointer stays valid until key is removed.
func (d *Dict[K, V]) Find(key K) (*V, bool) {
	pos, _ := d.find(key)
	if *pos == nil {
		return nil, false
	}
	return &(*pos).value, true
}

// GetOrInsert returns a pointer to the value stored for key, inserting a node
// with the zero value first when key is absent. Accessing a missing key
// therefore mutates the dictionary.
func (d *Dict[K, V]) GetOrInsert(key K) *V {
	pos, parent := d.find(key)
	if *pos == nil {
		*pos = &node[K, V]{key: key, parent: parent}
		d.size++
	}
	return &(*pos).value
}

// Get returns the value stored for key, or ErrKeyNotFound when absent. Unlike
// GetOrInsert it never modifies the dictionary.
func (d *Dict[K, V]) Get(key K) (V, error) {
	pos, _ := d.find(key)
	if *pos == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return (*pos).value, nil
}

// Remove deletes key from the dictionary. Removing an absent key is a no-op.
//
// A leaf is detached directly. An interior node is not deleted: its in-order
// neighbor (max of the left subtree when a left child exists, else min of the
// right subtree) donates its key and value, and the donor is removed instead.
// The donor has at most one child on the relevant side, so the recursion
// always terminates at a leaf detach.
func (d *Dict[K, V]) Remove(key K) {
	pos, _ := d.find(key)
	n := *pos
	if n == nil {
		return
	}
	if n.isLeaf() {
		*pos = nil
		n.parent = nil
		d.size--
		return
	}
	var donor *node[K, V]
	if n.left != nil {
		donor = n.left.max()
	} else {
		donor = n.right.min()
	}
	k, v := donor.key, donor.value
	d.Remove(k)
	n.key, n.value = k, v
}

// Len returns the number of keys in the dictionary.
func (d *Dict[K, V]) Len() int {
	return d.size
}

// Min returns the smallest key, or false when the dictionary is empty.
func (d *Dict[K, V]) Min() (K, bool) {
	if d.root == nil {
		var zero K
		return zero, false
	}
	return d.root.min().key, true
}

// Max returns the largest key, or false when the dictionary is empty.
func (d *Dict[K, V]) Max() (K, bool) {
	if d.root == nil {
		var zero K
		return zero, false
	}
	return d.root.max().key, true
}

// Clear removes every node. The tree is torn down iteratively with an
// explicit work list rather than by recursion, so adversarially deep trees
// cannot overflow the stack, and all child and parent links are severed so
// detached subtrees cannot keep each other reachable.
func (d *Dict[K, V]) Clear() {
	var stack []*node[K, V]
	if d.root != nil {
		stack = append(stack, d.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right, n.parent = nil, nil, nil
	}
	d.root = nil
	d.size = 0
}

// Clone returns a deep copy: every node is duplicated and re-linked, so
// mutating the copy never affects the original.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	return &Dict[K, V]{
		root: d.root.clone(nil),
		less: d.less,
		size: d.size,
	}
}

// Move transfers the whole tree to a new Dict in O(1), leaving the receiver
// empty but usable. No nodes are copied.
func (d *Dict[K, V]) Move() *Dict[K, V] {
	m := &Dict[K, V]{root: d.root, less: d.less, size: d.size}
	d.root = nil
	d.size = 0
	return m
}

// String implements fmt.Stringer, rendering entries in key order.
func (d *Dict[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	d.Ascend(func(key K, value V) bool {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v=%v", key, value))
		first = false
		return true
	})
	sb.WriteString("]")
	return sb.String()
}
