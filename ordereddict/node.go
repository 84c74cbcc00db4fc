package ordereddict

// node is a vertex of the search tree. A node owns its children; parent is a
// non-owning back-reference used only for iterator traversal and must never be
// followed when tearing a subtree down.
type node[K comparable, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// min returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// clone deep-copies the subtree rooted at n, attaching the copy under parent.
func (n *node[K, V]) clone(parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{key: n.key, value: n.value, parent: parent}
	c.left = n.left.clone(c)
	c.right = n.right.clone(c)
	return c
}
