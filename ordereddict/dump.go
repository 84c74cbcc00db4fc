package ordereddict

import (
	"fmt"
	"io"
	"strings"
)

// DumpTo writes a diagnostic rendering of the tree structure: one line per
// node in key order, prefixed with the node's path from the root encoded as
// 0 (left) and 1 (right). Deeper nodes carry longer prefixes, so the shape of
// the tree is visible at a glance. Intended for debugging only; the format is
// not stable.
func (d *Dict[K, V]) DumpTo(w io.Writer) {
	dumpNode(w, "", d.root)
}

// Dump returns the DumpTo rendering as a string.
func (d *Dict[K, V]) Dump() string {
	var sb strings.Builder
	d.DumpTo(&sb)
	return sb.String()
}

func dumpNode[K comparable, V any](w io.Writer, prefix string, n *node[K, V]) {
	if n == nil {
		return
	}
	dumpNode(w, " "+prefix+"0", n.left)
	fmt.Fprintf(w, "%s: %v\n", prefix, n.key)
	dumpNode(w, " "+prefix+"1", n.right)
}
