package btree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/ordtrees/render"
)

// Shape returns a read-only structural view of the tree for rendering, or
// nil if the tree is empty. Every node is rendered as a page listing its keys.
func (t *Tree[K]) Shape() render.Node {
	if t.IsEmpty() {
		return nil
	}
	return page[K]{n: t.root}
}

type page[K cmp.Ordered] struct {
	n *node[K]
}

func (p page[K]) Label() string {
	var b strings.Builder
	for i, key := range p.n.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		if p.n.counts[i] > 1 {
			fmt.Fprintf(&b, "%v×%d", key, p.n.counts[i])
		} else {
			fmt.Fprintf(&b, "%v", key)
		}
	}
	return b.String()
}

func (p page[K]) Class() render.Class {
	return render.Page
}

func (p page[K]) Children() []render.Node {
	if p.n.isLeaf() {
		return nil
	}
	children := make([]render.Node, len(p.n.children))
	for i, child := range p.n.children {
		children[i] = page[K]{n: child}
	}
	return children
}
