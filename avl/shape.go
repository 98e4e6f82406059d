package avl

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordtrees/render"
)

// Shape returns a read-only structural view of the tree for rendering, or
// nil if the tree is empty.
func (t *Tree[K]) Shape() render.Node {
	return shapeOf(t.root)
}

type shape[K cmp.Ordered] struct {
	n *node[K]
}

func shapeOf[K cmp.Ordered](n *node[K]) render.Node {
	if n == nil {
		return nil
	}
	return shape[K]{n: n}
}

func (s shape[K]) Label() string {
	if s.n.count > 1 {
		return fmt.Sprintf("%v ×%d", s.n.key, s.n.count)
	}
	return fmt.Sprintf("%v", s.n.key)
}

func (s shape[K]) Class() render.Class {
	return render.Plain
}

func (s shape[K]) Children() []render.Node {
	if s.n.left == nil && s.n.right == nil {
		return nil
	}
	return []render.Node{shapeOf(s.n.left), shapeOf(s.n.right)}
}
