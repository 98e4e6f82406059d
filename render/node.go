package render

// Class tells a renderer how to style a node.
type Class uint8

const (
	Plain Class = iota // binary node without color, e.g. AVL
	Red                // red node of a red-black tree
	Black              // black node of a red-black tree
	Page               // multiway node holding a sequence of keys
)

func (c Class) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	case Page:
		return "page"
	}
	return "plain"
}

// Node is a read-only view of a tree node.
//
// Children returns the child slots in order. A nil entry denotes an empty
// slot of a binary node; implementations must return a true nil interface
// for it, not a typed nil pointer. Leaves return an empty slice.
type Node interface {
	Label() string
	Class() Class
	Children() []Node
}

// hasChildren is true if at least one child slot is occupied.
func hasChildren(n Node) bool {
	for _, ch := range n.Children() {
		if ch != nil {
			return true
		}
	}
	return false
}
