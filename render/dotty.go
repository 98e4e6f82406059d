package render

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.next()
	return ids.idTable[node]
}

// next hands out a fresh id which is not bound to a node, e.g. for empty
// child slots.
func (ids *nodeids) next() int {
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a tree in Graphviz DOT format (for debugging
// purposes). root may be nil for an empty tree.
func Dot(root Node, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	var walk func(n Node)
	walk = func(n Node) {
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, n.Label(), nodeDotStyles(n))
		if !hasChildren(n) {
			return
		}
		for _, ch := range n.Children() {
			if ch == nil {
				nilid := ids.next()
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			chID := ids.alloc(ch)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, chID)
			walk(ch)
		}
	}
	if root != nil {
		walk(root)
	}
	tracer().Debugf("tree DOT: %d nodes and empty slots", ids.max-1)
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n Node) string {
	s := ",style=filled"
	switch n.Class() {
	case Red:
		s += ",color=black,fontcolor=white,fillcolor=\"#cc2222\",shape=circle"
	case Black:
		s += ",color=black,fontcolor=white,fillcolor=black,shape=circle"
	case Page:
		s += ",fillcolor=\"#a3d7e4\",shape=record"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
