package render

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Palette maps node classes to console colors.
type Palette map[Class]*color.Color

// DefaultPalette is used by Console when colored output is requested.
func DefaultPalette() Palette {
	p := Palette{
		Red:   color.New(color.FgRed, color.Bold),
		Black: color.New(color.Bold),
		Page:  color.New(color.FgCyan),
		Plain: color.New(color.FgGreen),
	}
	for _, c := range p {
		c.EnableColor() // callers decide about terminals, not package color
	}
	return p
}

// Console prints a tree to w, one node per line, children indented below
// their parent:
//
//	50
//	├── 30
//	│   ├── 20
//	│   └── 40
//	└── 70
//
// Empty slots of binary nodes are printed as '·' if the sibling slot is
// occupied. If colored is true, labels are colored by node class.
func Console(root Node, w io.Writer, colored bool) {
	var palette Palette
	if colored {
		palette = DefaultPalette()
	}
	if root == nil {
		io.WriteString(w, "(empty)\n")
		return
	}
	printNode(root, w, "", "", palette)
}

func printNode(n Node, w io.Writer, lead, prefix string, palette Palette) {
	var b strings.Builder
	b.WriteString(lead)
	b.WriteString(label(n, palette))
	b.WriteByte('\n')
	io.WriteString(w, b.String())
	if !hasChildren(n) {
		return
	}
	children := n.Children()
	for i, ch := range children {
		last := i == len(children)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}
		if ch == nil {
			io.WriteString(w, prefix+branch+"·\n")
			continue
		}
		printNode(ch, w, prefix+branch, prefix+indent, palette)
	}
}

func label(n Node, palette Palette) string {
	l := n.Label()
	if n.Class() == Page {
		l = "[" + l + "]"
	}
	if palette == nil {
		return l
	}
	if c, ok := palette[n.Class()]; ok {
		return c.Sprint(l)
	}
	return l
}
