package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

type testNode struct {
	label    string
	class    Class
	children []Node
}

func (n *testNode) Label() string    { return n.label }
func (n *testNode) Class() Class     { return n.class }
func (n *testNode) Children() []Node { return n.children }

func leaf(label string, class Class) *testNode {
	return &testNode{label: label, class: class}
}

// 50 with children 30 (left child 20 only) and 70
func sampleTree() Node {
	n30 := &testNode{label: "30", class: Black, children: []Node{leaf("20", Red), nil}}
	return &testNode{label: "50", class: Black, children: []Node{n30, leaf("70", Black)}}
}

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	Console(sampleTree(), &buf, false)
	want := "50\n" +
		"├── 30\n" +
		"│   ├── 20\n" +
		"│   └── ·\n" +
		"└── 70\n"
	if buf.String() != want {
		t.Fatalf("unexpected console output:\n%s", buf.String())
	}
}

func TestConsoleEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	Console(nil, &buf, true)
	if buf.String() != "(empty)\n" {
		t.Fatalf("unexpected output for empty tree: %q", buf.String())
	}
}

func TestConsoleBracketsPages(t *testing.T) {
	root := &testNode{label: "4", class: Page, children: []Node{leaf("1 2", Page), leaf("5", Page)}}
	var buf bytes.Buffer
	Console(root, &buf, false)
	if !strings.HasPrefix(buf.String(), "[4]\n├── [1 2]\n") {
		t.Fatalf("pages not bracketed:\n%s", buf.String())
	}
}

func TestConsoleColorsRedNodes(t *testing.T) {
	var buf bytes.Buffer
	Console(sampleTree(), &buf, true)
	if !strings.Contains(buf.String(), "\x1b[31;1m20") {
		t.Fatalf("expected red escape sequence before red node:\n%q", buf.String())
	}
}

func TestDotIsWellFormed(t *testing.T) {
	var buf bytes.Buffer
	Dot(sampleTree(), &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a digraph:\n%s", out)
	}
	if n := strings.Count(out, "->"); n != 4 {
		t.Fatalf("expected 4 edges including the empty slot, have %d", n)
	}
	if !strings.Contains(out, `fillcolor="#cc2222"`) {
		t.Fatalf("red node not styled red")
	}
	if !strings.Contains(out, "shape=circle,fixedsize=true") {
		t.Fatalf("empty slot not drawn")
	}
}

func TestClassNames(t *testing.T) {
	for c, want := range map[Class]string{Plain: "plain", Red: "red", Black: "black", Page: "page"} {
		if c.String() != want {
			t.Fatalf("class %d: expected %q, have %q", c, want, c.String())
		}
	}
}

func TestDotIdsUniqueInLargeTrees(t *testing.T) {
	// a left-leaning chain: every inner node has an empty right slot
	var root Node = leaf("k", Plain)
	for range 10049 {
		root = &testNode{label: "k", class: Plain, children: []Node{root, nil}}
	}
	var buf bytes.Buffer
	Dot(root, &buf)
	decl := regexp.MustCompile(`(?m)^"(\d+)" \[`)
	seen := make(map[string]bool)
	for _, m := range decl.FindAllStringSubmatch(buf.String(), -1) {
		if seen[m[1]] {
			t.Fatalf("id %s declared twice", m[1])
		}
		seen[m[1]] = true
	}
	if len(seen) != 10050+10049 {
		t.Fatalf("expected 20099 declarations, have %d", len(seen))
	}
}
