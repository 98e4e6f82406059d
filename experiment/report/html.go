package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/ordtrees/experiment"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const pageStyle = `table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #999; padding: 2px 8px; text-align: right; }
th { background: #eee; }`

// WriteHTML writes a standalone HTML document to w, holding one table for
// the insertion costs and one for the removal costs of res.
func WriteHTML(w io.Writer, res *experiment.Results) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)
	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(withText(element(atom.Title), "Tree cost"))
	head.AppendChild(withText(element(atom.Style), pageStyle))
	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(withText(element(atom.H1), "Structural cost of ordered trees"))
	body.AppendChild(withText(element(atom.P), fmt.Sprintf(
		"Averaged over %d repetitions.", res.Repetitions)))
	for _, kind := range []experiment.Kind{experiment.Insertion, experiment.Removal} {
		body.AppendChild(withText(element(atom.H2), kindTitle(kind)))
		body.AppendChild(costTable(res, kind))
	}
	return html.Render(w, doc)
}

func kindTitle(kind experiment.Kind) string {
	if kind == experiment.Removal {
		return "Removal"
	}
	return "Insertion"
}

func costTable(res *experiment.Results, kind experiment.Kind) *html.Node {
	table := element(atom.Table)
	table.Attr = append(table.Attr, html.Attribute{Key: "class", Val: kind.String()})
	thead, tbody := element(atom.Thead), element(atom.Tbody)
	table.AppendChild(thead)
	table.AppendChild(tbody)
	tr := element(atom.Tr)
	thead.AppendChild(tr)
	tr.AppendChild(withText(element(atom.Th), "size"))
	for _, name := range res.Engines {
		tr.AppendChild(withText(element(atom.Th), name))
	}
	for i, size := range res.Sizes {
		tr := element(atom.Tr)
		tbody.AppendChild(tr)
		tr.AppendChild(withText(element(atom.Td), strconv.Itoa(size)))
		for _, name := range res.Engines {
			v := res.Series(kind, name)[i]
			tr.AppendChild(withText(element(atom.Td), strconv.FormatInt(v, 10)))
		}
	}
	return table
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// WriteHTMLFile writes the HTML report of res to path.
func WriteHTMLFile(path string, res *experiment.Results) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteHTML(w, res)
	})
}
