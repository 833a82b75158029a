// Package dom projects a table grid onto an HTML element tree and imports
// HTML tables back into a grid.
//
// The projection mirrors the markup a browser-hosted table block renders:
//
//	<div class="tc-wrap">
//	  <table class="tc-table">
//	    <tbody>
//	      <tr class="tc-row">
//	        <td class="tc-cell" contenteditable="true" data-row="0" data-col="0">…</td>
//
// Covered cells stay in the markup with display: none so row and column
// indices of the DOM match the grid.
package dom

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dshills/gridblock/internal/grid"
	"github.com/dshills/gridblock/internal/selection"
)

// Class names used in the projection.
const (
	ClassWrap      = "tc-wrap"
	ClassTable     = "tc-table"
	ClassRow       = "tc-row"
	ClassCell      = "tc-cell"
	ClassSelected  = "tc-cell--selected"
	ClassHighlight = "tc-cell--highlight"
	ClassMerged    = "tc-cell--merged"

	hiddenStyle = "display: none"
)

// Options controls the projection.
type Options struct {
	// Headings renders the first row as header cells.
	Headings bool

	// ReadOnly drops contenteditable from cells.
	ReadOnly bool
}

// Build renders g with the selection state s. It returns the root wrapper
// element the host mounts and the table element inside it.
func Build(g *grid.Grid, s selection.State, opts Options) (root, table *html.Node) {
	root = element(atom.Div, attr("class", ClassWrap))
	table = element(atom.Table, attr("class", ClassTable))
	root.AppendChild(table)

	tbody := element(atom.Tbody)
	table.AppendChild(tbody)

	selected, hasSelected := s.Selected()
	for r := 0; r < g.Rows(); r++ {
		tr := element(atom.Tr, attr("class", ClassRow))
		tbody.AppendChild(tr)

		tag := atom.Td
		if opts.Headings && r == 0 {
			tag = atom.Th
		}
		for c := 0; c < g.Cols(); c++ {
			p := grid.At(r, c)
			cell, _ := g.Cell(p)
			tr.AppendChild(cellNode(tag, p, cell, classes(cell, hasSelected && p == selected, s.Highlighted(p)), opts))
		}
	}
	return root, table
}

func cellNode(tag atom.Atom, p grid.Pos, cell grid.Cell, class string, opts Options) *html.Node {
	n := element(tag,
		attr("class", class),
		attr("data-row", strconv.Itoa(p.Row)),
		attr("data-col", strconv.Itoa(p.Col)),
	)
	if !opts.ReadOnly {
		n.Attr = append(n.Attr, attr("contenteditable", "true"))
	}
	if cell.IsAnchor() {
		n.Attr = append(n.Attr,
			attr("rowspan", strconv.Itoa(cell.RowSpan)),
			attr("colspan", strconv.Itoa(cell.ColSpan)),
			attr("data-merged", "true"),
		)
	}
	if !cell.Visible() {
		n.Attr = append(n.Attr, attr("style", hiddenStyle))
	}
	if cell.Content != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Content})
	}
	return n
}

func classes(cell grid.Cell, selected, highlighted bool) string {
	parts := []string{ClassCell}
	if cell.IsAnchor() {
		parts = append(parts, ClassMerged)
	}
	if selected {
		parts = append(parts, ClassSelected)
	}
	if highlighted {
		parts = append(parts, ClassHighlight)
	}
	return strings.Join(parts, " ")
}

// Render writes the HTML of n to w.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// String returns the HTML of n.
func String(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries class c.
func HasClass(n *html.Node, c string) bool {
	v, _ := Attr(n, "class")
	for _, f := range strings.Fields(v) {
		if f == c {
			return true
		}
	}
	return false
}

// Cells returns the td/th elements of a table built by Build in row-major
// order, hidden ones included.
func Cells(table *html.Node) [][]*html.Node {
	var rows [][]*html.Node
	for _, tr := range findAll(table, atom.Tr) {
		var row []*html.Node
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.Td || c.DataAtom == atom.Th {
				row = append(row, c)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
