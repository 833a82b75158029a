package dom

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dshills/gridblock/internal/grid"
)

// ErrNoTable is returned by ParseTable when the document has no table.
var ErrNoTable = errors.New("no table element")

// Imported is a table read from HTML.
type Imported struct {
	Grid     *grid.Grid
	Headings bool
}

type parsedCell struct {
	pos        grid.Pos
	rows, cols int
	text       string
}

// ParseTable reads the first <table> of an HTML document or fragment.
// rowspan/colspan become merged blocks. Tables beyond the grid size limits
// fail with grid.ErrTooLarge. Cells hidden with display: none
// that carry data-row/data-col keep their content at that position, so
// markup produced by Build imports back losslessly.
func ParseTable(r io.Reader) (*Imported, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	tables := findAll(doc, atom.Table)
	if len(tables) == 0 {
		return nil, ErrNoTable
	}
	table := tables[0]

	var (
		visible  []parsedCell
		hidden   []parsedCell
		occupied = map[grid.Pos]bool{}
		rows     int
		cols     int
		headings = true
	)

	trs := rowsOf(table)
	for r, tr := range trs {
		c := 0
		for n := tr.FirstChild; n != nil; n = n.NextSibling {
			if n.Type != html.ElementNode || (n.DataAtom != atom.Td && n.DataAtom != atom.Th) {
				continue
			}
			if r == 0 && n.DataAtom != atom.Th {
				headings = false
			}
			if isHidden(n) {
				if p, ok := dataPos(n); ok {
					hidden = append(hidden, parsedCell{pos: p, text: textOf(n)})
				}
				continue
			}
			for occupied[grid.At(r, c)] {
				c++
			}
			pc := parsedCell{
				pos:  grid.At(r, c),
				rows: spanAttr(n, "rowspan", grid.MaxRows),
				cols: spanAttr(n, "colspan", grid.MaxCols),
				text: textOf(n),
			}
			if err := grid.CheckSize(max(rows, r+pc.rows), max(cols, c+pc.cols)); err != nil {
				return nil, fmt.Errorf("import table: %w", err)
			}
			grid.Rect{Row: r, Col: c, Rows: pc.rows, Cols: pc.cols}.Each(func(p grid.Pos) {
				occupied[p] = true
			})
			visible = append(visible, pc)
			rows = max(rows, r+pc.rows)
			cols = max(cols, c+pc.cols)
			c += pc.cols
		}
	}
	if len(trs) == 0 {
		headings = false
	}

	g := grid.NewSized(rows, cols)
	for _, pc := range visible {
		if err := g.SetContent(pc.pos, pc.text); err != nil {
			return nil, err
		}
		if pc.rows > 1 || pc.cols > 1 {
			if err := g.Merge(grid.Rect{Row: pc.pos.Row, Col: pc.pos.Col, Rows: pc.rows, Cols: pc.cols}); err != nil {
				return nil, fmt.Errorf("import table: %w", err)
			}
		}
	}
	for _, pc := range hidden {
		if c, ok := g.Cell(pc.pos); ok && c.Hidden {
			_ = g.SetContent(pc.pos, pc.text)
		}
	}
	return &Imported{Grid: g, Headings: headings}, nil
}

func rowsOf(table *html.Node) []*html.Node {
	var out []*html.Node
	for n := table.FirstChild; n != nil; n = n.NextSibling {
		switch n.DataAtom {
		case atom.Tr:
			out = append(out, n)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for tr := n.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.DataAtom == atom.Tr {
					out = append(out, tr)
				}
			}
		}
	}
	return out
}

func isHidden(n *html.Node) bool {
	style, _ := Attr(n, "style")
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	return strings.Contains(style, "display:none")
}

func dataPos(n *html.Node) (grid.Pos, bool) {
	rs, ok1 := Attr(n, "data-row")
	cs, ok2 := Attr(n, "data-col")
	if !ok1 || !ok2 {
		return grid.Pos{}, false
	}
	r, err1 := strconv.Atoi(rs)
	c, err2 := strconv.Atoi(cs)
	if err1 != nil || err2 != nil {
		return grid.Pos{}, false
	}
	return grid.At(r, c), true
}

// spanAttr reads a span attribute clamped to [1, limit] the way browsers
// clamp rowspan and colspan.
func spanAttr(n *html.Node, key string, limit int) int {
	v, ok := Attr(n, key)
	if !ok {
		return 1
	}
	span, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || span < 1 {
		return 1
	}
	return min(span, limit)
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
