package pipeline

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parsedTable is the text content of a rendered table.
type parsedTable struct {
	Header []string
	Rows   [][]string
	Codes  int // <code> elements found inside cells
}

// parseTables parses markup with an HTML5 parser and returns every table in
// document order. It fails the test when a table strays from
// table > thead > tr > th and table > tbody > tr > td.
func parseTables(t *testing.T, markup string) []parsedTable {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}

	var tables []parsedTable
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if isElement(n, atom.Table) {
			tables = append(tables, readTable(t, n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return tables
}

func readTable(t *testing.T, table *html.Node) parsedTable {
	t.Helper()

	var pt parsedTable
	heads := 0
	for section := range elementChildren(table) {
		switch section.DataAtom {
		case atom.Thead:
			heads++
			trs := 0
			for tr := range elementChildren(section) {
				trs++
				pt.Header = readRow(t, tr, atom.Th, &pt.Codes)
			}
			if trs != 1 {
				t.Errorf("thead has %d rows, want 1", trs)
			}
		case atom.Tbody:
			for tr := range elementChildren(section) {
				pt.Rows = append(pt.Rows, readRow(t, tr, atom.Td, &pt.Codes))
			}
		default:
			t.Errorf("unexpected <%s> in <table>", section.Data)
		}
	}
	if heads != 1 {
		t.Errorf("table has %d thead sections, want 1", heads)
	}
	return pt
}

func readRow(t *testing.T, tr *html.Node, cellTag atom.Atom, codes *int) []string {
	t.Helper()

	if tr.DataAtom != atom.Tr {
		t.Errorf("unexpected <%s> where <tr> expected", tr.Data)
	}
	cells := []string{}
	for cell := range elementChildren(tr) {
		if cell.DataAtom != cellTag {
			t.Errorf("unexpected <%s> in row, want <%s>", cell.Data, cellTag)
		}
		*codes += countElements(cell, atom.Code)
		cells = append(cells, strings.TrimSpace(textContent(cell)))
	}
	return cells
}

// elementChildren yields the element children of n.
func elementChildren(n *html.Node) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && !yield(c) {
				return
			}
		}
	}
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func countElements(n *html.Node, a atom.Atom) int {
	count := 0
	if isElement(n, a) {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c, a)
	}
	return count
}
