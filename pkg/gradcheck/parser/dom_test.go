package parser

import (
	"strings"
	"testing"
)

// mustParse parses a full document or fails the test.
func mustParse(t *testing.T, html string) Element {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	return doc
}

// mustTable returns the first table of html.
func mustTable(t *testing.T, html string) Element {
	t.Helper()
	tables := mustParse(t, html).Descendants("table")
	if len(tables) == 0 {
		t.Fatalf("no table in %q", html)
	}
	return tables[0]
}

// mustBody wraps rows in a table body and returns the tbody element.
func mustBody(t *testing.T, rows string) Element {
	t.Helper()
	bodies := mustParse(t, "<table><tbody>"+rows+"</tbody></table>").Descendants("tbody")
	if len(bodies) == 0 {
		t.Fatalf("no tbody for %q", rows)
	}
	return bodies[0]
}

func TestElementView(t *testing.T) {
	table := mustTable(t, `<table border="1" class="table"><tbody><tr><td> a <b>b</b> </td><th>c</th></tr></tbody></table>`)

	if table.Tag() != "table" {
		t.Errorf("Tag() = %q, expected table", table.Tag())
	}
	if v, ok := table.Attr("border"); !ok || v != "1" {
		t.Errorf("Attr(border) = %q, %v", v, ok)
	}
	if _, ok := table.Attr("id"); ok {
		t.Error("Attr(id) reported present")
	}

	rows := table.Descendants("tr")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	cells := childrenByTag(rows[0], "td", "th")
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if got := cells[0].Text(); got != " a b " {
		t.Errorf("Text() = %q", got)
	}
	if got := cells[0].InnerMarkup(); got != " a <b>b</b> " {
		t.Errorf("InnerMarkup() = %q", got)
	}
	if got := childrenByTag(rows[0], "th"); len(got) != 1 || got[0].Text() != "c" {
		t.Errorf("childrenByTag(th) = %v", got)
	}
}

func TestParseFragment(t *testing.T) {
	frag, err := ParseFragment(`<span>[IM101]程式設計</span><br><span style="color:#0000ff">(1121)[IM101]程式設計(3)</span>`)
	if err != nil {
		t.Fatalf("ParseFragment failed: %v", err)
	}

	if frag.Tag() != "div" {
		t.Errorf("Tag() = %q, expected div", frag.Tag())
	}
	spans := frag.Descendants("span")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if style, _ := spans[1].Attr("style"); style != "color:#0000ff" {
		t.Errorf("span style = %q", style)
	}
	if got := frag.Children(); len(got) != 3 {
		t.Errorf("expected 3 children, got %d", len(got))
	}
}
