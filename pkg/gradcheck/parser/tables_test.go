package parser

import (
	"testing"
)

func TestLocateTable(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name: "styled bordered table wins",
			html: `<table id="a"></table>
<table border="1" id="b"></table>
<table class="table table-responsive" border="1" id="c"></table>`,
			expected: "c",
		},
		{
			name: "class order does not matter",
			html: `<table border="1" id="a"></table>
<table class="table-responsive extra table" border="1" id="b"></table>`,
			expected: "b",
		},
		{
			name: "styled table needs border 1",
			html: `<table class="table table-responsive" border="2" id="a"></table>
<table class="table table-responsive" border="1" id="b"></table>`,
			expected: "b",
		},
		{
			name:     "any border attribute",
			html:     `<table id="a"></table><table border="0" id="b"></table>`,
			expected: "b",
		},
		{
			name:     "first table fallback",
			html:     `<div><table id="a"></table></div><table id="b"></table>`,
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := LocateTable(mustParse(t, tt.html), DefaultLocatorParams())
			if !ok {
				t.Fatal("LocateTable found nothing")
			}
			if id, _ := table.Attr("id"); id != tt.expected {
				t.Errorf("LocateTable picked %q, expected %q", id, tt.expected)
			}
		})
	}
}

func TestLocateTableNoTable(t *testing.T) {
	if _, ok := LocateTable(mustParse(t, `<p>no tables here</p>`), DefaultLocatorParams()); ok {
		t.Error("LocateTable reported a table in a document without one")
	}
}

func TestLocateTableCustomRules(t *testing.T) {
	params := LocatorParams{Rules: []TableRule{
		func(table Element) bool {
			id, _ := table.Attr("id")
			return id == "wanted"
		},
	}}
	doc := mustParse(t, `<table border="1" id="a"></table><table id="wanted"></table>`)

	table, ok := LocateTable(doc, params)
	if !ok {
		t.Fatal("LocateTable found nothing")
	}
	if id, _ := table.Attr("id"); id != "wanted" {
		t.Errorf("LocateTable picked %q, expected wanted", id)
	}
}
