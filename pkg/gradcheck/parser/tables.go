package parser

import (
	"strings"
)

// TableRule reports whether a table element is the checklist table.
type TableRule func(table Element) bool

// LocatorParams holds the ordered rules used to pick the checklist table.
// The first rule that matches any table wins; when none matches, the first
// table in document order is used.
type LocatorParams struct {
	Rules []TableRule
}

// DefaultLocatorParams returns the default table selection chain.
func DefaultLocatorParams() LocatorParams {
	return LocatorParams{
		Rules: []TableRule{
			IsStyledBorderedTable,
			HasBorder,
		},
	}
}

// IsStyledBorderedTable matches <table class="table table-responsive" border="1">.
func IsStyledBorderedTable(table Element) bool {
	border, ok := table.Attr("border")
	if !ok || border != "1" {
		return false
	}
	class, _ := table.Attr("class")
	return hasClasses(class, "table", "table-responsive")
}

// HasBorder matches any table declaring a border attribute.
func HasBorder(table Element) bool {
	_, ok := table.Attr("border")
	return ok
}

// LocateTable selects the checklist table out of a parsed document.
// It returns false when the document holds no table element at all.
func LocateTable(doc Element, params LocatorParams) (Element, bool) {
	tables := doc.Descendants("table")
	if len(tables) == 0 {
		return nil, false
	}

	for _, rule := range params.Rules {
		for _, table := range tables {
			if rule(table) {
				return table, true
			}
		}
	}

	return tables[0], true
}

// hasClasses reports whether every wanted class appears in the class attribute.
func hasClasses(attr string, wanted ...string) bool {
	present := make(map[string]bool)
	for _, c := range strings.Fields(attr) {
		present[c] = true
	}
	for _, w := range wanted {
		if !present[w] {
			return false
		}
	}
	return true
}
