package parser

import (
	"strconv"
	"strings"
)

// GridRow is one logical row of a normalized table body.
// Texts and Markup always have exactly the logical column count.
type GridRow struct {
	Texts  []string
	Markup []string
}

// spanCarry is a rowspan value still owed to the rows below.
type spanCarry struct {
	text      string
	markup    string
	remaining int
}

// NormalizeGrid expands the rows of body into a dense grid of the given width.
//
// Values of cells declaring rowspan are carried down into the same column of
// the following rows; cells declaring colspan reserve the following columns
// with empty placeholders. Carries are applied before the row's own cells are
// placed, and placement skips every column already occupied, so a colspan
// never overwrites a column reserved from above.
func NormalizeGrid(body Element, columns int) []GridRow {
	rows, _ := normalizeGrid(body, columns)
	return rows
}

// normalizeGrid also returns how many times each cell was written.
func normalizeGrid(body Element, columns int) ([]GridRow, [][]int) {
	var rows []GridRow
	var writes [][]int
	carries := make([]*spanCarry, columns)

	for _, tr := range childrenByTag(body, "tr") {
		row := GridRow{
			Texts:  make([]string, columns),
			Markup: make([]string, columns),
		}
		occupied := make([]bool, columns)
		written := make([]int, columns)

		put := func(col int, text, markup string) {
			row.Texts[col] = text
			row.Markup[col] = markup
			occupied[col] = true
			written[col]++
		}

		// Carried values occupy their column even when empty.
		for col, carry := range carries {
			if carry == nil || carry.remaining <= 0 {
				continue
			}
			put(col, carry.text, carry.markup)
			carry.remaining--
			if carry.remaining == 0 {
				carries[col] = nil
			}
		}

		cursor := 0
		for _, td := range childrenByTag(tr, "td", "th") {
			for cursor < columns && occupied[cursor] {
				cursor++
			}
			if cursor >= columns {
				break
			}

			text := CollapseText(td.Text())
			markup := td.InnerMarkup()
			put(cursor, text, markup)

			if rs := spanAttr(td, "rowspan"); rs > 1 {
				carries[cursor] = &spanCarry{text: text, markup: markup, remaining: rs - 1}
			}

			for k := 1; k < spanAttr(td, "colspan"); k++ {
				for cursor+1 < columns && occupied[cursor+1] {
					cursor++
				}
				if cursor+1 < columns {
					put(cursor+1, "", "")
				}
				cursor++
			}

			cursor++
		}

		rows = append(rows, row)
		writes = append(writes, written)
	}

	return rows, writes
}

// spanAttr reads a rowspan/colspan attribute, defaulting to 1.
func spanAttr(td Element, name string) int {
	v, ok := td.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(leadingDigits(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// leadingDigits returns the leading run of digits of s after leading spaces.
func leadingDigits(s string) string {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
