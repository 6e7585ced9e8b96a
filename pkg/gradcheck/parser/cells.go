package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// nonNumeric matches every character that cannot be part of a number.
	nonNumeric = regexp.MustCompile(`[^\d.\-]`)
	// leadingNumber matches the longest decimal prefix of a cleaned value.
	leadingNumber = regexp.MustCompile(`^-?(?:\d+(?:\.\d*)?|\.\d+)`)
	// checkmark matches the glyphs used in the completed column.
	checkmark = regexp.MustCompile(`✔|✓`)
)

// CollapseText replaces whitespace runs with a single space and trims.
func CollapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseNumber coerces a cell value to a number.
// Characters other than digits, '.' and '-' are dropped first, so values
// like "<span>3</span>" or "3 學分" still parse. Returns nil when no finite
// number remains.
func parseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	cleaned := nonNumeric.ReplaceAllString(s, "")
	m := leadingNumber.FindString(cleaned)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// hasCheckmark reports whether a completed-column cell is ticked.
func hasCheckmark(s string) bool {
	return checkmark.MatchString(s)
}
