package parser

import (
	"strings"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// RowOptions configures row materialization.
type RowOptions struct {
	// KeyMap maps header labels to row keys. Defaults to DefaultHeaderKeyMap.
	KeyMap HeaderKeyMap
	// KeepCells keeps the positional cell texts and attempt colours.
	KeepCells bool
}

// MaterializeRows maps grid rows to typed records using the header labels.
// Columns whose label has no key are dropped. The course column is located by
// key and falls back to column 0.
func MaterializeRows(grid []GridRow, headers []string, opts RowOptions) []models.Row {
	keyMap := opts.KeyMap
	if keyMap == nil {
		keyMap = DefaultHeaderKeyMap()
	}
	keys := keyMap.Keys(headers)

	courseIdx := 0
	for i, k := range keys {
		if k != nil && *k == KeyCourseCell {
			courseIdx = i
			break
		}
	}

	rows := make([]models.Row, 0, len(grid))
	for _, g := range grid {
		rows = append(rows, materializeRow(g, keys, courseIdx, opts.KeepCells))
	}
	return rows
}

func materializeRow(g GridRow, keys []*string, courseIdx int, keepCells bool) models.Row {
	values := make(map[string]string, len(keys))
	for i, text := range g.Texts {
		if i >= len(keys) || keys[i] == nil {
			continue
		}
		values[*keys[i]] = text
	}

	row := models.Row{
		Category:             values[KeyCategory],
		Domain:               values[KeyDomain],
		ReqType:              values[KeyReqType],
		Group:                values[KeyGroup],
		OfferedBy:            values[KeyOfferedBy],
		RequiredCreditsGroup: parseNumber(values[KeyRequiredCreditsGroup]),
		EarnedCreditsGroup:   parseNumber(values[KeyEarnedCreditsGroup]),
		ItemsCountGroup:      parseNumber(values[KeyItemsCountGroup]),
		CompletedGroup:       hasCheckmark(values[KeyCompletedGroup]),
		CourseCredits:        parseNumber(values[KeyCourseCredits]),
		EarnedCreditsCourse:  parseNumber(values[KeyEarnedCreditsCourse]),
	}

	if courseIdx < len(g.Texts) {
		row.CourseRawText = g.Texts[courseIdx]
		row.CourseRawHTML = g.Markup[courseIdx]
	}

	row.Course = ParseCourseCell(row.CourseRawHTML)
	if blank(row.Course.Code) || blank(row.Course.Name) {
		if code, name, ok := fallbackIdentity(strings.TrimSpace(row.CourseRawText)); ok {
			if blank(row.Course.Code) {
				row.Course.Code = strPtr(code)
			}
			if blank(row.Course.Name) {
				row.Course.Name = strPtr(name)
			}
		}
	}

	if keepCells {
		row.Cells = append([]string(nil), g.Texts...)
	} else {
		for i := range row.Course.Attempts {
			row.Course.Attempts[i].Color = ""
		}
	}

	return row
}

// blank reports whether an identity field is missing or empty.
func blank(s *string) bool {
	return s == nil || *s == ""
}
