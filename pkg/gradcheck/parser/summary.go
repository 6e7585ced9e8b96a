package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// SummaryCategories are the category labels scanned for earned/required pairs.
var SummaryCategories = []string{
	"全校共同課程",
	"通識領域課程",
	"基礎院本課程",
	"學系專業課程",
	"自由選修",
}

// Markers of the free-text notices captured verbatim.
const (
	GraduationTotalLabel = "畢業總學分數"
	LectureNoteMarker    = "講座"
	EnglishNoteMarker    = "英文能力"
	StudentInfoMarker    = "學號"
)

// pairPattern matches the first "earned / required" pair of a string.
var pairPattern = regexp.MustCompile(`^.*?(\d+)\s*/\s*(\d+)`)

// ExtractSummary scans the header blocks of table for credit aggregates and
// the table cells for the two notices. Everything is best-effort: missing
// values are simply absent from the result.
func ExtractSummary(table Element) models.Summary {
	summary := models.NewSummary()

	for _, thead := range table.Descendants("thead") {
		text := CollapseText(thead.Text())
		if pair, ok := earnedRequiredAfter(text, GraduationTotalLabel); ok {
			summary.Totals[models.GraduationTotalKey] = pair
		}
		for _, category := range SummaryCategories {
			if pair, ok := earnedRequiredAfter(text, category); ok {
				summary.Totals[category] = pair
			}
		}
	}

	for _, cell := range table.Descendants("td, th") {
		text := strings.TrimSpace(cell.Text())
		if summary.LectureNote == nil && strings.Contains(text, LectureNoteMarker) {
			summary.LectureNote = strPtr(text)
		}
		if summary.EnglishNote == nil && strings.Contains(text, EnglishNoteMarker) {
			summary.EnglishNote = strPtr(text)
		}
	}

	return summary
}

// earnedRequiredAfter finds label in text and returns the first
// "earned / required" pair that follows it.
func earnedRequiredAfter(text, label string) (models.CreditPair, bool) {
	idx := strings.Index(text, label)
	if idx < 0 {
		return models.CreditPair{}, false
	}
	m := pairPattern.FindStringSubmatch(text[idx+len(label):])
	if m == nil {
		return models.CreditPair{}, false
	}
	earned, err1 := strconv.Atoi(m[1])
	required, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return models.CreditPair{}, false
	}
	return models.CreditPair{Earned: earned, Required: required}, true
}

// ExtractMeta reads the department title (first h3 of the header) and the
// student banner (first header cell mentioning the student number).
func ExtractMeta(table Element) models.Meta {
	var meta models.Meta

	if h3 := table.Descendants("thead h3"); len(h3) > 0 {
		if title := strings.TrimSpace(h3[0].Text()); title != "" {
			meta.Title = &title
		}
	}

	for _, cell := range table.Descendants("thead th, thead td") {
		if text := CollapseText(cell.Text()); strings.Contains(text, StudentInfoMarker) {
			meta.StudentInfo = &text
			break
		}
	}

	return meta
}
