package parser

import (
	"strings"
)

// Stable row keys produced by the default header mapping.
const (
	KeyCategory             = "category"
	KeyDomain               = "domain"
	KeyCourseCell           = "course_cell"
	KeyReqType              = "req_type"
	KeyGroup                = "group"
	KeyOfferedBy            = "offered_by"
	KeyRequiredCreditsGroup = "required_credits_group"
	KeyEarnedCreditsGroup   = "earned_credits_group"
	KeyItemsCountGroup      = "items_count_group"
	KeyCompletedGroup       = "completed_group"
	KeyCourseCredits        = "course_credits"
	KeyEarnedCreditsCourse  = "earned_credits_course"
)

// DefaultColumnCount is the logical width used when no header row is found.
const DefaultColumnCount = 13

// HeaderKeyMap maps a collapsed header label to a stable row key.
type HeaderKeyMap map[string]string

// DefaultHeaderKeyMap returns the mapping for the standard checklist header.
// Category and course-name labels are accepted in both traditional and
// simplified spelling. The trailing blank column carries no label and is ignored.
func DefaultHeaderKeyMap() HeaderKeyMap {
	return HeaderKeyMap{
		"類別":   KeyCategory,
		"类别":   KeyCategory,
		"領域":   KeyDomain,
		"科目名稱": KeyCourseCell,
		"科目名称": KeyCourseCell,
		"必選修":  KeyReqType,
		"科目群":  KeyGroup,
		"開課單位": KeyOfferedBy,
		"須修學分": KeyRequiredCreditsGroup,
		"實修學分": KeyEarnedCreditsGroup,
		"實修項目": KeyItemsCountGroup,
		"已修畢":  KeyCompletedGroup,
		"科目學分": KeyCourseCredits,
		"實得學分": KeyEarnedCreditsCourse,
	}
}

// Keys returns the key for each label, nil where the label has no mapping.
func (m HeaderKeyMap) Keys(labels []string) []*string {
	keys := make([]*string, len(labels))
	for i, label := range labels {
		if key, ok := m[label]; ok {
			k := key
			keys[i] = &k
		}
	}
	return keys
}

// CollapseLabel removes every whitespace character from a header label.
func CollapseLabel(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ResolveHeader returns the labels of the canonical header row of table.
//
// A header row qualifies when its th cells include both a label mapped to the
// category key and one mapped to the course key. When several rows qualify
// the last one wins. An empty slice means no row qualified.
func ResolveHeader(table Element, keys HeaderKeyMap) []string {
	headers := []string{}
	for _, thead := range table.Descendants("thead") {
		for _, tr := range thead.Descendants("tr") {
			ths := childrenByTag(tr, "th")
			if len(ths) == 0 {
				continue
			}

			labels := make([]string, len(ths))
			hasCategory, hasCourse := false, false
			for i, th := range ths {
				labels[i] = CollapseLabel(th.Text())
				switch keys[labels[i]] {
				case KeyCategory:
					hasCategory = true
				case KeyCourseCell:
					hasCourse = true
				}
			}
			if hasCategory && hasCourse {
				headers = labels
			}
		}
	}
	return headers
}
