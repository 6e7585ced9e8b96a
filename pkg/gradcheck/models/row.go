package models

// Row is one materialized checklist row.
type Row struct {
	Category  string `json:"category"`
	Domain    string `json:"domain"`
	ReqType   string `json:"req_type"`
	Group     string `json:"group"`
	OfferedBy string `json:"offered_by"`

	RequiredCreditsGroup *float64 `json:"required_credits_group"`
	EarnedCreditsGroup   *float64 `json:"earned_credits_group"`
	ItemsCountGroup      *float64 `json:"items_count_group"`
	// CompletedGroup is true when the source cell carries a checkmark.
	CompletedGroup      bool     `json:"completed_group"`
	CourseCredits       *float64 `json:"course_credits"`
	EarnedCreditsCourse *float64 `json:"earned_credits_course"`

	// CourseRawText is the collapsed text of the course cell.
	CourseRawText string `json:"course_raw_text"`
	// CourseRawHTML is the inner markup of the course cell.
	CourseRawHTML string `json:"course_raw_html"`
	Course        Course `json:"course"`

	// DomainReassignedFrom is set when the reclassifier moved this row out of its domain.
	DomainReassignedFrom *string `json:"domainReassignedFrom,omitempty"`
	// Cells holds every positional cell text of the row (verbose mode only).
	Cells []string `json:"cells,omitempty"`
}

// EarnedCredits returns the earned course credits, or 0 when unknown.
func (r *Row) EarnedCredits() float64 {
	if r.EarnedCreditsCourse == nil {
		return 0
	}
	return *r.EarnedCreditsCourse
}
