// Package models defines data structures for degree-checklist extraction.
package models

// Checklist is the top-level result of parsing one checklist document.
type Checklist struct {
	// Meta holds document-level labels found in the table header.
	Meta Meta `json:"meta"`
	// Columns lists the resolved header labels with their stable keys.
	Columns []Column `json:"columns"`
	// Count is the number of materialized rows.
	Count int `json:"count"`
	// Data contains one record per logical table row, in source order.
	Data []Row `json:"data"`
	// Summary holds the earned/required pairs scanned from the header text.
	Summary Summary `json:"summary"`
	// SubdomainReassignment reports the credit reclassification pass (nil in light mode).
	SubdomainReassignment *Reassignment `json:"subdomainReassignment,omitempty"`
	// RuleSummary holds bucket totals computed from the rules config (nil without rules).
	RuleSummary *RuleSummary `json:"ruleSummary,omitempty"`
}

// Meta holds the department title and the student banner text.
type Meta struct {
	Title       *string `json:"title"`
	StudentInfo *string `json:"studentInfo"`
}

// Column describes one header column. Key is nil for labels with no mapping.
type Column struct {
	Title string  `json:"title"`
	Key   *string `json:"key"`
}
