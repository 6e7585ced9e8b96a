package models

// SubdomainTotals holds the earned credit totals of the two competing sub-domains.
type SubdomainTotals struct {
	SubA float64 `json:"subA"`
	SubB float64 `json:"subB"`
}

// Reassignment reports the outcome of one credit reclassification pass.
type Reassignment struct {
	Enabled  bool   `json:"enabled"`
	Category string `json:"category,omitempty"`
	// Chosen is the sub-domain that keeps credits up to the threshold, nil when
	// neither total reached it.
	Chosen       *string         `json:"chosen"`
	Threshold    float64         `json:"threshold"`
	Totals       SubdomainTotals `json:"totals"`
	MovedCount   int             `json:"movedCount"`
	MovedCredits float64         `json:"movedCredits"`
	// Target is the overflow domain moved rows are relabelled to.
	Target string `json:"target,omitempty"`
	// Error is set when the pass could not run; the rows are then untouched.
	Error string `json:"error,omitempty"`
}
