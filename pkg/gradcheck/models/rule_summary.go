package models

// Requirement is a credit requirement check.
type Requirement struct {
	Earned   float64 `json:"earned"`
	Required float64 `json:"required"`
	Passed   bool    `json:"passed"`
}

// CountRequirement is a requirement counted in occurrences rather than credits.
type CountRequirement struct {
	Count    int  `json:"count"`
	Required int  `json:"required"`
	Passed   bool `json:"passed"`
}

// RuleSummary aggregates row credits into configured buckets.
type RuleSummary struct {
	GeneratedAt string `json:"generatedAt"`
	// ByBucket maps bucket id (common, general, foundation, major, free, other) to credits.
	ByBucket map[string]float64 `json:"byBucket"`
	PE       Requirement        `json:"pe"`
	Service  CountRequirement   `json:"service"`

	RequiredMin        float64 `json:"requiredMin"`
	ElectiveMin        float64 `json:"electiveMin"`
	GeneralMin         float64 `json:"generalMin"`
	GraduationTotalMin float64 `json:"graduationTotalMin"`

	Graduation Requirement `json:"graduation"`
}
