package models

// AttemptStatus classifies a historical course attempt by its marker colour.
type AttemptStatus string

const (
	// AttemptTaken marks a completed enrollment (blue marker).
	AttemptTaken AttemptStatus = "taken"
	// AttemptEnrolled marks an enrollment in progress (purple marker).
	AttemptEnrolled AttemptStatus = "enrolled"
	// AttemptOther covers any other colour and unparseable spans.
	AttemptOther AttemptStatus = "other"
)

// Course is the identity of the course a row targets plus its attempt history.
type Course struct {
	// Code is the bracketed course code, nil when not found.
	Code *string `json:"code"`
	// Name is the course name following the code, nil when not found.
	Name *string `json:"name"`
	// Attempts lists historical attempts in markup order.
	Attempts []Attempt `json:"attempts"`
}

// NewCourse returns a Course with no identity and an empty attempt list.
func NewCourse() Course {
	return Course{Attempts: []Attempt{}}
}

// Attempt is one historical enrollment of a course.
type Attempt struct {
	// Term is the academic year plus semester digit, e.g. "1121".
	Term    *string       `json:"term"`
	Code    *string       `json:"code"`
	Name    *string       `json:"name"`
	Credits *float64      `json:"credits"`
	Status  AttemptStatus `json:"status"`
	// Raw is the trimmed span text, always populated.
	Raw string `json:"raw"`
	// Color is the inline colour of the span (verbose mode only).
	Color string `json:"color,omitempty"`
}
