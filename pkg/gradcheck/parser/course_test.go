package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

func TestParseCourseCell(t *testing.T) {
	markup := `<span>[IM101]程式設計</span><br>` +
		`<span style="color:#0000FF">(1121)[IM101]程式設計(3)</span>` +
		`<span style="font-weight:bold; color: #b94fff;">(1122)[IM102]資料結構(3.0)</span>` +
		`<span style="color:red">(1111)[IM103]統計學(2)</span>` +
		`<span style="color:#0000ff"> 抵免 </span>`

	expected := models.Course{
		Code: str("IM101"),
		Name: str("程式設計"),
		Attempts: []models.Attempt{
			{
				Term: str("1121"), Code: str("IM101"), Name: str("程式設計"), Credits: f64(3),
				Status: models.AttemptTaken, Raw: "(1121)[IM101]程式設計(3)", Color: "#0000ff",
			},
			{
				Term: str("1122"), Code: str("IM102"), Name: str("資料結構"), Credits: f64(3),
				Status: models.AttemptEnrolled, Raw: "(1122)[IM102]資料結構(3.0)", Color: "#b94fff",
			},
			{
				Term: str("1111"), Code: str("IM103"), Name: str("統計學"), Credits: f64(2),
				Status: models.AttemptOther, Raw: "(1111)[IM103]統計學(2)", Color: "red",
			},
			{
				Status: models.AttemptOther, Raw: "抵免", Color: "#0000ff",
			},
		},
	}

	if diff := cmp.Diff(expected, ParseCourseCell(markup)); diff != "" {
		t.Errorf("ParseCourseCell mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCourseCellWithoutIdentity(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"empty", ""},
		{"whitespace", "  \n "},
		{"no spans", "[IM101]程式設計"},
		{"unmatched first span", "<span>程式設計</span>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := ParseCourseCell(tt.markup)
			if course.Code != nil || course.Name != nil {
				t.Errorf("expected no identity, got %v / %v", course.Code, course.Name)
			}
			if course.Attempts == nil || len(course.Attempts) != 0 {
				t.Errorf("expected empty non-nil attempts, got %#v", course.Attempts)
			}
		})
	}
}

func TestStatusTagging(t *testing.T) {
	tests := []struct {
		style    string
		expected models.AttemptStatus
	}{
		{"color:#0000ff", models.AttemptTaken},
		{"COLOR: #0000FF", models.AttemptTaken},
		{"color:#b94fff", models.AttemptEnrolled},
		{"background-color:#b94fff", models.AttemptOther},
		{"color:#000000", models.AttemptOther},
		{"", models.AttemptOther},
	}

	for _, tt := range tests {
		attempt := parseAttempt("(1101)[GE001]國文(2)", inlineColor(tt.style))
		if attempt.Status != tt.expected {
			t.Errorf("style %q: status = %q, expected %q", tt.style, attempt.Status, tt.expected)
		}
		if attempt.Term == nil || *attempt.Term != "1101" {
			t.Errorf("style %q: term = %v", tt.style, attempt.Term)
		}
	}
}

func TestParseAttemptUnmatched(t *testing.T) {
	for _, text := range []string{"(11)[GE001]國文(2)", "[GE001]國文(2)", "(1103)[GE001]國文(2)", "停修"} {
		attempt := parseAttempt(text, ColorTaken)
		if attempt.Term != nil || attempt.Code != nil || attempt.Name != nil || attempt.Credits != nil {
			t.Errorf("parseAttempt(%q) filled structured fields: %+v", text, attempt)
		}
		if attempt.Status != models.AttemptOther {
			t.Errorf("parseAttempt(%q) status = %q, expected other", text, attempt.Status)
		}
		if attempt.Raw != text {
			t.Errorf("parseAttempt(%q) raw = %q", text, attempt.Raw)
		}
	}
}

func TestFallbackIdentity(t *testing.T) {
	tests := []struct {
		text     string
		code     string
		name     string
		expected bool
	}{
		{"[IM101]程式設計(3)", "IM101", "程式設計", true},
		{"[IM101] 程式設計 ( 3 )", "IM101", "程式設計", true},
		{"[IM101]程式設計 (1121)[IM101]程式設計(3)", "IM101", "程式設計", true},
		{"[IM101]程式設計(必修)", "IM101", "程式設計(必修)", true},
		{"[A]B(1)", "A", "B", true},
		{"[IM101]   ", "IM101", "", true},
		{"[IM101]", "", "", false},
		{"[]x", "", "", false},
		{"no bracket", "", "", false},
	}

	for _, tt := range tests {
		code, name, ok := fallbackIdentity(tt.text)
		if ok != tt.expected || code != tt.code || name != tt.name {
			t.Errorf("fallbackIdentity(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tt.text, code, name, ok, tt.code, tt.name, tt.expected)
		}
	}
}

func TestInlineColor(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{"color:#0000FF", "#0000ff"},
		{"font-size:12px; color : #B94FFF ;", "#b94fff"},
		{"background-color:#0000ff", ""},
		{"", ""},
		{"color", ""},
	}

	for _, tt := range tests {
		if got := inlineColor(tt.style); got != tt.expected {
			t.Errorf("inlineColor(%q) = %q, expected %q", tt.style, got, tt.expected)
		}
	}
}

func str(s string) *string {
	return &s
}
