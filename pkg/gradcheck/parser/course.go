package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// Inline colours marking attempt status in the course column.
const (
	ColorTaken    = "#0000ff"
	ColorEnrolled = "#b94fff"
)

var (
	// baseIdentityPattern matches "[code]name".
	baseIdentityPattern = regexp.MustCompile(`\[(.+?)\](.+)`)
	// attemptPattern matches "(term)[code]name(credits)", term being a
	// 3-4 digit academic year followed by the semester digit.
	attemptPattern = regexp.MustCompile(`\((\d{3,4}[12])\)\[(.+?)\](.+?)\(([\d.]+)\)`)
	// bracketCode matches the first non-empty bracketed token.
	bracketCode = regexp.MustCompile(`\[([^\]]+)\]`)
	// nameStop matches where a fallback course name ends: "(" then a digit.
	nameStop = regexp.MustCompile(`\s*\(\s*\d`)
)

// ParseCourseCell decomposes the inner markup of a course cell.
//
// The first span holds the course the row targets ("[code]name"). Every
// later span is one historical attempt; spans that do not match the attempt
// grammar are kept with only their raw text and status other.
func ParseCourseCell(markup string) models.Course {
	course := models.NewCourse()
	if strings.TrimSpace(markup) == "" {
		return course
	}

	frag, err := ParseFragment(markup)
	if err != nil {
		return course
	}

	spans := frag.Descendants("span")
	if len(spans) == 0 {
		return course
	}

	course.Code, course.Name = parseBaseIdentity(strings.TrimSpace(spans[0].Text()))

	for _, span := range spans[1:] {
		style, _ := span.Attr("style")
		course.Attempts = append(course.Attempts, parseAttempt(strings.TrimSpace(span.Text()), inlineColor(style)))
	}

	return course
}

// parseBaseIdentity extracts code and name from "[code]name".
func parseBaseIdentity(text string) (code, name *string) {
	m := baseIdentityPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	return strPtr(strings.TrimSpace(m[1])), strPtr(strings.TrimSpace(m[2]))
}

// parseAttempt builds one attempt record from a span's text and colour.
func parseAttempt(text, color string) models.Attempt {
	m := attemptPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Attempt{Status: models.AttemptOther, Raw: text, Color: color}
	}

	attempt := models.Attempt{
		Term:   strPtr(m[1]),
		Code:   strPtr(strings.TrimSpace(m[2])),
		Name:   strPtr(strings.TrimSpace(m[3])),
		Status: statusForColor(color),
		Raw:    text,
		Color:  color,
	}
	if credits, err := strconv.ParseFloat(m[4], 64); err == nil {
		attempt.Credits = &credits
	}
	return attempt
}

// statusForColor maps a span colour to an attempt status.
func statusForColor(color string) models.AttemptStatus {
	switch {
	case strings.Contains(color, ColorEnrolled):
		return models.AttemptEnrolled
	case strings.Contains(color, ColorTaken):
		return models.AttemptTaken
	default:
		return models.AttemptOther
	}
}

// inlineColor returns the lower-cased value of the color declaration of an
// inline style attribute, or "" when there is none.
func inlineColor(style string) string {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "color") {
			return strings.ToLower(strings.TrimSpace(value))
		}
	}
	return ""
}

// fallbackIdentity derives code and name from the plain cell text.
// The code is the first bracketed token; the name runs from the bracket up to
// the next "(" followed by a digit, or to the end of the text.
func fallbackIdentity(text string) (code, name string, ok bool) {
	loc := bracketCode.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", "", false
	}
	rest := text[loc[1]:]
	if rest == "" {
		return "", "", false
	}

	code = strings.TrimSpace(text[loc[2]:loc[3]])

	trimmed := strings.TrimLeft(rest, " \t\n\r\f\v")
	if trimmed == "" {
		return code, "", true
	}
	// The name takes at least one character before a stop can match.
	_, size := utf8.DecodeRuneInString(trimmed)
	if stop := nameStop.FindStringIndex(trimmed[size:]); stop != nil {
		return code, strings.TrimSpace(trimmed[:size+stop[0]]), true
	}
	return code, strings.TrimSpace(trimmed), true
}

func strPtr(s string) *string {
	return &s
}
