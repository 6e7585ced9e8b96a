// Package render produces report files (xlsx, docx, csv, html, pdf) from an
// extracted checklist.
package render

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/parser"
)

// Format is a report file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatDOCX Format = "docx"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// DefaultTitle heads reports of documents without a department title.
const DefaultTitle = "畢業學分自我檢核表"

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat converts a format name ("xlsx", ".pdf", "CSV") to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatXLSX, FormatDOCX, FormatCSV, FormatHTML, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Exporter renders checklists. The zero value renders every format with
// default PDF settings.
type Exporter struct {
	PDF PDFOptions
}

// Render produces the report file for format.
func (e Exporter) Render(ctx context.Context, format Format, c *models.Checklist) ([]byte, error) {
	if c == nil {
		return nil, errors.New("nothing to render")
	}
	switch format {
	case FormatXLSX:
		return XLSX(c)
	case FormatDOCX:
		return DOCX(c)
	case FormatCSV:
		return CSV(c)
	case FormatHTML:
		return HTML(c)
	case FormatPDF:
		return PDF(ctx, c, e.PDF)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// summaryLine is one label/value line of the report summary block.
type summaryLine struct {
	Label string
	Value string
}

// bucketLabels orders the rule-summary buckets shown in reports.
var bucketLabels = []struct {
	bucket string
	label  string
}{
	{"common", "全校共同"},
	{"general", "通識"},
	{"foundation", "基礎院本"},
	{"major", "系專業"},
	{"free", "自由選修"},
}

// summaryLines builds the summary block. Without a rule summary the header
// pairs scanned from the document are listed instead.
func summaryLines(c *models.Checklist) []summaryLine {
	rs := c.RuleSummary
	if rs == nil {
		lines := []summaryLine{}
		for _, label := range summaryOrder(c.Summary) {
			p := c.Summary.Totals[label]
			lines = append(lines, summaryLine{label, pair(float64(p.Earned), float64(p.Required))})
		}
		return lines
	}

	lines := []summaryLine{{"產製時間", rs.GeneratedAt}}
	for _, b := range bucketLabels {
		lines = append(lines, summaryLine{b.label, formatNumber(rs.ByBucket[b.bucket])})
	}
	if v := rs.ByBucket["other"]; v != 0 {
		lines = append(lines, summaryLine{"其他", formatNumber(v)})
	}
	lines = append(lines,
		summaryLine{"體育", pair(rs.PE.Earned, rs.PE.Required)},
		summaryLine{"服務學習", pair(float64(rs.Service.Count), float64(rs.Service.Required))},
		summaryLine{"畢業總學分", pair(rs.Graduation.Earned, rs.Graduation.Required)},
	)
	return lines
}

// summaryOrder lists the summary labels present, graduation total first.
func summaryOrder(s models.Summary) []string {
	var out []string
	for _, label := range append([]string{models.GraduationTotalKey}, parser.SummaryCategories...) {
		if _, ok := s.Totals[label]; ok {
			out = append(out, label)
		}
	}
	return out
}

// courseHeader is the column layout of the course listing.
var courseHeader = []string{"類別", "領域", "科目代碼", "科目名稱", "必/選", "群", "開課單位", "科目學分", "實得學分"}

// courseRecord flattens a row into the course listing columns.
func courseRecord(r models.Row) []string {
	return []string{
		r.Category,
		r.Domain,
		deref(r.Course.Code),
		deref(r.Course.Name),
		r.ReqType,
		r.Group,
		r.OfferedBy,
		optionalNumber(r.CourseCredits),
		optionalNumber(r.EarnedCreditsCourse),
	}
}

func title(c *models.Checklist) string {
	if c.Meta.Title != nil && *c.Meta.Title != "" {
		return *c.Meta.Title
	}
	return DefaultTitle
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pair(earned, required float64) string {
	return formatNumber(earned) + "/" + formatNumber(required)
}
