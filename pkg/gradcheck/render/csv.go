package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// BOM is the UTF-8 byte order mark written ahead of CSV output so that
// spreadsheet applications detect the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes the course listing as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(courseHeader)
}

// WriteRows writes one record per row.
func (w *CSVWriter) WriteRows(rows []models.Row) error {
	for i := range rows {
		if err := w.csv.Write(courseRecord(rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from a previous Write or Flush.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// CSV renders the course listing with a leading BOM.
func CSV(c *models.Checklist) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)

	w := NewCSVWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, err
	}
	if err := w.WriteRows(c.Data); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	unsafeFilename  = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)
	multiUnderscore = regexp.MustCompile(`_{2,}`)
)

// Filename returns the download name for a report:
// {sanitized base}_{YYYY-MM-DD}{ext}. An empty base becomes "checklist".
func Filename(base string, format Format, now time.Time) string {
	s := unsafeFilename.ReplaceAllString(base, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if r := []rune(s); len(r) > 60 {
		s = string(r[:60])
	}
	if s == "" {
		s = "checklist"
	}
	return fmt.Sprintf("%s_%s%s", s, now.Format("2006-01-02"), format.Extension())
}
