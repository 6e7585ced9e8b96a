// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// ToJSON serializes a checklist. Non-ASCII text and markup are written
// unescaped so course names and raw cell HTML stay readable.
func ToJSON(c *models.Checklist, pretty bool) ([]byte, error) {
	return encode(c, pretty)
}

// RowsToJSON serializes only the row records.
func RowsToJSON(rows []models.Row, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []models.Row{}
	}
	return encode(rows, pretty)
}

func encode(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
