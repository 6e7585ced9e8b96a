package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

func TestToJSON(t *testing.T) {
	name := "網頁<程式>設計"
	c := &models.Checklist{
		Columns: []models.Column{},
		Data: []models.Row{{
			Category:      "學系專業課程",
			CourseRawHTML: `<span>[IM202]網頁&lt;程式&gt;設計</span>`,
			Course:        models.Course{Name: &name, Attempts: []models.Attempt{}},
		}},
		Count:   1,
		Summary: models.NewSummary(),
	}

	data, err := ToJSON(c, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"course_raw_html":"<span>[IM202]網頁&lt;程式&gt;設計</span>"`) {
		t.Errorf("markup should be written unescaped: %s", out)
	}
	if !strings.Contains(out, `"category":"學系專業課程"`) {
		t.Errorf("category missing: %s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("output should not end with a newline")
	}
	if strings.Contains(out, "subdomainReassignment") || strings.Contains(out, "ruleSummary") {
		t.Errorf("empty optional blocks should be omitted: %s", out)
	}

	var back models.Checklist
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if back.Count != 1 || *back.Data[0].Course.Name != name {
		t.Errorf("unexpected decoded result: %+v", back)
	}
}

func TestToJSONPretty(t *testing.T) {
	c := &models.Checklist{Columns: []models.Column{}, Data: []models.Row{}, Summary: models.NewSummary()}

	data, err := ToJSON(c, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"columns\": []") {
		t.Errorf("expected two-space indentation, got:\n%s", data)
	}
}

func TestRowsToJSON(t *testing.T) {
	data, err := RowsToJSON(nil, false)
	if err != nil {
		t.Fatalf("RowsToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("RowsToJSON(nil) = %s, want []", data)
	}
}
