package render

import (
	"bytes"
	"html/template"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

var checklistTemplate = template.Must(template.New("checklist").Parse(`<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Noto Sans TC", "Microsoft JhengHei", sans-serif; font-size: 11px; margin: 0; }
  h1 { font-size: 18px; margin: 0 0 4px; }
  .student { color: #555; margin-bottom: 8px; }
  .summary { border-collapse: collapse; margin-bottom: 12px; }
  .summary td { padding: 2px 12px 2px 0; }
  table.courses { border-collapse: collapse; width: 100%; }
  table.courses th, table.courses td { border: 1px solid #999; padding: 3px 4px; }
  table.courses th { background: #eee; }
  td.num { text-align: right; }
  .moved { color: #b94fff; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{with .StudentInfo}}<div class="student">{{.}}</div>{{end}}
<table class="summary">
{{range .Summary}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
<table class="courses">
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr{{if .Moved}} class="moved"{{end}}>{{range $i, $v := .Values}}<td{{if ge $i 7}} class="num"{{end}}>{{$v}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type htmlRow struct {
	Values []string
	Moved  bool
}

type htmlView struct {
	Title       string
	StudentInfo string
	Summary     []summaryLine
	Header      []string
	Rows        []htmlRow
}

// HTML renders the printable checklist page used for the PDF export.
func HTML(c *models.Checklist) ([]byte, error) {
	view := htmlView{
		Title:       title(c),
		StudentInfo: deref(c.Meta.StudentInfo),
		Summary:     summaryLines(c),
		Header:      courseHeader,
	}
	for _, row := range c.Data {
		view.Rows = append(view.Rows, htmlRow{
			Values: courseRecord(row),
			Moved:  row.DomainReassignedFrom != nil,
		})
	}

	var buf bytes.Buffer
	if err := checklistTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
