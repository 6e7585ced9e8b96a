package render

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	data, err := XLSX(testChecklist())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, CoursesSheet}, f.GetSheetList())

	heading, err := f.GetCellValue(SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "資訊管理學系", heading)

	rows, err := f.GetRows(CoursesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, courseHeader, rows[0])
	assert.Equal(t, []string{"學系專業課程", "資訊技術與系統開發次領域", "IM201", "資料結構", "必", "", "", "3", "3"}, rows[1])
	assert.Equal(t, "2.5", rows[2][7])
}

func TestDOCX(t *testing.T) {
	data, err := DOCX(testChecklist())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, partContentTypes, names[0])
	assert.Contains(t, names, partDocument)
	assert.Contains(t, names, partStyles)

	doc, err := readZipFile(zr, partDocument)
	require.NoError(t, err)

	texts := documentTexts(t, doc)
	assert.Equal(t, "資訊管理學系", texts[0])
	assert.Contains(t, texts, "IM202 網頁<程式>設計")
	assert.Contains(t, texts, "系專業選修")
	assert.Contains(t, texts, "學系專業課程：25/60")
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, io.ErrUnexpectedEOF
}

// documentTexts returns the content of every w:t element in order.
func documentTexts(t *testing.T, doc []byte) []string {
	t.Helper()
	decoder := xml.NewDecoder(bytes.NewReader(doc))
	var texts []string
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		switch tt := tok.(type) {
		case xml.StartElement:
			if tt.Name.Local == "t" {
				inText = true
				texts = append(texts, "")
			}
		case xml.EndElement:
			if tt.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				texts[len(texts)-1] += string(tt)
			}
		}
	}
	return texts
}

func TestCSV(t *testing.T) {
	data, err := CSV(testChecklist())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, BOM))

	records, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, courseHeader, records[0])
	assert.Equal(t, "IM201", records[1][2])
	assert.Equal(t, "", records[2][8])
}

func TestHTML(t *testing.T) {
	data, err := HTML(testChecklist())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<title>資訊管理學系</title>")
	assert.Contains(t, out, "學號: 11200001")
	assert.Contains(t, out, "網頁&lt;程式&gt;設計")
	assert.Equal(t, 1, strings.Count(out, `<tr class="moved">`))
	assert.Contains(t, out, `<td class="num">2.5</td>`)
}

func TestHTMLDefaultTitle(t *testing.T) {
	c := testChecklist()
	c.Meta.Title = nil

	data, err := HTML(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>"+DefaultTitle+"</h1>")
}
