package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// XML namespaces used in WordprocessingML packages
const (
	nsW            = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR            = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
)

const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
)

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRels         = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
)

var contentTypesXML = xml.Header + `<Types xmlns="` + nsContentTypes + `">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

var packageRelsXML = xml.Header + `<Relationships xmlns="` + nsPackageRels + `">` +
	`<Relationship Id="rId1" Type="` + relOfficeDocument + `" Target="word/document.xml"/>` +
	`</Relationships>`

var documentRelsXML = xml.Header + `<Relationships xmlns="` + nsPackageRels + `">` +
	`<Relationship Id="rId1" Type="` + relStyles + `" Target="styles.xml"/>` +
	`</Relationships>`

var stylesXML = xml.Header + `<w:styles xmlns:w="` + nsW + `">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Microsoft JhengHei"/>` +
	`<w:sz w:val="20"/></w:rPr></w:rPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/>` +
	`<w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="120"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`</w:styles>`

// docxColumn is one column of the course table.
type docxColumn struct {
	label   string
	percent float64
	value   func(models.Row) string
}

var docxColumns = []docxColumn{
	{"類別", 12, func(r models.Row) string { return r.Category }},
	{"領域", 14, func(r models.Row) string { return r.Domain }},
	{"科目", 30, func(r models.Row) string {
		return strings.TrimSpace(deref(r.Course.Code) + " " + deref(r.Course.Name))
	}},
	{"必/選", 8, func(r models.Row) string { return r.ReqType }},
	{"群", 8, func(r models.Row) string { return r.Group }},
	{"開課單位", 12, func(r models.Row) string { return r.OfferedBy }},
	{"科目學分", 8, func(r models.Row) string { return optionalNumber(r.CourseCredits) }},
	{"實得學分", 8, func(r models.Row) string { return optionalNumber(r.EarnedCreditsCourse) }},
}

// A4 portrait with 14 mm margins.
var (
	pageWidth   = MMToTwips(210)
	pageHeight  = MMToTwips(297)
	pageMargin  = MMToTwips(14)
	columnTwips = pageWidth - 2*pageMargin
)

// DOCX renders a Word document: title, summary paragraphs, course table.
func DOCX(c *models.Checklist) ([]byte, error) {
	document, err := documentXML(c)
	if err != nil {
		return nil, fmt.Errorf("failed to build document part: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data []byte
	}{
		{partContentTypes, []byte(contentTypesXML)},
		{partRels, []byte(packageRelsXML)},
		{partDocument, document},
		{partDocumentRels, []byte(documentRelsXML)},
		{partStyles, []byte(stylesXML)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentXML(c *models.Checklist) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	w := &docWriter{enc: xml.NewEncoder(&buf)}

	w.start("w:document", "xmlns:w", nsW, "xmlns:r", nsR)
	w.start("w:body")

	w.paragraph("Heading1", title(c), false)
	for _, line := range summaryLines(c) {
		w.paragraph("", line.Label+"："+line.Value, false)
	}
	w.paragraph("", "", false)

	w.courseTable(c.Data)

	w.start("w:sectPr")
	w.empty("w:pgSz", "w:w", strconv.Itoa(pageWidth), "w:h", strconv.Itoa(pageHeight))
	margin := strconv.Itoa(pageMargin)
	w.empty("w:pgMar", "w:top", margin, "w:right", margin, "w:bottom", margin, "w:left", margin)
	w.end("w:sectPr")

	w.end("w:body")
	w.end("w:document")

	if w.err != nil {
		return nil, w.err
	}
	if err := w.enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// docWriter streams WordprocessingML tokens and keeps the first error.
type docWriter struct {
	enc *xml.Encoder
	err error
}

func (w *docWriter) token(t xml.Token) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(t)
	}
}

// start opens an element; attrs are name/value pairs.
func (w *docWriter) start(name string, attrs ...string) {
	se := xml.StartElement{Name: xml.Name{Local: name}}
	for i := 0; i+1 < len(attrs); i += 2 {
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: attrs[i]}, Value: attrs[i+1]})
	}
	w.token(se)
}

func (w *docWriter) end(name string) {
	w.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (w *docWriter) empty(name string, attrs ...string) {
	w.start(name, attrs...)
	w.end(name)
}

func (w *docWriter) paragraph(style, text string, bold bool) {
	w.start("w:p")
	if style != "" {
		w.start("w:pPr")
		w.empty("w:pStyle", "w:val", style)
		w.end("w:pPr")
	}
	if text != "" {
		w.start("w:r")
		if bold {
			w.start("w:rPr")
			w.empty("w:b")
			w.end("w:rPr")
		}
		w.start("w:t", "xml:space", "preserve")
		w.token(xml.CharData(text))
		w.end("w:t")
		w.end("w:r")
	}
	w.end("w:p")
}

func (w *docWriter) courseTable(rows []models.Row) {
	w.start("w:tbl")
	w.start("w:tblPr")
	w.empty("w:tblW", "w:w", strconv.Itoa(PercentToPct(100)), "w:type", "pct")
	w.start("w:tblBorders")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		w.empty(side, "w:val", "single", "w:sz", "4", "w:space", "0", "w:color", "auto")
	}
	w.end("w:tblBorders")
	w.end("w:tblPr")

	w.start("w:tblGrid")
	for _, col := range docxColumns {
		w.empty("w:gridCol", "w:w", strconv.Itoa(int(float64(columnTwips)*col.percent/100)))
	}
	w.end("w:tblGrid")

	w.start("w:tr")
	w.start("w:trPr")
	w.empty("w:tblHeader")
	w.end("w:trPr")
	for _, col := range docxColumns {
		w.cell(col.percent, col.label, true)
	}
	w.end("w:tr")

	for _, row := range rows {
		w.start("w:tr")
		for _, col := range docxColumns {
			w.cell(col.percent, col.value(row), false)
		}
		w.end("w:tr")
	}
	w.end("w:tbl")
}

func (w *docWriter) cell(percent float64, text string, bold bool) {
	w.start("w:tc")
	w.start("w:tcPr")
	w.empty("w:tcW", "w:w", strconv.Itoa(PercentToPct(percent)), "w:type", "pct")
	w.end("w:tcPr")
	w.paragraph("", text, bold)
	w.end("w:tc")
}
