package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

// Sheet names of the workbook export.
const (
	SummarySheet = "Summary"
	CoursesSheet = "Courses"
)

// XLSX renders a workbook with a Summary sheet and a Courses sheet.
func XLSX(c *models.Checklist) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(CoursesSheet); err != nil {
		return nil, fmt.Errorf("failed to create courses sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(SummarySheet, "A1", title(c)); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(SummarySheet, 1, 1, bold); err != nil {
		return nil, err
	}
	for i, line := range summaryLines(c) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &[]interface{}{line.Label, line.Value}); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SummarySheet, "A", "B", 20); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(CoursesSheet, "A1", &courseHeader); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(CoursesSheet, 1, 1, bold); err != nil {
		return nil, err
	}
	for i, row := range c.Data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(CoursesSheet, cell, &[]interface{}{
			row.Category,
			row.Domain,
			deref(row.Course.Code),
			deref(row.Course.Name),
			row.ReqType,
			row.Group,
			row.OfferedBy,
			cellNumber(row.CourseCredits),
			cellNumber(row.EarnedCreditsCourse),
		}); err != nil {
			return nil, fmt.Errorf("failed to write course row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(CoursesSheet, "A", "B", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(CoursesSheet, "D", "D", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellNumber keeps known credits numeric in the sheet and leaves unknown ones blank.
func cellNumber(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
