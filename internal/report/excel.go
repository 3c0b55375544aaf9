// Package report renders analytics reports as Excel workbooks for
// download from the dashboard.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

const (
	sheetOverview      = "Overview"
	sheetDepartments   = "Departments"
	sheetDistributions = "Distributions"
	sheetAttrition     = "Attrition"
)

// BuildWorkbook renders the global report into an .xlsx byte slice.
func BuildWorkbook(r *domain.AnalyticsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, err
	}

	f.SetSheetName("Sheet1", sheetOverview)
	if err := writeSection(f, sheetOverview, titleStyle, 1, "Key Metrics", [][]interface{}{
		{"Total employees", r.TotalEmployees},
		{"Average rating", r.AvgRating},
		{"Attrition rate (%)", r.AttritionRate},
	}); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetDepartments); err != nil {
		return nil, err
	}
	deptRows := make([][]interface{}, 0, len(r.DeptCounts))
	for _, c := range r.DeptCounts {
		deptRows = append(deptRows, []interface{}{c.Value, c.Count})
	}
	if err := writeSection(f, sheetDepartments, titleStyle, 1, "Headcount by Department", deptRows); err != nil {
		return nil, err
	}
	salaryRows := make([][]interface{}, 0, len(r.SalaryByDept))
	for _, m := range r.SalaryByDept {
		salaryRows = append(salaryRows, []interface{}{m.Value, m.Mean})
	}
	if err := writeSection(f, sheetDepartments, titleStyle, len(deptRows)+3, "Average Salary by Department", salaryRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetDistributions); err != nil {
		return nil, err
	}
	ratingRows := make([][]interface{}, 0, len(r.RatingCounts))
	for _, b := range r.RatingCounts {
		ratingRows = append(ratingRows, []interface{}{b.Bucket, b.Count})
	}
	if err := writeSection(f, sheetDistributions, titleStyle, 1, "Rating Distribution", ratingRows); err != nil {
		return nil, err
	}
	yearRows := make([][]interface{}, 0, len(r.JoiningYearCounts))
	for _, b := range r.JoiningYearCounts {
		yearRows = append(yearRows, []interface{}{b.Bucket, b.Count})
	}
	if err := writeSection(f, sheetDistributions, titleStyle, len(ratingRows)+3, "Joining Year Distribution", yearRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetAttrition); err != nil {
		return nil, err
	}
	byDept := make([][]interface{}, 0, len(r.AttritionByDept))
	for _, c := range r.AttritionByDept {
		byDept = append(byDept, []interface{}{c.Value, c.Count})
	}
	if err := writeSection(f, sheetAttrition, titleStyle, 1, "Attrition by Department", byDept); err != nil {
		return nil, err
	}
	reasons := make([][]interface{}, 0, len(r.AttritionReasons))
	for _, c := range r.AttritionReasons {
		reasons = append(reasons, []interface{}{c.Value, c.Count})
	}
	if err := writeSection(f, sheetAttrition, titleStyle, len(byDept)+3, "Attrition Reasons", reasons); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSection writes a bold title at startRow followed by two-column
// data rows, and returns the first error it hits.
func writeSection(f *excelize.File, sheet string, titleStyle, startRow int, title string, rows [][]interface{}) error {
	titleCell := fmt.Sprintf("A%d", startRow)
	if err := f.SetCellValue(sheet, titleCell, title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, titleCell, titleCell, titleStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", startRow+1+i)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
