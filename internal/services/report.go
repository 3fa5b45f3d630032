package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	matchReportSheet    = "Match Report"
	ContentTypeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MatchReportFilename = "match_report.xlsx"
)

// MatchReportExporter renders extracted requirements and their match state
// as a spreadsheet.
type MatchReportExporter interface {
	Export(requirements []string, result MatchResult) ([]byte, error)
}

type matchReportExporter struct{}

func NewMatchReportExporter() MatchReportExporter {
	return &matchReportExporter{}
}

func (e *matchReportExporter) Export(requirements []string, result MatchResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", matchReportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	f.SetColWidth(matchReportSheet, "A", "A", 60)
	f.SetColWidth(matchReportSheet, "B", "B", 12)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	matchedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create matched style: %w", err)
	}

	f.SetCellValue(matchReportSheet, "A1", "Requirement")
	f.SetCellValue(matchReportSheet, "B1", "Matched")
	f.SetCellStyle(matchReportSheet, "A1", "B1", headerStyle)

	matched := make(map[string]bool, len(result.Matched))
	for _, requirement := range result.Matched {
		matched[requirement] = true
	}

	row := 2
	for _, requirement := range requirements {
		f.SetCellValue(matchReportSheet, fmt.Sprintf("A%d", row), requirement)
		if matched[requirement] {
			f.SetCellValue(matchReportSheet, fmt.Sprintf("B%d", row), "Yes")
			f.SetCellStyle(matchReportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), matchedStyle)
		} else {
			f.SetCellValue(matchReportSheet, fmt.Sprintf("B%d", row), "No")
		}
		row++
	}

	row++
	f.SetCellValue(matchReportSheet, fmt.Sprintf("A%d", row), "Match Percentage")
	f.SetCellValue(matchReportSheet, fmt.Sprintf("B%d", row), result.Percentage)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
