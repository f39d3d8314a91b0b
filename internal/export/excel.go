package export

import (
	"fmt"
	"io"

	"medmcq/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName  = "Questions"
	timeLayout = "2006-01-02 15:04"
)

// ExcelHeaders are the column titles of the workbook, in order.
var ExcelHeaders = []string{
	"Name", "Topic", "Clinical Scenario", "Question",
	"Option A", "Option B", "Option C", "Option D", "Option E",
	"Correct Answer", "Explanation", "Rating", "Model", "Created At",
}

func excelRow(r *domain.Record) []interface{} {
	c := r.Content
	return []interface{}{
		r.Name, r.Topic, c.ClinicalScenario, c.Question,
		c.Options.A, c.Options.B, c.Options.C, c.Options.D, c.Options.E,
		c.CorrectAnswer, c.Explanation, r.Rating, r.Model, r.CreatedAt.Format(timeLayout),
	}
}

// WriteExcel writes one header row and one row per record as an xlsx workbook.
func WriteExcel(w io.Writer, records []*domain.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create body style: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &ExcelHeaders); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(ExcelHeaders))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := excelRow(r)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for record %s: %w", r.ID, err)
		}
	}
	if len(records) > 0 {
		if err := f.SetCellStyle(SheetName, "A2", fmt.Sprintf("%s%d", lastCol, len(records)+1), wrapStyle); err != nil {
			return err
		}
	}

	for _, cw := range []struct {
		from, to string
		width    float64
	}{
		{"A", "B", 24},
		{"C", "D", 60},
		{"E", "I", 30},
		{"J", "J", 14},
		{"K", "K", 60},
		{"L", "N", 16},
	} {
		if err := f.SetColWidth(SheetName, cw.from, cw.to, cw.width); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
