package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet colors.
const (
	headerFill = "1F4E79"
	headerFont = "FFFFFF"
	borderRGB  = "000000"
	lowFill    = "FFC7CE"
	highFill   = "C6EFCE"
)

// writeXLSX renders t as a single-sheet workbook.
func writeXLSX(w io.Writer, t *Table, sheet, footer string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRows(f, sheet, t, footer); err != nil {
		return err
	}
	if err := styleHeader(f, sheet, t); err != nil {
		return err
	}
	if err := styleAverages(f, sheet, t); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, t *Table, footer string) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range t.Rows {
		values := make([]any, 0, len(t.Header))
		values = append(values, r.Ordinal, r.GivenName, r.FamilyName)
		for _, s := range r.Scores {
			values = append(values, s)
		}
		values = append(values, r.Average)

		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r.Ordinal, err)
		}
	}

	if err := f.SetCellStr(sheet, "A"+strconv.Itoa(t.FooterRow()), footer); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, t *Table) error {
	last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFont},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: borderRGB, Style: 1},
			{Type: "top", Color: borderRGB, Style: 1},
			{Type: "right", Color: borderRGB, Style: 1},
			{Type: "bottom", Color: borderRGB, Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SetColWidth(sheet, "B", "C", 16); err != nil {
		return err
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	lastData, err := excelize.CoordinatesToCellName(len(t.Header), len(t.Rows)+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, "A1:"+lastData, nil); err != nil {
		return fmt.Errorf("failed to enable filters: %w", err)
	}
	return nil
}

// styleAverages formats the average column and attaches the low/high rules.
func styleAverages(f *excelize.File, sheet string, t *Table) error {
	rangeRef, err := averageRange(t)
	if err != nil {
		return err
	}

	numFmt, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	first, last, _ := strings.Cut(rangeRef, ":")
	if err := f.SetCellStyle(sheet, first, last, numFmt); err != nil {
		return err
	}

	low, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{lowFill}},
	})
	if err != nil {
		return fmt.Errorf("failed to create low highlight: %w", err)
	}
	high, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highFill}},
	})
	if err != nil {
		return fmt.Errorf("failed to create high highlight: %w", err)
	}

	err = f.SetConditionalFormat(sheet, rangeRef, []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: "<", Format: &low, Value: formatThreshold(LowThreshold)},
		{Type: "cell", Criteria: ">=", Format: &high, Value: formatThreshold(HighThreshold)},
	})
	if err != nil {
		return fmt.Errorf("failed to add highlight rules: %w", err)
	}
	return nil
}

// averageRange returns the reference of the average column's data cells, e.g. "F2:F4".
func averageRange(t *Table) (string, error) {
	col, err := excelize.ColumnNumberToName(t.AverageColumn())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s2:%s%d", col, col, len(t.Rows)+1), nil
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
