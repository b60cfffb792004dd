package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2026, time.October, 19, 14, 5, 0, 0, time.UTC)

func newTestRenderer(fs afero.Fs) *Renderer {
	return NewRenderer(fs, Options{Now: func() time.Time { return fixedNow }}, nil)
}

func sampleRoster() staticRoster {
	return staticRoster{count: 3, students: []domain.Student{
		domain.NewStudent("Ann", "Lee", []int{5, 4, 5}),
		domain.NewStudent("Bob", "Ray", []int{2, 3, 2}),
		domain.NewStudent("Cid", "Moe", []int{4, 4, 4}),
	}}
}

func openWorkbook(t *testing.T, fs afero.Fs, path string) *excelize.File {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRenderEmptyRosterWritesNothing(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	for _, dest := range []string{"/out/grades.xlsx", "/out/grades.csv"} {
		err := newTestRenderer(fs).Render(context.Background(), staticRoster{count: 2}, dest)
		assert.ErrorIs(t, err, domain.ErrEmptyRoster)

		exists, err := afero.Exists(fs, dest)
		require.NoError(t, err)
		assert.False(t, exists, dest)
	}
}

func TestRenderXLSX(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	const dest = "/out/grades.xlsx"

	require.NoError(t, newTestRenderer(fs).Render(context.Background(), sampleRoster(), dest))
	f := openWorkbook(t, fs, dest)

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())
	sheet := DefaultSheetName

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}

	t.Run("header", func(t *testing.T) {
		want := []string{"#", "Given name", "Family name", "Assignment 1", "Assignment 2", "Assignment 3", "Average"}
		for i, h := range want {
			ref, err := excelize.CoordinatesToCellName(i+1, 1)
			require.NoError(t, err)
			assert.Equal(t, h, cell(ref))
		}

		styleID, err := f.GetCellStyle(sheet, "A1")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.NotNil(t, style.Font)
		assert.True(t, style.Font.Bold)
		assert.Equal(t, "FFFFFF", style.Font.Color)
		require.NotNil(t, style.Alignment)
		assert.Equal(t, "center", style.Alignment.Horizontal)
		assert.Len(t, style.Border, 4)
		assert.Equal(t, "pattern", style.Fill.Type)
		assert.Equal(t, []string{headerFill}, style.Fill.Color)

		lastID, err := f.GetCellStyle(sheet, "G1")
		require.NoError(t, err)
		assert.Equal(t, styleID, lastID)
	})

	t.Run("data rows in roster order", func(t *testing.T) {
		assert.Equal(t, "1", cell("A2"))
		assert.Equal(t, "Ann", cell("B2"))
		assert.Equal(t, "Lee", cell("C2"))
		assert.Equal(t, "5", cell("D2"))
		assert.Equal(t, "4", cell("E2"))
		assert.Equal(t, "5", cell("F2"))
		assert.Equal(t, "4.67", cell("G2"))

		assert.Equal(t, "2", cell("A3"))
		assert.Equal(t, "Bob", cell("B3"))
		assert.Equal(t, "2.33", cell("G3"))

		assert.Equal(t, "3", cell("A4"))
		assert.Equal(t, "4", cell("G4"))
	})

	t.Run("blank separator then export line", func(t *testing.T) {
		assert.Equal(t, "", cell("A5"))
		assert.Equal(t, "Exported: 19.10.2026 14:05", cell("A6"))
	})

	t.Run("frozen header", func(t *testing.T) {
		panes, err := f.GetPanes(sheet)
		require.NoError(t, err)
		assert.True(t, panes.Freeze)
		assert.Equal(t, 1, panes.YSplit)
		assert.Equal(t, "A2", panes.TopLeftCell)
	})

	t.Run("filter over header and data", func(t *testing.T) {
		var filter *excelize.DefinedName
		for _, dn := range f.GetDefinedName() {
			if dn.Name == "_xlnm._FilterDatabase" {
				filter = &dn
			}
		}
		require.NotNil(t, filter, "defined names %v", f.GetDefinedName())
		assert.Equal(t, "'Grades'!$A$1:$G$4", filter.RefersTo)
		assert.Equal(t, sheet, filter.Scope)
	})

	t.Run("highlight rules on the average column only", func(t *testing.T) {
		formats, err := f.GetConditionalFormats(sheet)
		require.NoError(t, err)
		require.Len(t, formats, 1)

		rules, ok := formats["G2:G4"]
		require.True(t, ok, "got ranges %v", formats)
		require.Len(t, rules, 2)

		tests := []struct {
			criteria string
			value    string
			fill     string
		}{
			{criteria: "less than", value: "3", fill: lowFill},
			{criteria: "greater than or equal to", value: "4.5", fill: highFill},
		}
		for i, tt := range tests {
			r := rules[i]
			assert.Equal(t, "cell", r.Type)
			assert.Equal(t, tt.criteria, r.Criteria)
			assert.Equal(t, tt.value, r.Value)

			require.NotNil(t, r.Format, "rule %d has no format", i)
			style, err := f.GetConditionalStyle(*r.Format)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.fill}, style.Fill.Color, "rule %s %s", tt.criteria, tt.value)
		}
	})
}

func TestRenderXLSXOverwritesDestination(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	const dest = "/out/grades.xlsx"
	require.NoError(t, afero.WriteFile(fs, dest, []byte("stale content"), 0o644))

	roster := staticRoster{count: 2, students: []domain.Student{
		domain.NewStudent("Ann", "Lee", []int{5, 4}),
	}}
	require.NoError(t, newTestRenderer(fs).Render(context.Background(), roster, dest))

	f := openWorkbook(t, fs, dest)
	v, err := f.GetCellValue(DefaultSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ann", v)
}

func TestRenderCustomSheetAndLayout(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	r := NewRenderer(fs, Options{
		SheetName:       "Term 1",
		TimestampLayout: time.RFC3339,
		Now:             func() time.Time { return fixedNow },
	}, nil)

	require.NoError(t, r.Render(context.Background(), sampleRoster(), "report.xlsx"))
	f := openWorkbook(t, fs, "report.xlsx")

	v, err := f.GetCellValue("Term 1", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Exported: 2026-10-19T14:05:00Z", v)
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	const dest = "/out/grades.csv"

	require.NoError(t, newTestRenderer(fs).Render(context.Background(), sampleRoster(), dest))

	data, err := afero.ReadFile(fs, dest)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"#", "Given name", "Family name", "Assignment 1", "Assignment 2", "Assignment 3", "Average", "Highlight"},
		{"1", "Ann", "Lee", "5", "4", "5", "4.67", "high"},
		{"2", "Bob", "Ray", "2", "3", "2", "2.33", "low"},
		{"3", "Cid", "Moe", "4", "4", "4", "4.00", ""},
		{"Exported: 19.10.2026 14:05"},
	}, records, "csv reader skips the blank separator line")
	assert.Contains(t, string(data), "\n\nExported:")
}

func TestRenderCanceledContext(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestRenderer(fs).Render(ctx, sampleRoster(), "/out/grades.xlsx")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderWriteFailure(t *testing.T) {
	t.Parallel()
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := newTestRenderer(fs).Render(context.Background(), sampleRoster(), "/out/grades.csv")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmptyRoster)
}
