package report

import (
	"math"
	"strconv"

	"github.com/phrazzld/gradebook/internal/domain"
)

// Highlight thresholds for the average column.
const (
	LowThreshold  = 3.0
	HighThreshold = 4.5
)

// Highlight is the band an average falls into.
type Highlight string

// Highlight bands. HighlightNone renders as an empty cell.
const (
	HighlightNone Highlight = ""
	HighlightLow  Highlight = "low"
	HighlightHigh Highlight = "high"
)

// Classify returns HighlightLow for averages strictly below LowThreshold and
// HighlightHigh for averages at or above HighThreshold.
func Classify(average float64) Highlight {
	switch {
	case average < LowThreshold:
		return HighlightLow
	case average >= HighThreshold:
		return HighlightHigh
	default:
		return HighlightNone
	}
}

// Row is one student as it appears in the report.
type Row struct {
	Ordinal    int
	GivenName  string
	FamilyName string
	Scores     []int
	// Average is rounded to two decimals.
	Average float64
}

// Highlight classifies the rounded average, which is the value a reader sees.
func (r Row) Highlight() Highlight {
	return Classify(r.Average)
}

// Table is the tabular form of a roster, independent of output format.
type Table struct {
	Header []string
	Rows   []Row
}

// Roster is the read-only view of a gradebook the renderer needs.
type Roster interface {
	Students() []domain.Student
	AssignmentCount() int
}

// BuildTable converts a roster into a Table. It returns domain.ErrEmptyRoster
// when there are no students.
func BuildTable(roster Roster) (*Table, error) {
	students := roster.Students()
	if len(students) == 0 {
		return nil, domain.ErrEmptyRoster
	}

	count := roster.AssignmentCount()
	header := make([]string, 0, count+4)
	header = append(header, "#", "Given name", "Family name")
	for i := 1; i <= count; i++ {
		header = append(header, "Assignment "+strconv.Itoa(i))
	}
	header = append(header, "Average")

	rows := make([]Row, len(students))
	for i, s := range students {
		rows[i] = Row{
			Ordinal:    i + 1,
			GivenName:  s.GivenName,
			FamilyName: s.FamilyName,
			Scores:     s.Scores,
			Average:    roundTo2(s.Average()),
		}
	}

	return &Table{Header: header, Rows: rows}, nil
}

// AverageColumn returns the 1-based column index of the average.
func (t *Table) AverageColumn() int {
	return len(t.Header)
}

// FooterRow returns the 1-based row of the export line: header, data rows,
// one blank separator, then the footer.
func (t *Table) FooterRow() int {
	return len(t.Rows) + 3
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
