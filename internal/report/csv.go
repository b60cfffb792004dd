package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// writeCSV renders t with a trailing Highlight column holding the static
// equivalent of the xlsx conditional formats.
func writeCSV(w io.Writer, t *Table, footer string) error {
	cw := csv.NewWriter(w)

	header := append(append([]string(nil), t.Header...), "Highlight")
	records := make([][]string, 0, len(t.Rows)+3)
	records = append(records, header)

	for _, r := range t.Rows {
		record := make([]string, 0, len(header))
		record = append(record, strconv.Itoa(r.Ordinal), r.GivenName, r.FamilyName)
		for _, s := range r.Scores {
			record = append(record, strconv.Itoa(s))
		}
		record = append(record,
			strconv.FormatFloat(r.Average, 'f', 2, 64),
			string(r.Highlight()))
		records = append(records, record)
	}

	records = append(records, []string{}, []string{footer})

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to encode csv: %w", err)
	}
	return nil
}
