package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Format is an output file format.
type Format string

// Supported formats.
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFor picks the format from the destination's extension; anything
// other than .csv is rendered as xlsx.
func FormatFor(destination string) Format {
	if strings.EqualFold(filepath.Ext(destination), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// Defaults used when an Options field is left empty.
const (
	DefaultSheetName       = "Grades"
	DefaultTimestampLayout = "02.01.2006 15:04"
)

// Options tune the rendered output.
type Options struct {
	SheetName       string
	TimestampLayout string
	// Now supplies the export timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Renderer writes roster reports to a filesystem.
type Renderer struct {
	fs     afero.Fs
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a Renderer writing to fsys. A nil logger discards output.
func NewRenderer(fsys afero.Fs, opts Options, logger *slog.Logger) *Renderer {
	if opts.SheetName == "" {
		opts.SheetName = DefaultSheetName
	}
	if opts.TimestampLayout == "" {
		opts.TimestampLayout = DefaultTimestampLayout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{
		fs:     fsys,
		opts:   opts,
		logger: logger.With("component", "report_renderer"),
	}
}

// Render writes the roster to destination, replacing any existing file.
// It returns domain.ErrEmptyRoster, without touching destination, when the
// roster has no students.
func (r *Renderer) Render(ctx context.Context, roster Roster, destination string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	table, err := BuildTable(roster)
	if err != nil {
		return err
	}

	footer := "Exported: " + r.opts.Now().Format(r.opts.TimestampLayout)
	format := FormatFor(destination)

	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		err = writeCSV(&buf, table, footer)
	default:
		err = writeXLSX(&buf, table, r.opts.SheetName, footer)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s report: %w", format, err)
	}

	if dir := filepath.Dir(destination); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := afero.WriteFile(r.fs, destination, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	r.logger.InfoContext(ctx, "report written",
		"destination", destination,
		"format", format,
		"student_count", len(table.Rows),
		"bytes", buf.Len())
	return nil
}
