package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/spf13/pflag"
)

// command is one gradebook subcommand.
type command struct {
	summary string
	run     func(ctx context.Context, app *application, args []string) error
}

var commands = map[string]command{
	"configure": {summary: "set the number of assignments (once per roster)", run: runConfigure},
	"add":       {summary: "add a student", run: runAdd},
	"update":    {summary: "replace a student's names or scores", run: runUpdate},
	"list":      {summary: "print the roster", run: runList},
	"stats":     {summary: "print group average, best and worst student", run: runStats},
	"sort":      {summary: "reorder the roster by average", run: runSort},
	"export":    {summary: "write the roster as an xlsx or csv report", run: runExport},
	"reset":     {summary: "delete every student and the assignment count", run: runReset},
	"version":   {summary: "print the version", run: runVersion},
}

var commandOrder = []string{"configure", "add", "update", "list", "stats", "sort", "export", "reset", "version"}

func newFlagSet(app *application, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(app.stderr)
	return fs
}

func runConfigure(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "configure")
	n := fs.IntP("assignments", "n", 0, "number of assignments, at least 2")
	if err := fs.Parse(args); err != nil {
		return err
	}

	before := app.book.AssignmentCount()
	if err := app.book.Configure(ctx, *n); err != nil {
		return err
	}

	if before != 0 && before != *n {
		fmt.Fprintf(app.stdout, "assignment count is already %d; reset the roster to change it\n", before)
		return nil
	}
	fmt.Fprintf(app.stdout, "assignment count: %d\n", app.book.AssignmentCount())
	return nil
}

func runAdd(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "add")
	given := fs.String("given", "", "given name")
	family := fs.String("family", "", "family name")
	scores := fs.IntSlice("scores", nil, "comma-separated scores, one per assignment, each 1..5")
	n := fs.IntP("assignments", "n", 0, "configure the assignment count first if the roster is new")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if app.book.AssignmentCount() == 0 && fs.Changed("assignments") {
		if err := app.book.Configure(ctx, *n); err != nil {
			return err
		}
	}

	student := domain.NewStudent(*given, *family, *scores)
	if err := app.book.AddStudent(ctx, student); err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "added #%d %s (average %.2f)\n", app.book.Len(), student.FullName(), student.Average())
	return nil
}

func runUpdate(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "update")
	index := fs.IntP("index", "i", 0, "student number as shown by list (1-based)")
	given := fs.String("given", "", "new given name (unchanged if omitted)")
	family := fs.String("family", "", "new family name (unchanged if omitted)")
	scores := fs.IntSlice("scores", nil, "new scores (unchanged if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pos := *index - 1
	students := app.book.Students()
	if pos < 0 || pos >= len(students) {
		return fmt.Errorf("%w: no student #%d, roster has %d", domain.ErrIndexOutOfBounds, *index, len(students))
	}

	current := students[pos]
	if fs.Changed("given") {
		current.GivenName = *given
	}
	if fs.Changed("family") {
		current.FamilyName = *family
	}
	if fs.Changed("scores") {
		current.Scores = *scores
	}

	replacement := domain.NewStudent(current.GivenName, current.FamilyName, current.Scores)
	if replacement.Equal(students[pos]) {
		fmt.Fprintf(app.stdout, "#%d %s unchanged\n", *index, replacement.FullName())
		return nil
	}
	if err := app.book.UpdateStudent(ctx, pos, replacement); err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "updated #%d %s (average %.2f)\n", *index, replacement.FullName(), replacement.Average())
	return nil
}

func runList(_ context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	count := app.book.AssignmentCount()
	students := app.book.Students()
	if len(students) == 0 {
		fmt.Fprintf(app.stdout, "no students (assignment count: %d)\n", count)
		return nil
	}

	tw := tabwriter.NewWriter(app.stdout, 0, 0, 2, ' ', 0)
	header := []string{"#", "GIVEN NAME", "FAMILY NAME"}
	for i := 1; i <= count; i++ {
		header = append(header, "A"+strconv.Itoa(i))
	}
	header = append(header, "AVERAGE")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, s := range students {
		cells := []string{strconv.Itoa(i + 1), s.GivenName, s.FamilyName}
		for _, score := range s.Scores {
			cells = append(cells, strconv.Itoa(score))
		}
		cells = append(cells, fmt.Sprintf("%.2f", s.Average()))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func runStats(_ context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "stats")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary, err := app.book.Summary()
	if errors.Is(err, domain.ErrEmptyRoster) {
		fmt.Fprintln(app.stdout, "no students")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "group average: %.2f\n", summary.GroupAverage)
	fmt.Fprintf(app.stdout, "best: %s (%.2f)\n", summary.Best.FullName(), summary.Best.Average())
	fmt.Fprintf(app.stdout, "worst: %s (%.2f)\n", summary.Worst.FullName(), summary.Worst.Average())
	return nil
}

func runSort(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "sort")
	asc := fs.Bool("asc", false, "lowest average first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := app.book.SortByAverage(ctx, !*asc); err != nil {
		return err
	}
	return runList(ctx, app, nil)
}

func runExport(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "export")
	out := fs.StringP("out", "o", app.config.Report.DefaultPath, "destination file; .csv selects csv, anything else xlsx")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := app.renderer.Render(ctx, app.book, *out); err != nil {
		if errors.Is(err, domain.ErrEmptyRoster) {
			return fmt.Errorf("nothing to export: %w", err)
		}
		return err
	}

	fmt.Fprintf(app.stdout, "exported %d students to %s\n", app.book.Len(), *out)
	return nil
}

func runReset(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet(app, "reset")
	yes := fs.BoolP("yes", "y", false, "confirm deleting the roster")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return errors.New("reset deletes every student; pass --yes to confirm")
	}

	if err := app.book.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, "roster cleared")
	return nil
}

func runVersion(_ context.Context, app *application, _ []string) error {
	fmt.Fprintf(app.stdout, "gradebook %s\n", version)
	return nil
}
