package gradebook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/events"
	"github.com/phrazzld/gradebook/internal/store"
)

// GradeBook owns the roster and keeps it in sync with a RosterStore.
type GradeBook struct {
	store   store.RosterStore
	emitter events.EventEmitter
	logger  *slog.Logger

	assignmentCount int
	students        []domain.Student
}

// Option configures a GradeBook.
type Option func(*GradeBook)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *GradeBook) {
		g.logger = logger
	}
}

// WithEmitter publishes roster events to emitter after each successful mutation.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(g *GradeBook) {
		g.emitter = emitter
	}
}

// New creates an empty, unconfigured GradeBook backed by s.
// Call Load to pick up a previously persisted roster.
func New(s store.RosterStore, opts ...Option) *GradeBook {
	g := &GradeBook{
		store:  s,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("component", "gradebook")
	return g
}

// AssignmentCount returns the configured number of assignments, 0 if unconfigured.
func (g *GradeBook) AssignmentCount() int {
	return g.assignmentCount
}

// Len returns the number of students.
func (g *GradeBook) Len() int {
	return len(g.students)
}

// Students returns a copy of the roster in its current order.
func (g *GradeBook) Students() []domain.Student {
	out := make([]domain.Student, len(g.students))
	for i, s := range g.students {
		out[i] = s.Clone()
	}
	return out
}

// Configure sets the assignment count. n below domain.MinAssignmentCount is
// rejected with domain.ErrBelowMinimum. Once configured, further calls succeed
// without changing anything, whatever n is.
func (g *GradeBook) Configure(ctx context.Context, n int) error {
	if err := domain.ValidateAssignmentCount(n); err != nil {
		return err
	}

	if g.assignmentCount != 0 {
		if n != g.assignmentCount {
			g.logger.DebugContext(ctx, "assignment count already configured, ignoring",
				"configured", g.assignmentCount,
				"requested", n)
		}
		return nil
	}

	g.assignmentCount = n
	if err := g.Persist(ctx); err != nil {
		g.assignmentCount = 0
		return err
	}

	g.logger.InfoContext(ctx, "assignment count configured", "assignment_count", n)
	g.emit(ctx, events.EventConfigured, -1)
	return nil
}

// AddStudent validates s and appends it to the roster.
func (g *GradeBook) AddStudent(ctx context.Context, s domain.Student) error {
	if err := g.validate(s); err != nil {
		return err
	}

	g.students = append(g.students, s.Clone())
	if err := g.Persist(ctx); err != nil {
		g.students = g.students[:len(g.students)-1]
		return err
	}

	index := len(g.students) - 1
	g.logger.InfoContext(ctx, "student added", "index", index, "student_count", len(g.students))
	g.emit(ctx, events.EventStudentAdded, index)
	return nil
}

// UpdateStudent replaces the student at index with s.
// It returns domain.ErrIndexOutOfBounds before looking at s.
func (g *GradeBook) UpdateStudent(ctx context.Context, index int, s domain.Student) error {
	if index < 0 || index >= len(g.students) {
		return fmt.Errorf("%w: index %d, roster has %d students",
			domain.ErrIndexOutOfBounds, index, len(g.students))
	}
	if err := g.validate(s); err != nil {
		return err
	}

	previous := g.students[index]
	g.students[index] = s.Clone()
	if err := g.Persist(ctx); err != nil {
		g.students[index] = previous
		return err
	}

	g.logger.InfoContext(ctx, "student updated", "index", index)
	g.emit(ctx, events.EventStudentUpdated, index)
	return nil
}

// SortByAverage reorders the roster by student average and persists the new
// order. Students with equal averages keep their relative order.
func (g *GradeBook) SortByAverage(ctx context.Context, descending bool) error {
	previous := slices.Clone(g.students)

	slices.SortStableFunc(g.students, func(a, b domain.Student) int {
		if descending {
			a, b = b, a
		}
		switch {
		case a.Average() < b.Average():
			return -1
		case a.Average() > b.Average():
			return 1
		default:
			return 0
		}
	})

	if err := g.Persist(ctx); err != nil {
		g.students = previous
		return err
	}

	g.logger.InfoContext(ctx, "roster sorted by average", "descending", descending)
	g.emit(ctx, events.EventRosterSorted, -1)
	return nil
}

// Summary returns group statistics, or domain.ErrEmptyRoster.
func (g *GradeBook) Summary() (domain.Summary, error) {
	return domain.Summarize(g.students)
}

// Reset clears the assignment count and every student, then deletes the
// persisted document. The in-memory roster is cleared even if the delete
// fails; the delete error is returned.
func (g *GradeBook) Reset(ctx context.Context) error {
	g.assignmentCount = 0
	g.students = nil

	if err := g.store.Remove(ctx); err != nil {
		g.logger.ErrorContext(ctx, "failed to delete roster document", "error", err)
		return fmt.Errorf("failed to delete roster document: %w", err)
	}

	g.logger.InfoContext(ctx, "roster reset")
	g.emit(ctx, events.EventRosterReset, -1)
	return nil
}

// Persist writes the whole roster, replacing the previous document.
func (g *GradeBook) Persist(ctx context.Context) error {
	doc := store.NewDocument(g.assignmentCount, g.students)
	if err := g.store.Save(ctx, doc); err != nil {
		g.logger.ErrorContext(ctx, "failed to persist roster", "error", err)
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	return nil
}

// Load replaces the in-memory roster with the persisted one.
//
// A missing document is not an error and leaves the roster untouched. Any
// other failure also leaves the roster untouched, is logged as a warning and
// is returned wrapped in ErrLoadDegraded; callers that only want best-effort
// recovery can ignore it.
func (g *GradeBook) Load(ctx context.Context) error {
	doc, err := g.store.Load(ctx)
	if err != nil {
		if store.IsNotFoundError(err) {
			g.logger.DebugContext(ctx, "no roster document yet", "path", g.store.Path())
			return nil
		}
		g.logger.WarnContext(ctx, "ignoring unusable roster document",
			"path", g.store.Path(),
			"error", err)
		return fmt.Errorf("%w: %w", ErrLoadDegraded, err)
	}

	g.assignmentCount = doc.AssignmentCount
	g.students = make([]domain.Student, len(doc.Students))
	for i, s := range doc.Students {
		g.students[i] = s.Clone()
	}

	g.logger.InfoContext(ctx, "roster loaded",
		"assignment_count", g.assignmentCount,
		"student_count", len(g.students))
	return nil
}

func (g *GradeBook) validate(s domain.Student) error {
	if g.assignmentCount == 0 {
		return domain.ErrNotConfigured
	}
	return s.Validate(g.assignmentCount)
}

func (g *GradeBook) emit(ctx context.Context, eventType events.EventType, index int) {
	if g.emitter == nil {
		return
	}
	event := events.NewRosterEvent(eventType, index, g.assignmentCount, len(g.students))
	if err := g.emitter.EmitEvent(ctx, event); err != nil {
		g.logger.WarnContext(ctx, "roster event handler failed",
			"event_type", eventType,
			"error", err)
	}
}

// IsLoadDegraded reports whether err came from Load discarding a bad document.
func IsLoadDegraded(err error) bool {
	return errors.Is(err, ErrLoadDegraded)
}
