package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a kind of roster mutation.
type EventType string

// Roster mutation types.
const (
	EventConfigured     EventType = "configured"
	EventStudentAdded   EventType = "student_added"
	EventStudentUpdated EventType = "student_updated"
	EventRosterSorted   EventType = "roster_sorted"
	EventRosterReset    EventType = "roster_reset"
)

// RosterEvent describes one successful roster mutation and the roster shape
// right after it.
type RosterEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is the kind of mutation
	Type EventType `json:"type"`

	// Index is the affected student position, or -1 when the event is not
	// about a single student
	Index int `json:"index"`

	AssignmentCount int `json:"assignment_count"`
	StudentCount    int `json:"student_count"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewRosterEvent creates a RosterEvent with a fresh ID and the current time.
func NewRosterEvent(eventType EventType, index, assignmentCount, studentCount int) *RosterEvent {
	return &RosterEvent{
		ID:              uuid.New(),
		Type:            eventType,
		Index:           index,
		AssignmentCount: assignmentCount,
		StudentCount:    studentCount,
		CreatedAt:       time.Now(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *RosterEvent) error
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(ctx context.Context, event *RosterEvent) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *RosterEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows the gradebook to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *RosterEvent) error
}
