package events

import (
	"context"
	"errors"
	"log/slog"
)

// InMemoryEventEmitter delivers events synchronously, in registration order,
// to handlers held in memory. It is meant for the single goroutine that owns
// the gradebook and does no locking.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	logger   *slog.Logger
}

var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		logger: logger.With("component", "roster_event_emitter"),
	}
}

// RegisterHandler adds a handler that receives every later event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers))
}

// EmitEvent hands event to every registered handler. A failing handler does
// not stop delivery; all handler errors are joined into the result.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *RosterEvent) error {
	if len(e.handlers) == 0 {
		e.logger.Debug("no handlers registered for event",
			"event_id", event.ID,
			"event_type", event.Type)
		return nil
	}

	var errs []error
	for i, handler := range e.handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// LogHandler returns a handler that records every event on logger at info level.
func LogHandler(logger *slog.Logger) EventHandler {
	return HandlerFunc(func(ctx context.Context, event *RosterEvent) error {
		logger.InfoContext(ctx, "roster changed",
			"event_id", event.ID,
			"event_type", event.Type,
			"index", event.Index,
			"assignment_count", event.AssignmentCount,
			"student_count", event.StudentCount)
		return nil
	})
}
