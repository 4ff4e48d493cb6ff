package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// View names a presentation region derived from one or both collections.
type View string

// Views that depend on the collections.
const (
	// ViewCourses is the course list, including per-course enrollment counts.
	ViewCourses View = "courses"

	// ViewCourseOptions is the course picker used when enrolling a student.
	ViewCourseOptions View = "course-options"

	// ViewEnrollments is the enrollment list, which shows course titles.
	ViewEnrollments View = "enrollments"
)

// Action is the kind of change that was committed.
type Action string

// Possible actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent describes one committed mutation.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Collection is the snapshot key of the mutated collection
	Collection string `json:"collection"`

	Action   Action `json:"action"`
	RecordID int    `json:"recordId"`

	// Refresh lists the views that are stale after this change
	Refresh []View `json:"refresh"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewChangeEvent creates a ChangeEvent with a fresh id.
func NewChangeEvent(collection string, action Action, recordID int, refresh []View) *ChangeEvent {
	return &ChangeEvent{
		ID:         uuid.New(),
		Collection: collection,
		Action:     action,
		RecordID:   recordID,
		Refresh:    refresh,
		CreatedAt:  time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event *ChangeEvent) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows the dispatcher to publish changes without knowing who listens.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
