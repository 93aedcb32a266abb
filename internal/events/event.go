package events

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	StudentCreated    Type = "student.created"
	StudentUpdated    Type = "student.updated"
	StudentDeleted    Type = "student.deleted"
	CourseCreated     Type = "course.created"
	CourseUpdated     Type = "course.updated"
	CourseDeleted     Type = "course.deleted"
	EnrollmentCreated Type = "enrollment.created"
	EnrollmentDeleted Type = "enrollment.deleted"
)

type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	StudentID  int       `json:"studentId,omitempty"`
	CourseID   int       `json:"courseId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(t Type, studentID, courseID int) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		StudentID:  studentID,
		CourseID:   courseID,
		OccurredAt: time.Now().UTC(),
	}
}

// Key partitions events by the entity they concern.
func (e Event) Key() string {
	switch {
	case e.CourseID != 0:
		return "course-" + strconv.Itoa(e.CourseID)
	case e.StudentID != 0:
		return "student-" + strconv.Itoa(e.StudentID)
	default:
		return string(e.Type)
	}
}

// Publisher interface for messaging (NATS/Kafka)
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Emit publishes e and logs, rather than returns, a failure. Mutations have
// already been applied when events are emitted.
func Emit(ctx context.Context, p Publisher, logger *slog.Logger, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		logger.WarnContext(ctx, "failed to publish event", "type", e.Type, "error", err)
	}
}
