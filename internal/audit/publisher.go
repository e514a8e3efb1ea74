package audit

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Publisher hands events to the worker through a buffered channel. Emitting
// is best-effort: analysis responses are never blocked on audit persistence,
// so a full buffer drops the event with a warning instead of waiting.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

// NewPublisher creates a publisher over the worker inbox.
func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit queues an event, filling in the ID and timestamp when unset.
func (p *Publisher) Emit(event Event) {
	if p == nil {
		return
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("audit buffer full, dropping event",
			"category", event.Category,
			"action", event.Action,
		)
	}
}
