package audit

import (
	"context"
	"log/slog"
)

// Worker consumes events from the inbox channel and persists them. A store
// failure is logged, not propagated: the trail is best-effort and must never
// take the analysis path down with it.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker creates a worker draining inbox into store.
func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run processes events until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.Error("audit append failed",
					"category", event.Category,
					"error", err,
				)
			}
		}
	}
}
