package audit

import "context"

// Store persists audit events. Implementations must be safe for concurrent
// appends; durability guarantees belong to the chosen backend, not to the
// callers.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
