package audit

import (
	"context"

	"saintkernel/internal/domain"
)

// Store is the append-only audit log. Implementations must guarantee that
// entries, once appended, are never removed, reordered, or mutated, and that
// readers receive defensive copies rather than live views.
//
// There is deliberately no delete or update operation: log length is
// monotonically non-decreasing for the life of the store.
type Store interface {
	// Append records one decision at the tail of the log and returns the
	// generated entry id. It must not fail under normal operation.
	Append(ctx context.Context, req domain.ValidationRequest, outcome domain.Outcome, latencyMS float64) (string, error)

	// List returns a copy of the full log in decision order.
	List(ctx context.Context) ([]Entry, error)

	// Recent returns the last n entries, oldest first. If n exceeds the log
	// length the whole log is returned.
	Recent(ctx context.Context, n int) ([]Entry, error)

	// ListByRole returns entries whose request carried the given role.
	ListByRole(ctx context.Context, role domain.Role) ([]Entry, error)

	// ListByResult returns entries whose decision had the given result.
	ListByResult(ctx context.Context, result domain.Result) ([]Entry, error)

	// Len returns the current log length.
	Len(ctx context.Context) (int, error)
}
