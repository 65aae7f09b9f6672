package audit

import (
	"context"
	"log/slog"
)

// Mirror consumes appended entries from a channel and writes one structured
// log line per decision. It keeps the operational trail out of the request
// path: the store is the record, the mirror is visibility.
type Mirror struct {
	logger *slog.Logger
	inbox  <-chan Entry
}

// NewMirror builds a mirror consuming from inbox.
func NewMirror(logger *slog.Logger, inbox <-chan Entry) *Mirror {
	return &Mirror{logger: logger, inbox: inbox}
}

// Run drains the inbox until ctx is cancelled.
func (m *Mirror) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry := <-m.inbox:
			m.logger.InfoContext(ctx, "decision recorded",
				"audit_id", entry.ID,
				"action", entry.Response.Action,
				"role", entry.Response.Role,
				"result", entry.Response.Result,
				"reason", entry.Response.Reason,
				"latency_ms", entry.LatencyMS,
			)
		}
	}
}
