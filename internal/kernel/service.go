package kernel

import (
	"context"
	"io"
	"log/slog"

	"saintkernel/internal/audit"
	"saintkernel/internal/boundary"
	"saintkernel/internal/domain"
	"saintkernel/internal/kernel/metrics"
)

// Service is the kernel facade: the only entry point external callers use.
// It composes the pure decision engine with the audit log and carries no
// state of its own beyond injected dependencies, so it is safe for any
// number of concurrent callers.
type Service struct {
	table   *boundary.Table
	store   audit.Store
	clock   Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService wires the kernel. logger and m may be nil in tests.
func NewService(table *boundary.Table, store audit.Store, clock Clock, logger *slog.Logger, m *metrics.Metrics) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{table: table, store: store, clock: clock, logger: logger, metrics: m}
}

// Validate runs the check-then-act pipeline: decide against the boundary
// table, append exactly one audit entry regardless of outcome, and return
// the response. Policy denials and escalations are normal non-error returns;
// the error path is reserved for internal faults in the audit append.
func (s *Service) Validate(ctx context.Context, req domain.ValidationRequest) (domain.ValidationResponse, error) {
	start := s.clock.Now()

	outcome := Decide(s.table, req)
	latencyMS := float64(s.clock.Now().Sub(start).Microseconds()) / 1000

	auditID, err := s.store.Append(ctx, req, outcome, latencyMS)
	if err != nil {
		s.logger.ErrorContext(ctx, "audit append failed",
			"action", req.Action,
			"role", req.Role,
			"error", err,
		)
		return domain.ValidationResponse{}, err
	}

	s.metrics.ObserveDecision(string(outcome.Result), string(req.Role), latencyMS)

	return domain.ValidationResponse{
		Result:     outcome.Result,
		Action:     req.Action,
		Role:       req.Role,
		Reason:     outcome.Reason,
		EscalateTo: outcome.EscalateTo,
		AuditID:    auditID,
		LatencyMS:  latencyMS,
	}, nil
}

// AuditLog returns a copy of the full audit log in decision order.
func (s *Service) AuditLog(ctx context.Context) ([]audit.Entry, error) {
	return s.store.List(ctx)
}

// RecentAuditEntries returns the last n entries, oldest first.
func (s *Service) RecentAuditEntries(ctx context.Context, n int) ([]audit.Entry, error) {
	return s.store.Recent(ctx, n)
}

// AuditEntriesByRole returns entries whose request carried the given role.
func (s *Service) AuditEntriesByRole(ctx context.Context, role domain.Role) ([]audit.Entry, error) {
	return s.store.ListByRole(ctx, role)
}

// AuditEntriesByResult returns entries with the given decision result.
func (s *Service) AuditEntriesByResult(ctx context.Context, result domain.Result) ([]audit.Entry, error) {
	return s.store.ListByResult(ctx, result)
}

// Boundaries exposes the read-only boundary table for presentation callers.
func (s *Service) Boundaries() *boundary.Table {
	return s.table
}
