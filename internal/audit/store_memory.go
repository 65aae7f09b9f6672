package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"saintkernel/internal/domain"
)

// InMemoryStore keeps the audit log in process memory for its whole lifetime.
// One lock covers "generate id, timestamp, push" so ids are assigned in the
// same order entries land in the log, and readers snapshot under the same
// lock so there are no torn reads.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	clock   func() time.Time
	sink    chan<- Entry
}

// Option configures an InMemoryStore.
type Option func(*InMemoryStore)

// WithClock replaces the timestamp source. Tests use this to get
// deterministic entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *InMemoryStore) { s.clock = now }
}

// WithSink mirrors each appended entry to a channel, best effort: if the
// channel is full the mirror line is dropped, never the stored entry.
func WithSink(sink chan<- Entry) Option {
	return func(s *InMemoryStore) { s.sink = sink }
}

// NewInMemoryStore builds an empty audit log.
func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Append(_ context.Context, req domain.ValidationRequest, outcome domain.Outcome, latencyMS float64) (string, error) {
	entry := Entry{
		ID:      uuid.NewString(),
		Request: req.Clone(),
		Response: Decision{
			Result:     outcome.Result,
			Action:     req.Action,
			Role:       req.Role,
			Reason:     outcome.Reason,
			EscalateTo: outcome.EscalateTo,
		},
		LatencyMS: latencyMS,
	}

	s.mu.Lock()
	entry.Timestamp = s.clock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	if s.sink != nil {
		select {
		case s.sink <- entry.clone():
		default:
		}
	}
	return entry.ID, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyRange(0), nil
}

func (s *InMemoryStore) Recent(_ context.Context, n int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.entries) - n
	if start < 0 {
		start = 0
	}
	return s.copyRange(start), nil
}

func (s *InMemoryStore) ListByRole(_ context.Context, role domain.Role) ([]Entry, error) {
	return s.filter(func(e Entry) bool { return e.Request.Role == role }), nil
}

func (s *InMemoryStore) ListByResult(_ context.Context, result domain.Result) ([]Entry, error) {
	return s.filter(func(e Entry) bool { return e.Response.Result == result }), nil
}

func (s *InMemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// copyRange deep-copies entries[start:]. Callers must hold at least the read
// lock.
func (s *InMemoryStore) copyRange(start int) []Entry {
	out := make([]Entry, 0, len(s.entries)-start)
	for _, e := range s.entries[start:] {
		out = append(out, e.clone())
	}
	return out
}

func (s *InMemoryStore) filter(keep func(Entry) bool) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Entry
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e.clone())
		}
	}
	return out
}
