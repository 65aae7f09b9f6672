package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"saintkernel/internal/domain"
)

type AuditStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
}

func (s *AuditStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
}

func TestAuditStoreSuite(t *testing.T) {
	suite.Run(t, new(AuditStoreSuite))
}

func (s *AuditStoreSuite) append(action domain.Action, role domain.Role, result domain.Result) string {
	id, err := s.store.Append(s.ctx, domain.ValidationRequest{Action: action, Role: role}, domain.Outcome{Result: result}, 0.1)
	s.Require().NoError(err)
	return id
}

func (s *AuditStoreSuite) TestAppendAssignsUniqueIDsInOrder() {
	first := s.append("a", domain.RoleAdmin, domain.ResultAllowed)
	second := s.append("b", domain.RoleAdmin, domain.ResultDenied)
	s.NotEqual(first, second)

	entries, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(first, entries[0].ID)
	s.Equal(second, entries[1].ID)
	s.False(entries[0].Timestamp.After(entries[1].Timestamp))
}

func (s *AuditStoreSuite) TestListReturnsDefensiveCopies() {
	value := 42.0
	req := domain.ValidationRequest{
		Action: "review_pipeline_deal",
		Role:   domain.RoleSalesRep,
		Context: &domain.RequestContext{
			Escalation: &domain.EscalationSignal{Condition: "deal_exceeds_threshold", Value: &value},
			Attrs:      map[string]string{"client_ip": "10.0.0.1"},
		},
	}
	_, err := s.store.Append(s.ctx, req, domain.Outcome{Result: domain.ResultEscalate}, 0.1)
	s.Require().NoError(err)

	// Mutating the caller's request after append must not touch the entry.
	req.Context.Attrs["client_ip"] = "tampered"
	*req.Context.Escalation.Value = -1

	// Mutating a returned copy must not touch the stored entry either.
	got, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	got[0].Response.Result = domain.ResultAllowed
	got[0].Request.Context.Attrs["client_ip"] = "also tampered"

	fresh, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.ResultEscalate, fresh[0].Response.Result)
	s.Equal("10.0.0.1", fresh[0].Request.Context.Attrs["client_ip"])
	s.Equal(42.0, *fresh[0].Request.Context.Escalation.Value)
}

func (s *AuditStoreSuite) TestRecent() {
	for _, a := range []domain.Action{"a", "b", "c", "d", "e"} {
		s.append(a, domain.RoleAdmin, domain.ResultAllowed)
	}

	s.Run("tail slice oldest to newest", func() {
		recent, err := s.store.Recent(s.ctx, 2)
		s.Require().NoError(err)
		s.Require().Len(recent, 2)
		s.Equal(domain.Action("d"), recent[0].Request.Action)
		s.Equal(domain.Action("e"), recent[1].Request.Action)
	})

	s.Run("count above length returns whole log", func() {
		recent, err := s.store.Recent(s.ctx, 50)
		s.Require().NoError(err)
		s.Len(recent, 5)
	})

	s.Run("zero count returns nothing", func() {
		recent, err := s.store.Recent(s.ctx, 0)
		s.Require().NoError(err)
		s.Empty(recent)
	})
}

func (s *AuditStoreSuite) TestFilters() {
	s.append("a", domain.RoleAdmin, domain.ResultAllowed)
	s.append("b", domain.RoleContractor, domain.ResultDenied)
	s.append("c", domain.RoleContractor, domain.ResultAllowed)

	byRole, err := s.store.ListByRole(s.ctx, domain.RoleContractor)
	s.Require().NoError(err)
	s.Require().Len(byRole, 2)
	s.Equal(domain.Action("b"), byRole[0].Request.Action)

	byResult, err := s.store.ListByResult(s.ctx, domain.ResultDenied)
	s.Require().NoError(err)
	s.Require().Len(byResult, 1)
	s.Equal(domain.Action("b"), byResult[0].Request.Action)
}

func (s *AuditStoreSuite) TestLenIsMonotonic() {
	for i := 0; i < 10; i++ {
		before, err := s.store.Len(s.ctx)
		s.Require().NoError(err)
		s.append("a", domain.RoleAdmin, domain.ResultAllowed)
		after, err := s.store.Len(s.ctx)
		s.Require().NoError(err)
		s.Equal(before+1, after)
	}
}

func (s *AuditStoreSuite) TestClockInjection() {
	fixed := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryStore(WithClock(func() time.Time { return fixed }))

	_, err := store.Append(s.ctx, domain.ValidationRequest{Action: "a", Role: domain.RoleAdmin}, domain.Outcome{Result: domain.ResultAllowed}, 0)
	s.Require().NoError(err)

	entries, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(fixed, entries[0].Timestamp)
}

func (s *AuditStoreSuite) TestSinkMirrorsWithoutBlocking() {
	sink := make(chan Entry, 1)
	store := NewInMemoryStore(WithSink(sink))

	// Second append finds the channel full; the entry must still land.
	for i := 0; i < 2; i++ {
		_, err := store.Append(s.ctx, domain.ValidationRequest{Action: "a", Role: domain.RoleAdmin}, domain.Outcome{Result: domain.ResultAllowed}, 0)
		s.Require().NoError(err)
	}

	n, err := store.Len(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	mirrored := <-sink
	s.Equal(domain.Action("a"), mirrored.Response.Action)
}

// TestConcurrentAppends drives the single-lock append discipline: every
// entry lands exactly once with a unique id and readers never see a torn
// log.
func (s *AuditStoreSuite) TestConcurrentAppends() {
	const writers, perWriter = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := s.store.Append(s.ctx, domain.ValidationRequest{Action: "a", Role: domain.RoleAdmin}, domain.Outcome{Result: domain.ResultAllowed}, 0)
				s.NoError(err)
			}
		}()
	}
	wg.Wait()

	entries, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, writers*perWriter)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		s.False(seen[e.ID], "duplicate audit id %s", e.ID)
		seen[e.ID] = true
	}
}
