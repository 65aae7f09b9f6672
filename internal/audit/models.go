package audit

import (
	"time"

	"saintkernel/internal/domain"
)

// Decision is the reduced copy of a validation response kept in the audit
// trail. AuditID and latency live on the entry itself and are not duplicated
// here.
type Decision struct {
	Result     domain.Result
	Action     domain.Action
	Role       domain.Role
	Reason     string
	EscalateTo string
}

// Entry is one immutable record of a single policy decision. Entries are
// created exactly once at the moment of decision and are never updated or
// deleted for the life of the process. The store owns its entries; callers
// only ever see copies.
type Entry struct {
	ID        string
	Timestamp time.Time
	Request   domain.ValidationRequest
	Response  Decision
	LatencyMS float64
}

// clone deep-copies an entry so readers cannot reach store-owned state.
func (e Entry) clone() Entry {
	e.Request = e.Request.Clone()
	return e
}
