package domain

// Result enumerates the possible kernel decisions.
type Result string

const (
	ResultAllowed  Result = "ALLOWED"
	ResultDenied   Result = "DENIED"
	ResultEscalate Result = "ESCALATE"
)

// Denial reasons produced by the engine itself rather than boundary data.
const (
	ReasonUnknownRole = "Unknown role"
	ReasonFailClosed  = "Action not explicitly allowed for this role"
)

// EscalationSignal is the strongly-typed escalation hint a caller may attach
// to a request. Condition names an escalation rule condition; Value, when
// present, is compared against the rule's threshold before the rule fires.
type EscalationSignal struct {
	Condition string
	Value     *float64
}

// RequestContext carries optional request metadata consulted during
// evaluation. Escalation drives rule matching; Attrs is opaque pass-through
// data (client IP, user agent) recorded verbatim in the audit trail.
type RequestContext struct {
	Escalation *EscalationSignal
	Attrs      map[string]string
}

// Clone returns a deep copy so audit entries cannot alias caller-owned maps.
func (c *RequestContext) Clone() *RequestContext {
	if c == nil {
		return nil
	}
	out := &RequestContext{}
	if c.Escalation != nil {
		sig := *c.Escalation
		if c.Escalation.Value != nil {
			v := *c.Escalation.Value
			sig.Value = &v
		}
		out.Escalation = &sig
	}
	if c.Attrs != nil {
		out.Attrs = make(map[string]string, len(c.Attrs))
		for k, v := range c.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// ValidationRequest is the immutable input to a single kernel decision.
type ValidationRequest struct {
	Action  Action
	Role    Role
	Context *RequestContext
}

// Clone returns a deep copy of the request for audit ownership.
func (r ValidationRequest) Clone() ValidationRequest {
	r.Context = r.Context.Clone()
	return r
}

// Outcome is what the decision engine produces: the result plus its
// explanation. EscalateTo names the authority an ESCALATE routes to; it is a
// free-form authority name ("L0_governance") rather than a Role.
type Outcome struct {
	Result     Result
	Reason     string
	EscalateTo string
}

// ValidationResponse is returned to the caller of Validate. A fresh value is
// produced per call and never mutated after return.
type ValidationResponse struct {
	Result     Result
	Action     Action
	Role       Role
	Reason     string
	EscalateTo string
	AuditID    string
	LatencyMS  float64
}
