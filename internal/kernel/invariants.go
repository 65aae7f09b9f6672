package kernel

// Invariant documents one of the guarantees the kernel enforces. The registry
// is static reference data surfaced to dashboard callers; enforcement lives
// in the engine, the boundary table, and the audit store.
type Invariant struct {
	Code        string `json:"code"`
	Rule        string `json:"rule"`
	Enforcement string `json:"enforcement"`
}

var invariants = []Invariant{
	{Code: "IV.01", Rule: "Same input MUST produce same output", Enforcement: "Pure functions only, no side effects in validation"},
	{Code: "IV.02", Rule: "Unknown actions are DENIED by default", Enforcement: "Whitelist architecture, only explicitly allowed actions pass"},
	{Code: "IV.03", Rule: "Roles cannot grant themselves higher permissions", Enforcement: "Role boundaries defined at L0, immutable at runtime"},
	{Code: "IV.04", Rule: "Every action requires explicit authorization", Enforcement: "No inheritance, no escalation without L0 approval"},
	{Code: "IV.05", Rule: "All tokens have hard expiration", Enforcement: "Session tokens expire, auth tokens expire, command tokens expire"},
	{Code: "IV.06", Rule: "Every decision produces an immutable audit log entry", Enforcement: "Audit log append-only, includes actor, action, result, timestamp, audit_id"},
	{Code: "IV.07", Rule: "State transitions are append-only, no rollback", Enforcement: "No delete operations on audit, no state reversal"},
	{Code: "IV.08", Rule: "Logs reproduce any decision deterministically", Enforcement: "Audit log contains all inputs needed to replay decision"},
}

// Invariants returns the registry of enforced kernel invariants.
func Invariants() []Invariant {
	return append([]Invariant(nil), invariants...)
}

// InvariantByCode looks up an invariant by its code.
func InvariantByCode(code string) (Invariant, bool) {
	for _, iv := range invariants {
		if iv.Code == code {
			return iv, true
		}
	}
	return Invariant{}, false
}
