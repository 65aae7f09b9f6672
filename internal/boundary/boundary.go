// Package boundary holds the role boundary table: the complete policy
// definition (allow-list, deny-list, escalation rules) for every role.
// The table is configuration, built once at process start; the unexported
// fields and copy-returning accessors keep it immutable afterwards.
package boundary

import "saintkernel/internal/domain"

// Denial pairs an explicitly forbidden action with its human-readable reason.
type Denial struct {
	Action domain.Action `yaml:"action"`
	Reason string        `yaml:"reason"`
}

// EscalationRule routes an action to a higher authority when the request
// context matches Condition. Threshold, when set, must be met or exceeded by
// a numeric value supplied with the request before the rule fires; a request
// that names the condition without a value matches on the name alone.
// EscalateTo is an authority name, not necessarily a Role ("L0_governance").
type EscalationRule struct {
	Condition  string   `yaml:"condition"`
	Threshold  *float64 `yaml:"threshold,omitempty"`
	Unit       string   `yaml:"unit,omitempty"`
	EscalateTo string   `yaml:"escalate_to"`
	Reason     string   `yaml:"reason"`
}

// RoleBoundary is the complete policy definition for one role. Label,
// Description, Icon, and Color are presentation metadata passed through to
// dashboard callers; the engine only consults Allowed, Denied, and
// Escalation.
type RoleBoundary struct {
	Label       string           `yaml:"label"`
	Description string           `yaml:"description"`
	Icon        string           `yaml:"icon"`
	Color       string           `yaml:"color"`
	Allowed     []domain.Action  `yaml:"allowed"`
	Denied      []Denial         `yaml:"denied"`
	Escalation  []EscalationRule `yaml:"escalation"`
}

// Table answers boundary lookups for the kernel. Read-only after
// construction; no synchronization is required for concurrent readers.
type Table struct {
	boundaries map[domain.Role]RoleBoundary
	allowed    map[domain.Role]map[domain.Action]bool
}

// NewTable builds a Table from per-role boundaries. Lookup sets are derived
// once here so the hot path stays allocation-free.
func NewTable(boundaries map[domain.Role]RoleBoundary) *Table {
	t := &Table{
		boundaries: make(map[domain.Role]RoleBoundary, len(boundaries)),
		allowed:    make(map[domain.Role]map[domain.Action]bool, len(boundaries)),
	}
	for role, b := range boundaries {
		t.boundaries[role] = b
		set := make(map[domain.Action]bool, len(b.Allowed))
		for _, a := range b.Allowed {
			set[a] = true
		}
		t.allowed[role] = set
	}
	return t
}

// Boundary returns the boundary for a role, reporting whether the role is
// known. The returned value is a copy; mutating it does not affect the table.
func (t *Table) Boundary(role domain.Role) (RoleBoundary, bool) {
	b, ok := t.boundaries[role]
	if !ok {
		return RoleBoundary{}, false
	}
	b.Allowed = append([]domain.Action(nil), b.Allowed...)
	b.Denied = append([]Denial(nil), b.Denied...)
	b.Escalation = append([]EscalationRule(nil), b.Escalation...)
	return b, true
}

// IsActionAllowed reports whether the role explicitly allows the action.
// Unknown roles allow nothing.
func (t *Table) IsActionAllowed(role domain.Role, action domain.Action) bool {
	return t.allowed[role][action]
}

// DenialReason returns the reason an action is explicitly denied for a role,
// reporting whether such a denial exists.
func (t *Table) DenialReason(role domain.Role, action domain.Action) (string, bool) {
	b, ok := t.boundaries[role]
	if !ok {
		return "", false
	}
	for _, d := range b.Denied {
		if d.Action == action {
			return d.Reason, true
		}
	}
	return "", false
}

// EscalationRule returns the first escalation rule declared for the given
// condition, reporting whether one exists. Declaration order is preserved.
func (t *Table) EscalationRule(role domain.Role, condition string) (EscalationRule, bool) {
	b, ok := t.boundaries[role]
	if !ok {
		return EscalationRule{}, false
	}
	for _, r := range b.Escalation {
		if r.Condition == condition {
			return r, true
		}
	}
	return EscalationRule{}, false
}

// Roles returns the roles the table defines, in the closed-set order.
func (t *Table) Roles() []domain.Role {
	out := make([]domain.Role, 0, len(t.boundaries))
	for _, role := range domain.Roles() {
		if _, ok := t.boundaries[role]; ok {
			out = append(out, role)
		}
	}
	return out
}
