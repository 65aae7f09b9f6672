package boundary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"saintkernel/internal/domain"
)

// fileDoc is the on-disk shape of a boundary file: a mapping of role name to
// boundary definition.
type fileDoc struct {
	Roles map[string]RoleBoundary `yaml:"roles"`
}

// Load reads a boundary table from a YAML file. The file must define only
// known roles and well-formed entries; a malformed table is a startup error,
// never a runtime fallback.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundary file: %w", err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse boundary file: %w", err)
	}
	if len(doc.Roles) == 0 {
		return nil, fmt.Errorf("boundary file %s defines no roles", path)
	}

	boundaries := make(map[domain.Role]RoleBoundary, len(doc.Roles))
	for name, b := range doc.Roles {
		role, err := domain.ParseRole(name)
		if err != nil {
			return nil, fmt.Errorf("boundary file role %q: %w", name, err)
		}
		if err := validate(role, b); err != nil {
			return nil, err
		}
		boundaries[role] = b
	}
	return NewTable(boundaries), nil
}

// validate rejects boundary data the engine could only handle by accident:
// duplicate denials, empty reasons, and actions listed as both allowed and
// denied. Denial precedence makes the overlap case safe at runtime, but in
// loaded configuration it is always a typo.
func validate(role domain.Role, b RoleBoundary) error {
	allowed := make(map[domain.Action]bool, len(b.Allowed))
	for _, a := range b.Allowed {
		if a == "" {
			return fmt.Errorf("role %s: empty action in allowed list", role)
		}
		allowed[a] = true
	}

	seen := make(map[domain.Action]bool, len(b.Denied))
	for _, d := range b.Denied {
		if d.Action == "" {
			return fmt.Errorf("role %s: denial with empty action", role)
		}
		if d.Reason == "" {
			return fmt.Errorf("role %s: denial of %q has no reason", role, d.Action)
		}
		if seen[d.Action] {
			return fmt.Errorf("role %s: duplicate denial of %q", role, d.Action)
		}
		seen[d.Action] = true
		if allowed[d.Action] {
			return fmt.Errorf("role %s: action %q is both allowed and denied", role, d.Action)
		}
	}

	for _, r := range b.Escalation {
		if r.Condition == "" {
			return fmt.Errorf("role %s: escalation rule with empty condition", role)
		}
		if r.EscalateTo == "" {
			return fmt.Errorf("role %s: escalation %q has no target", role, r.Condition)
		}
		if r.Reason == "" {
			return fmt.Errorf("role %s: escalation %q has no reason", role, r.Condition)
		}
	}
	return nil
}
