package handler

import (
	"strings"

	"saintkernel/internal/domain"
	dErrors "saintkernel/pkg/domainerrors"
)

// ValidateRequest is the HTTP request body for POST /kernel/validate.
// Context keeps the caller-facing loose shape; Validate translates it into
// the typed domain context.
type ValidateRequest struct {
	Action  string         `json:"action"`
	Role    string         `json:"role"`
	Context map[string]any `json:"context,omitempty"`

	// Parsed values (populated by Validate)
	parsed domain.ValidationRequest
}

// Validate checks structural validity only: action and role must be present.
// Unknown roles and actions are NOT rejected here; those are policy
// decisions the kernel answers with DENIED, not malformed calls.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Action = strings.TrimSpace(r.Action)
	r.Role = strings.TrimSpace(r.Role)
	if r.Action == "" || r.Role == "" {
		return dErrors.New(dErrors.CodeBadRequest, "action and role are required")
	}

	r.parsed = domain.ValidationRequest{
		Action:  domain.Action(r.Action),
		Role:    domain.Role(r.Role),
		Context: parseContext(r.Context),
	}
	return nil
}

// Parsed returns the validated domain request.
func (r *ValidateRequest) Parsed() domain.ValidationRequest {
	return r.parsed
}

// parseContext lifts the wire-level context bag into the typed domain
// context. "escalation_condition" and "value" drive escalation matching;
// any other string-valued keys ride along as audited attributes.
func parseContext(raw map[string]any) *domain.RequestContext {
	if len(raw) == 0 {
		return nil
	}

	ctx := &domain.RequestContext{}
	if cond, ok := raw["escalation_condition"].(string); ok && cond != "" {
		sig := &domain.EscalationSignal{Condition: cond}
		if v, ok := raw["value"].(float64); ok {
			sig.Value = &v
		}
		ctx.Escalation = sig
	}
	for k, v := range raw {
		if k == "escalation_condition" || k == "value" {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if ctx.Attrs == nil {
			ctx.Attrs = make(map[string]string)
		}
		ctx.Attrs[k] = s
	}
	if ctx.Escalation == nil && ctx.Attrs == nil {
		return nil
	}
	return ctx
}
