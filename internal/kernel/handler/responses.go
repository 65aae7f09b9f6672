package handler

import (
	"time"

	"saintkernel/internal/audit"
	"saintkernel/internal/boundary"
	"saintkernel/internal/domain"
)

// ValidateResponse is the HTTP response for POST /kernel/validate.
type ValidateResponse struct {
	Result     string  `json:"result"`
	Action     string  `json:"action"`
	Role       string  `json:"role"`
	Reason     string  `json:"reason,omitempty"`
	EscalateTo string  `json:"escalateTo,omitempty"`
	AuditID    string  `json:"auditId"`
	LatencyMS  float64 `json:"latencyMs"`
}

// FromValidation converts a domain response to the wire shape.
func FromValidation(res domain.ValidationResponse) ValidateResponse {
	return ValidateResponse{
		Result:     string(res.Result),
		Action:     string(res.Action),
		Role:       string(res.Role),
		Reason:     res.Reason,
		EscalateTo: res.EscalateTo,
		AuditID:    res.AuditID,
		LatencyMS:  res.LatencyMS,
	}
}

// AuditEntryResponse is one audit entry on the wire.
type AuditEntryResponse struct {
	ID        string              `json:"id"`
	Timestamp time.Time           `json:"timestamp"`
	Request   AuditRequestRecord  `json:"request"`
	Response  AuditDecisionRecord `json:"response"`
	LatencyMS float64             `json:"latencyMs"`
}

// AuditRequestRecord is the recorded request portion of an entry.
type AuditRequestRecord struct {
	Action  string         `json:"action"`
	Role    string         `json:"role"`
	Context map[string]any `json:"context,omitempty"`
}

// AuditDecisionRecord is the recorded decision portion of an entry.
type AuditDecisionRecord struct {
	Result     string `json:"result"`
	Action     string `json:"action"`
	Role       string `json:"role"`
	Reason     string `json:"reason,omitempty"`
	EscalateTo string `json:"escalateTo,omitempty"`
}

// FromEntries converts audit entries to the wire shape.
func FromEntries(entries []audit.Entry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Request: AuditRequestRecord{
				Action:  string(e.Request.Action),
				Role:    string(e.Request.Role),
				Context: contextToWire(e.Request.Context),
			},
			Response: AuditDecisionRecord{
				Result:     string(e.Response.Result),
				Action:     string(e.Response.Action),
				Role:       string(e.Response.Role),
				Reason:     e.Response.Reason,
				EscalateTo: e.Response.EscalateTo,
			},
			LatencyMS: e.LatencyMS,
		})
	}
	return out
}

func contextToWire(ctx *domain.RequestContext) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any)
	if ctx.Escalation != nil {
		out["escalation_condition"] = ctx.Escalation.Condition
		if ctx.Escalation.Value != nil {
			out["value"] = *ctx.Escalation.Value
		}
	}
	for k, v := range ctx.Attrs {
		out[k] = v
	}
	return out
}

// BoundaryResponse is one role boundary on the wire, presentation metadata
// included.
type BoundaryResponse struct {
	Role        string                   `json:"role"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Icon        string                   `json:"icon"`
	Color       string                   `json:"color"`
	Allowed     []string                 `json:"allowed"`
	Denied      []DeniedActionResponse   `json:"denied"`
	Escalation  []EscalationRuleResponse `json:"escalation"`
}

// DeniedActionResponse is one deny-list entry on the wire.
type DeniedActionResponse struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// EscalationRuleResponse is one escalation rule on the wire.
type EscalationRuleResponse struct {
	Condition  string   `json:"condition"`
	Threshold  *float64 `json:"threshold,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	EscalateTo string   `json:"escalate_to"`
	Reason     string   `json:"reason"`
}

// FromBoundary converts one boundary to the wire shape.
func FromBoundary(role domain.Role, b boundary.RoleBoundary) BoundaryResponse {
	allowed := make([]string, 0, len(b.Allowed))
	for _, a := range b.Allowed {
		allowed = append(allowed, string(a))
	}
	denied := make([]DeniedActionResponse, 0, len(b.Denied))
	for _, d := range b.Denied {
		denied = append(denied, DeniedActionResponse{Action: string(d.Action), Reason: d.Reason})
	}
	escalation := make([]EscalationRuleResponse, 0, len(b.Escalation))
	for _, r := range b.Escalation {
		escalation = append(escalation, EscalationRuleResponse{
			Condition:  r.Condition,
			Threshold:  r.Threshold,
			Unit:       r.Unit,
			EscalateTo: r.EscalateTo,
			Reason:     r.Reason,
		})
	}
	return BoundaryResponse{
		Role:        string(role),
		Label:       b.Label,
		Description: b.Description,
		Icon:        b.Icon,
		Color:       b.Color,
		Allowed:     allowed,
		Denied:      denied,
		Escalation:  escalation,
	}
}
