// Package kernel implements the check-then-act authorization kernel: a
// deterministic, fail-closed decision engine over the role boundary table,
// with every decision committed to the append-only audit log.
package kernel

import (
	"saintkernel/internal/boundary"
	"saintkernel/internal/domain"
)

// Decide maps a validation request to an outcome. Pure: no clock, no I/O, no
// side effects, so the rule chain is trivially testable.
//
// Checks run in strict order, first match wins:
//  1. unknown role denies everything
//  2. explicit denial, which overrides allowance even in malformed data
//  3. explicit allowance
//  4. escalation rules in declaration order
//  5. default deny (fail-closed)
func Decide(table *boundary.Table, req domain.ValidationRequest) domain.Outcome {
	b, ok := table.Boundary(req.Role)
	if !ok {
		return domain.Outcome{Result: domain.ResultDenied, Reason: domain.ReasonUnknownRole}
	}

	for _, d := range b.Denied {
		if d.Action == req.Action {
			return domain.Outcome{Result: domain.ResultDenied, Reason: d.Reason}
		}
	}

	if table.IsActionAllowed(req.Role, req.Action) {
		return domain.Outcome{Result: domain.ResultAllowed}
	}

	if sig := escalationSignal(req); sig != nil {
		for _, rule := range b.Escalation {
			if rule.Condition != sig.Condition {
				continue
			}
			if !thresholdMet(rule, sig) {
				continue
			}
			return domain.Outcome{
				Result:     domain.ResultEscalate,
				Reason:     rule.Reason,
				EscalateTo: rule.EscalateTo,
			}
		}
	}

	return domain.Outcome{Result: domain.ResultDenied, Reason: domain.ReasonFailClosed}
}

func escalationSignal(req domain.ValidationRequest) *domain.EscalationSignal {
	if req.Context == nil {
		return nil
	}
	return req.Context.Escalation
}

// thresholdMet applies the numeric half of an escalation rule. A rule without
// a threshold, or a signal without a value, matches on condition name alone;
// when both sides are present the value must meet the threshold, and a
// below-threshold value falls through to the default deny.
func thresholdMet(rule boundary.EscalationRule, sig *domain.EscalationSignal) bool {
	if rule.Threshold == nil || sig.Value == nil {
		return true
	}
	return *sig.Value >= *rule.Threshold
}
