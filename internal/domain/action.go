package domain

import (
	"strings"

	dErrors "saintkernel/pkg/domainerrors"
)

// Action names a single operation a caller wants to perform, e.g.
// "create_shop_drawing". The action vocabulary is open: boundaries enumerate
// the actions they care about and everything else falls through to the
// default deny, so Action validates shape only, not membership.
type Action string

// ParseAction constructs an Action from external input.
//
// Errors: returns CodeInvalidInput when the value is empty after trimming.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "action cannot be empty")
	}
	return Action(s), nil
}

// String returns the string representation of the action.
func (a Action) String() string {
	return string(a)
}
