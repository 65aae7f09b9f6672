package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saintkernel/internal/domain"
)

func TestValidateRequestValidate(t *testing.T) {
	t.Run("accepts unknown roles", func(t *testing.T) {
		// Unknown roles are a policy decision, not a malformed call.
		req := &ValidateRequest{Action: "launch_nuke", Role: "martian"}
		require.NoError(t, req.Validate())
		assert.Equal(t, domain.Role("martian"), req.Parsed().Role)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		for _, req := range []*ValidateRequest{
			{},
			{Action: "manage_users"},
			{Role: "gcp_admin"},
			{Action: "  ", Role: "gcp_admin"},
		} {
			assert.Error(t, req.Validate())
		}
	})
}

func TestParseContext(t *testing.T) {
	t.Run("empty bag maps to nil", func(t *testing.T) {
		assert.Nil(t, parseContext(nil))
		assert.Nil(t, parseContext(map[string]any{}))
	})

	t.Run("escalation condition and value", func(t *testing.T) {
		ctx := parseContext(map[string]any{
			"escalation_condition": "deal_exceeds_threshold",
			"value":                750000.0,
		})
		require.NotNil(t, ctx)
		require.NotNil(t, ctx.Escalation)
		assert.Equal(t, "deal_exceeds_threshold", ctx.Escalation.Condition)
		require.NotNil(t, ctx.Escalation.Value)
		assert.Equal(t, 750000.0, *ctx.Escalation.Value)
	})

	t.Run("string attrs ride along, other types are dropped", func(t *testing.T) {
		ctx := parseContext(map[string]any{
			"project": "tower-a",
			"attempt": 3.0,
		})
		require.NotNil(t, ctx)
		assert.Nil(t, ctx.Escalation)
		assert.Equal(t, map[string]string{"project": "tower-a"}, ctx.Attrs)
	})

	t.Run("value without condition is ignored", func(t *testing.T) {
		ctx := parseContext(map[string]any{"value": 10.0})
		assert.Nil(t, ctx)
	})
}
