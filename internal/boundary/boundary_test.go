package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saintkernel/internal/domain"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	t.Run("defines every role in the closed set", func(t *testing.T) {
		assert.Equal(t, domain.Roles(), table.Roles())
		for _, role := range domain.Roles() {
			b, ok := table.Boundary(role)
			require.True(t, ok, "missing boundary for %s", role)
			assert.NotEmpty(t, b.Label)
			assert.NotEmpty(t, b.Allowed)
		}
	})

	t.Run("allowed lookup", func(t *testing.T) {
		assert.True(t, table.IsActionAllowed(domain.RoleAdmin, "manage_users"))
		assert.True(t, table.IsActionAllowed(domain.RoleEngineer, "create_shop_drawing"))
		assert.False(t, table.IsActionAllowed(domain.RoleSalesRep, "create_shop_drawing"))
		assert.False(t, table.IsActionAllowed("martian", "load_entity"), "unknown role allows nothing")
	})

	t.Run("denial reasons", func(t *testing.T) {
		reason, ok := table.DenialReason(domain.RoleSalesRep, "create_shop_drawing")
		require.True(t, ok)
		assert.Equal(t, "Engineering function — not sales scope", reason)

		_, ok = table.DenialReason(domain.RoleSalesRep, "view_opportunities")
		assert.False(t, ok, "allowed action has no denial reason")

		_, ok = table.DenialReason("martian", "anything")
		assert.False(t, ok, "unknown role has no denial reasons")
	})

	t.Run("escalation rules", func(t *testing.T) {
		rule, ok := table.EscalationRule(domain.RoleSalesRep, "deal_exceeds_threshold")
		require.True(t, ok)
		assert.Equal(t, "gcp_admin", rule.EscalateTo)
		require.NotNil(t, rule.Threshold)
		assert.Equal(t, 500000.0, *rule.Threshold)
		assert.Equal(t, "USD", rule.Unit)

		_, ok = table.EscalationRule(domain.RoleSalesRep, "warranty_claim_dispute")
		assert.False(t, ok, "condition declared for another role")
	})

	t.Run("even the admin cannot touch the kernel", func(t *testing.T) {
		reason, ok := table.DenialReason(domain.RoleAdmin, "delete_audit_logs")
		require.True(t, ok)
		assert.Contains(t, reason, "immutable")
	})
}

// TestBoundaryReturnsCopies: mutating an accessor result must not leak into
// the table.
func TestBoundaryReturnsCopies(t *testing.T) {
	table := Default()

	b, ok := table.Boundary(domain.RoleContractor)
	require.True(t, ok)
	b.Denied[0].Reason = "tampered"
	b.Allowed[0] = "tampered"
	b.Escalation[0].EscalateTo = "tampered"

	fresh, ok := table.Boundary(domain.RoleContractor)
	require.True(t, ok)
	assert.NotEqual(t, "tampered", fresh.Denied[0].Reason)
	assert.NotEqual(t, domain.Action("tampered"), fresh.Allowed[0])
	assert.NotEqual(t, "tampered", fresh.Escalation[0].EscalateTo)
}
