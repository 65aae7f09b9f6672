package boundary

import "saintkernel/internal/domain"

// Default returns the built-in boundary table. Whitelist architecture: an
// action missing from a role's allowed list is denied unless an escalation
// rule routes it upward.
func Default() *Table {
	return NewTable(map[domain.Role]RoleBoundary{
		domain.RoleAdmin: {
			Label:       "GCP Administrator",
			Description: "Saint-Gobain internal — full platform management",
			Icon:        "Shield",
			Color:       "#1E40AF",
			Allowed: actions(
				"load_entity",
				"manage_users", "manage_roles", "manage_branding",
				"view_all_tools", "configure_tools", "deploy_tools",
				"view_all_reports", "export_reports",
				"manage_api_keys", "manage_integrations",
				"manage_billing", "manage_subscriptions",
				"create_shop_drawing", "edit_shop_drawing", "review_shop_drawing",
				"upload_assembly_letter", "parse_assembly_letter",
				"configure_product", "view_product_catalog",
				"view_warranty_status", "create_warranty_claim",
				"manage_submittals", "review_submittals",
				"view_opportunities", "score_opportunities", "assign_opportunities",
				"manage_pipeline", "update_deal_status",
				"view_territories", "manage_territories",
				"generate_reports", "view_contractor_dashboard", "view_all_projects",
				"system_settings", "view_audit_log",
				"download_shop_drawings", "view_material_schedule",
				"manage_sso", "view_admin_dashboard",
			),
			Denied: []Denial{
				{Action: "modify_kernel", Reason: "L0 authority only — kernel is immutable at runtime"},
				{Action: "modify_invariants", Reason: "L0 authority only — invariants are non-negotiable"},
				{Action: "delete_audit_logs", Reason: "Audit logs are immutable (IV.07 Monotonic State)"},
				{Action: "bypass_validation", Reason: "All actions must pass through L1 kernel"},
			},
			Escalation: []EscalationRule{
				{Condition: "billing_change_exceeds_threshold", Threshold: threshold(10000), Unit: "USD/month", EscalateTo: "L0_governance", Reason: "Large billing changes require human governance approval"},
				{Condition: "new_integration_request", EscalateTo: "L0_governance", Reason: "New integrations require security review"},
			},
		},
		domain.RoleEngineer: {
			Label:       "GCP Design Engineer",
			Description: "Engineering tools, shop drawings, product configuration",
			Icon:        "Compass",
			Color:       "#059669",
			Allowed: actions(
				"load_entity",
				"create_shop_drawing", "edit_shop_drawing", "review_shop_drawing",
				"upload_assembly_letter", "parse_assembly_letter",
				"configure_product", "view_product_catalog",
				"view_warranty_status", "create_warranty_claim",
				"manage_submittals", "review_submittals",
				"view_own_reports", "download_shop_drawings",
				"view_own_dashboard", "view_assigned_projects",
				"generate_dxf", "validate_cad_standards", "view_material_schedule",
			),
			Denied: []Denial{
				{Action: "manage_users", Reason: "Admin-only function"},
				{Action: "manage_roles", Reason: "Admin-only function"},
				{Action: "view_sales_pipeline", Reason: "Sales team data — not engineering scope"},
				{Action: "view_territories", Reason: "Sales team data — not engineering scope"},
				{Action: "manage_billing", Reason: "Admin-only function"},
				{Action: "manage_api_keys", Reason: "Admin-only function"},
				{Action: "modify_branding", Reason: "Admin-only function"},
				{Action: "view_other_engineers_data", Reason: "Data isolation — own projects only"},
			},
			Escalation: []EscalationRule{
				{Condition: "warranty_claim_exceeds_threshold", Threshold: threshold(50000), Unit: "USD", EscalateTo: "gcp_admin", Reason: "Large warranty claims require admin approval"},
				{Condition: "product_config_override", EscalateTo: "gcp_admin", Reason: "Overriding standard product configuration requires admin approval"},
			},
		},
		domain.RoleSalesRep: {
			Label:       "Sales Representative",
			Description: "GCP sales team — opportunity management, pipeline, territory",
			Icon:        "TrendingUp",
			Color:       "#D97706",
			Allowed: actions(
				"load_entity",
				"view_opportunities", "score_opportunities", "assign_opportunities",
				"manage_own_pipeline", "update_deal_status",
				"view_own_territory", "request_territory_change",
				"view_contractor_list", "contact_contractor",
				"generate_sales_reports", "view_dashboards",
				"request_product_sample", "view_product_catalog",
				"schedule_demo", "log_activity", "view_own_reports",
			),
			Denied: []Denial{
				{Action: "create_shop_drawing", Reason: "Engineering function — not sales scope"},
				{Action: "edit_shop_drawing", Reason: "Engineering function — not sales scope"},
				{Action: "manage_warranty", Reason: "Engineering function — not sales scope"},
				{Action: "manage_submittals", Reason: "Engineering function — not sales scope"},
				{Action: "manage_users", Reason: "Admin-only function"},
				{Action: "manage_billing", Reason: "Admin-only function"},
				{Action: "configure_products", Reason: "Engineering function — not sales scope"},
				{Action: "view_other_reps_pipeline", Reason: "Data isolation — own pipeline only"},
			},
			Escalation: []EscalationRule{
				{Condition: "deal_exceeds_threshold", Threshold: threshold(500000), Unit: "USD", EscalateTo: "gcp_admin", Reason: "Large deals require admin visibility"},
				{Condition: "territory_reassignment", EscalateTo: "gcp_admin", Reason: "Territory changes require admin approval"},
			},
		},
		domain.RoleContractor: {
			Label:       "Contractor",
			Description: "Building envelope contractor — project access, submittals, warranty status",
			Icon:        "HardHat",
			Color:       "#7C3AED",
			Allowed: actions(
				"load_entity",
				"view_own_dashboard", "view_own_projects",
				"download_shop_drawings", "view_warranty_status",
				"submit_warranty_claim", "view_product_catalog",
				"request_product_info", "update_project_status",
				"upload_field_photos", "view_own_submittals",
				"request_submittal_review", "view_installation_guides",
				"contact_gcp_engineer",
			),
			Denied: []Denial{
				{Action: "create_shop_drawing", Reason: "GCP engineers only"},
				{Action: "edit_shop_drawing", Reason: "GCP engineers only"},
				{Action: "view_other_contractors_data", Reason: "Data isolation — strict tenant boundary"},
				{Action: "manage_users", Reason: "Admin-only function"},
				{Action: "manage_billing", Reason: "Admin-only function"},
				{Action: "view_opportunities", Reason: "Sales team data — not contractor scope"},
				{Action: "view_pipeline", Reason: "Sales team data — not contractor scope"},
				{Action: "modify_system_config", Reason: "Admin-only function"},
				{Action: "configure_products", Reason: "Engineering function"},
			},
			Escalation: []EscalationRule{
				{Condition: "warranty_claim_dispute", EscalateTo: "gcp_engineer", Reason: "Warranty disputes require engineering review"},
				{Condition: "project_scope_change", EscalateTo: "gcp_engineer", Reason: "Scope changes affect shop drawings and product specs"},
			},
		},
	})
}

func actions(names ...domain.Action) []domain.Action {
	return names
}

func threshold(v float64) *float64 {
	return &v
}
