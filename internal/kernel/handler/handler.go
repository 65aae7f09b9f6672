package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"saintkernel/internal/audit"
	"saintkernel/internal/boundary"
	"saintkernel/internal/domain"
	"saintkernel/internal/kernel"
	dErrors "saintkernel/pkg/domainerrors"
	"saintkernel/pkg/platform/httputil"
	"saintkernel/pkg/platform/middleware/metadata"
	"saintkernel/pkg/requestcontext"
)

// Service defines the kernel operations the handler needs.
type Service interface {
	Validate(ctx context.Context, req domain.ValidationRequest) (domain.ValidationResponse, error)
	AuditLog(ctx context.Context) ([]audit.Entry, error)
	RecentAuditEntries(ctx context.Context, n int) ([]audit.Entry, error)
	AuditEntriesByRole(ctx context.Context, role domain.Role) ([]audit.Entry, error)
	AuditEntriesByResult(ctx context.Context, result domain.Result) ([]audit.Entry, error)
	Boundaries() *boundary.Table
}

// Handler wires kernel endpoints to the kernel service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a kernel handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts kernel endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kernel/validate", h.HandleValidate)
	r.Get("/kernel/audit", h.HandleAuditLog)
	r.Get("/kernel/audit/recent", h.HandleRecentAudit)
	r.Get("/kernel/boundaries", h.HandleBoundaries)
	r.Get("/kernel/boundaries/{role}", h.HandleBoundary)
	r.Get("/kernel/invariants", h.HandleInvariants)
}

// HandleValidate handles POST /kernel/validate. Structural errors (missing
// action or role) return 400 and are never audited; everything else flows
// through the kernel and is audited regardless of outcome.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger)
	if !ok {
		return
	}

	domainReq := req.Parsed()
	domainReq.Context = withClientAttrs(ctx, domainReq.Context)

	res, err := h.service.Validate(ctx, domainReq)
	if err != nil {
		h.logger.ErrorContext(ctx, "kernel validation failed",
			"request_id", requestcontext.RequestID(ctx),
			"action", req.Action,
			"role", req.Role,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "validation failed", err))
		return
	}

	h.logger.InfoContext(ctx, "kernel decision",
		"request_id", requestcontext.RequestID(ctx),
		"action", req.Action,
		"role", req.Role,
		"result", res.Result,
		"audit_id", res.AuditID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromValidation(res))
}

// HandleAuditLog handles GET /kernel/audit with optional role and result
// filters.
func (h *Handler) HandleAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		entries []audit.Entry
		err     error
	)
	switch {
	case r.URL.Query().Get("role") != "":
		role, parseErr := domain.ParseRole(r.URL.Query().Get("role"))
		if parseErr != nil {
			httputil.WriteError(w, parseErr)
			return
		}
		entries, err = h.service.AuditEntriesByRole(ctx, role)
	case r.URL.Query().Get("result") != "":
		result, parseErr := parseResult(r.URL.Query().Get("result"))
		if parseErr != nil {
			httputil.WriteError(w, parseErr)
			return
		}
		entries, err = h.service.AuditEntriesByResult(ctx, result)
	default:
		entries, err = h.service.AuditLog(ctx)
	}
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "audit read failed", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromEntries(entries))
}

// HandleRecentAudit handles GET /kernel/audit/recent?count=N.
func (h *Handler) HandleRecentAudit(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "count must be a non-negative integer"))
		return
	}

	entries, err := h.service.RecentAuditEntries(r.Context(), count)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "audit read failed", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromEntries(entries))
}

// HandleBoundaries handles GET /kernel/boundaries.
func (h *Handler) HandleBoundaries(w http.ResponseWriter, r *http.Request) {
	table := h.service.Boundaries()
	out := make([]BoundaryResponse, 0)
	for _, role := range table.Roles() {
		if b, ok := table.Boundary(role); ok {
			out = append(out, FromBoundary(role, b))
		}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleBoundary handles GET /kernel/boundaries/{role}.
func (h *Handler) HandleBoundary(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	b, ok := h.service.Boundaries().Boundary(role)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no boundary defined for role"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromBoundary(role, b))
}

// HandleInvariants handles GET /kernel/invariants.
func (h *Handler) HandleInvariants(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, kernel.Invariants())
}

func parseResult(s string) (domain.Result, error) {
	switch domain.Result(s) {
	case domain.ResultAllowed, domain.ResultDenied, domain.ResultEscalate:
		return domain.Result(s), nil
	}
	return "", dErrors.New(dErrors.CodeBadRequest, "result must be ALLOWED, DENIED, or ESCALATE")
}

// withClientAttrs enriches the request context with client metadata captured
// by middleware so audit entries record who called, not just what they asked.
func withClientAttrs(ctx context.Context, rc *domain.RequestContext) *domain.RequestContext {
	ip := metadata.GetClientIP(ctx)
	browser := metadata.GetBrowser(ctx)
	if ip == "" && browser == "" {
		return rc
	}
	if rc == nil {
		rc = &domain.RequestContext{}
	}
	if rc.Attrs == nil {
		rc.Attrs = make(map[string]string, 2)
	}
	if ip != "" {
		rc.Attrs["client_ip"] = ip
	}
	if browser != "" {
		rc.Attrs["client_browser"] = browser
	}
	return rc
}
