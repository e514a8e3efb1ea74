package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"complyd/internal/analysis/metrics"
	"complyd/internal/audit"
	"complyd/internal/regulation"
	"complyd/internal/rules"
	dErrors "complyd/pkg/domain-errors"
	"complyd/pkg/platform/httputil"
	"complyd/pkg/requestcontext"
)

// Evaluator defines the interface for compliance evaluation.
type Evaluator interface {
	Evaluate(content string, frameworkIDs []string) (rules.Evaluation, error)
}

// Handler wires compliance endpoints to the rule engine.
type Handler struct {
	engine          Evaluator
	catalog         *regulation.Catalog
	cache           *Cache
	logger          *slog.Logger
	metrics         *metrics.Metrics
	audit           *audit.Publisher
	maxContentBytes int
}

// New constructs a compliance handler with its dependencies. cache may be
// nil when Redis is not configured.
func New(engine Evaluator, catalog *regulation.Catalog, cache *Cache, logger *slog.Logger, metrics *metrics.Metrics, publisher *audit.Publisher, maxContentBytes int) *Handler {
	return &Handler{
		engine:          engine,
		catalog:         catalog,
		cache:           cache,
		logger:          logger,
		metrics:         metrics,
		audit:           publisher,
		maxContentBytes: maxContentBytes,
	}
}

// Register mounts compliance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/check", h.HandleCheck)
	r.Get("/frameworks", h.HandleListFrameworks)
}

// HandleCheck handles POST /compliance/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOperation("compliance_check", "rejected")
		return
	}
	if len(req.Content) > h.maxContentBytes {
		h.metrics.IncrementOperation("compliance_check", "rejected")
		httputil.WriteError(w, dErrors.New(dErrors.CodeTooLarge, "content exceeds the configured size limit"))
		return
	}

	content := req.EvaluatedContent()
	key := cacheKey(content, req.Frameworks)
	if resp, hit := h.cache.Get(ctx, key); hit {
		h.metrics.IncrementOperation("compliance_check", "cache_hit")
		h.logger.InfoContext(ctx, "compliance check served from cache",
			"request_id", requestID,
			"frameworks", req.Frameworks,
		)
		httputil.WriteJSON(w, http.StatusOK, resp)
		return
	}

	eval, err := h.engine.Evaluate(content, req.Frameworks)
	if err != nil {
		h.metrics.IncrementOperation("compliance_check", "rejected")
		h.logger.InfoContext(ctx, "compliance check rejected",
			"request_id", requestID,
			"frameworks", req.Frameworks,
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		return
	}

	resp := FromEvaluation(eval, req.Frameworks)
	h.cache.Set(ctx, key, resp)

	h.metrics.ObserveLatency("compliance_check", time.Since(start))
	h.metrics.IncrementOperation("compliance_check", "success")
	h.audit.Emit(audit.Event{
		Category:  audit.CategoryComplianceCheck,
		Action:    "check",
		Target:    req.Target,
		Outcome:   string(eval.OverallStatus),
		RequestID: requestID,
	})

	h.logger.InfoContext(ctx, "compliance check completed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"target", req.Target,
		"frameworks", req.Frameworks,
		"overall_status", eval.OverallStatus,
		"score", resp.Score,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleListFrameworks handles GET /frameworks requests.
func (h *Handler) HandleListFrameworks(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromCatalog(h.catalog.Frameworks()))
}
