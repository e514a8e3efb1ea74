package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"complyd/internal/analysis/metrics"
	"complyd/internal/audit"
	"complyd/internal/risk"
	"complyd/pkg/platform/httputil"
	"complyd/pkg/requestcontext"
)

// Scorer defines the interface for risk assessment.
type Scorer interface {
	Score(entityType, entityID string, factors []risk.Factor, ctx *risk.Context) (risk.Assessment, error)
}

// Handler wires the risk assessment endpoint to the scorer.
type Handler struct {
	scorer  Scorer
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   *audit.Publisher
}

// New constructs a risk handler with its dependencies.
func New(scorer Scorer, logger *slog.Logger, metrics *metrics.Metrics, publisher *audit.Publisher) *Handler {
	return &Handler{
		scorer:  scorer,
		logger:  logger,
		metrics: metrics,
		audit:   publisher,
	}
}

// Register mounts risk endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/risk/assess", h.HandleAssess)
}

// HandleAssess handles POST /risk/assess requests.
func (h *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[AssessRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOperation("risk_assess", "rejected")
		return
	}

	assessment, err := h.scorer.Score(req.EntityType, req.EntityID, req.Factors, req.Context)
	if err != nil {
		h.metrics.IncrementOperation("risk_assess", "rejected")
		h.logger.InfoContext(ctx, "risk assessment rejected",
			"request_id", requestID,
			"entity_type", req.EntityType,
			"entity_id", req.EntityID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveLatency("risk_assess", time.Since(start))
	h.metrics.IncrementOperation("risk_assess", "success")
	h.audit.Emit(audit.Event{
		Category:  audit.CategoryRiskAssessment,
		Action:    "assess",
		Target:    req.EntityType + "/" + req.EntityID,
		Outcome:   string(assessment.RiskLevel),
		RequestID: requestID,
	})

	h.logger.InfoContext(ctx, "risk assessment completed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"entity_type", req.EntityType,
		"entity_id", req.EntityID,
		"overall_score", assessment.OverallScore,
		"risk_level", assessment.RiskLevel,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, assessment)
}
