package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"complyd/internal/analysis/metrics"
	"complyd/internal/audit"
	"complyd/internal/pii"
	dErrors "complyd/pkg/domain-errors"
	"complyd/pkg/platform/httputil"
	"complyd/pkg/requestcontext"
)

// Scanner defines the interface for PII detection operations.
type Scanner interface {
	Detect(content string, opts pii.Options) pii.Result
	Redact(content string) pii.RedactResult
}

// Handler wires PII scan and redact endpoints to the detector.
type Handler struct {
	scanner         Scanner
	logger          *slog.Logger
	metrics         *metrics.Metrics
	audit           *audit.Publisher
	maxContentBytes int
}

// New constructs a PII handler with its dependencies.
func New(scanner Scanner, logger *slog.Logger, metrics *metrics.Metrics, publisher *audit.Publisher, maxContentBytes int) *Handler {
	return &Handler{
		scanner:         scanner,
		logger:          logger,
		metrics:         metrics,
		audit:           publisher,
		maxContentBytes: maxContentBytes,
	}
}

// Register mounts PII endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/pii/scan", h.HandleScan)
	r.Post("/pii/redact", h.HandleRedact)
}

// HandleScan handles POST /pii/scan requests.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ScanRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOperation("pii_scan", "rejected")
		return
	}
	if len(req.Content) > h.maxContentBytes {
		h.metrics.IncrementOperation("pii_scan", "rejected")
		httputil.WriteError(w, dErrors.New(dErrors.CodeTooLarge, "content exceeds the configured size limit"))
		return
	}

	result := h.scanner.Detect(req.Content, pii.Options{ContentType: req.ParsedContentType()})

	for severity, matches := range result.BySeverity {
		h.metrics.AddPIIMatches(string(severity), len(matches))
	}
	h.metrics.ObserveLatency("pii_scan", time.Since(start))
	h.metrics.IncrementOperation("pii_scan", "success")
	h.audit.Emit(audit.Event{
		Category:  audit.CategoryPIIScan,
		Action:    "scan",
		Target:    req.Context,
		Outcome:   scanOutcome(result),
		RequestID: requestID,
	})

	h.logger.InfoContext(ctx, "pii scan completed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"content_bytes", len(req.Content),
		"matches", len(result.Matches),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromScanResult(result))
}

// HandleRedact handles POST /pii/redact requests.
func (h *Handler) HandleRedact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ScanRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOperation("pii_redact", "rejected")
		return
	}
	if len(req.Content) > h.maxContentBytes {
		h.metrics.IncrementOperation("pii_redact", "rejected")
		httputil.WriteError(w, dErrors.New(dErrors.CodeTooLarge, "content exceeds the configured size limit"))
		return
	}

	result := h.scanner.Redact(req.Content)

	h.metrics.ObserveLatency("pii_redact", time.Since(start))
	h.metrics.IncrementOperation("pii_redact", "success")
	h.audit.Emit(audit.Event{
		Category:  audit.CategoryPIIRedact,
		Action:    "redact",
		Target:    req.Context,
		Outcome:   "success",
		RequestID: requestID,
	})

	h.logger.InfoContext(ctx, "pii redaction completed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"content_bytes", len(req.Content),
		"redacted", result.TotalRedacted,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, result)
}

func scanOutcome(result pii.Result) string {
	if result.HasPII {
		return "pii_detected"
	}
	return "clean"
}
