package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"complyd/internal/analysis/metrics"
	"complyd/internal/audit"
	"complyd/internal/credential"
	"complyd/pkg/platform/httputil"
	"complyd/pkg/requestcontext"
)

// Verifier defines the interface for credential validation.
type Verifier interface {
	Validate(cred credential.Credential, opts credential.Options) credential.ValidationResult
}

// Handler wires the credential verification endpoint to the validator.
type Handler struct {
	verifier Verifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	audit    *audit.Publisher
}

// New constructs a credential handler with its dependencies.
func New(verifier Verifier, logger *slog.Logger, metrics *metrics.Metrics, publisher *audit.Publisher) *Handler {
	return &Handler{
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
		audit:    publisher,
	}
}

// Register mounts credential endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/credentials/verify", h.HandleVerify)
}

// HandleVerify handles POST /credentials/verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOperation("credential_verify", "rejected")
		return
	}

	result := h.verifier.Validate(*req.Credential, req.Options)

	h.metrics.ObserveLatency("credential_verify", time.Since(start))
	h.metrics.IncrementOperation("credential_verify", "success")
	h.audit.Emit(audit.Event{
		Category:  audit.CategoryCredentialCheck,
		Action:    "verify",
		Target:    req.Credential.IssuerID(),
		Outcome:   verifyOutcome(result),
		RequestID: requestID,
	})

	h.logger.InfoContext(ctx, "credential verification completed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"issuer", req.Credential.IssuerID(),
		"is_valid", result.IsValid,
		"checks", len(result.Checks),
		"warnings", len(result.Warnings),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, result)
}

func verifyOutcome(result credential.ValidationResult) string {
	if result.IsValid {
		return "valid"
	}
	return "invalid"
}
