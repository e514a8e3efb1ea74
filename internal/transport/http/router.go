// Package httptransport composes the HTTP API surface. It wires middleware
// and per-module handlers onto one router; business logic stays in the
// engine packages.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	audithandler "complyd/internal/audit/handler"
	credentialhandler "complyd/internal/credential/handler"
	piihandler "complyd/internal/pii/handler"
	riskhandler "complyd/internal/risk/handler"
	ruleshandler "complyd/internal/rules/handler"
	"complyd/pkg/platform/httputil"
	"complyd/pkg/platform/middleware/auth"
	"complyd/pkg/platform/middleware/metadata"
	"complyd/pkg/platform/middleware/requestid"
)

// Registrar mounts a module's endpoints on a router.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router needs.
type Deps struct {
	PII        *piihandler.Handler
	Compliance *ruleshandler.Handler
	Risk       *riskhandler.Handler
	Credential *credentialhandler.Handler
	Audit      *audithandler.Handler

	// JWTSigningKey enables bearer auth on /v1 routes when non-empty.
	JWTSigningKey string
}

// NewRouter builds the complete route tree. Health and metrics stay outside
// the authenticated group so probes and scrapers need no token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(auth.Middleware(deps.JWTSigningKey))
		for _, h := range []Registrar{deps.PII, deps.Compliance, deps.Risk, deps.Credential, deps.Audit} {
			h.Register(v1)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
