package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyd/internal/credential"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	validator := credential.NewValidator(credential.NewTrustStore())
	logger := slog.New(slog.DiscardHandler)
	h := New(validator, logger, nil, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/credentials/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleVerify(t *testing.T) {
	r := newTestRouter(t)

	body := `{
		"credential": {
			"@context": ["https://www.w3.org/2018/credentials/v1"],
			"type": ["VerifiableCredential", "IdentityCredential"],
			"issuer": "did:web:gov.example",
			"issuanceDate": "2024-01-15",
			"credentialSubject": {"id": "did:example:holder", "name": "J. Doe"},
			"proof": {"type": "Ed25519Signature2020", "verificationMethod": "did:web:gov.example#key-1"}
		},
		"options": {"check_issuer_trust": true, "verify_signature": true}
	}`
	w := doJSON(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp credential.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.IsValid)
	assert.Empty(t, resp.Errors)
	assert.NotEmpty(t, resp.Checks)
}

func TestHandleVerifyInvalidCredential(t *testing.T) {
	r := newTestRouter(t)

	// Missing proof and wrong base context: checks fail, HTTP is still 200.
	body := `{
		"credential": {
			"@context": ["https://example.com/custom"],
			"type": ["VerifiableCredential"],
			"issuer": "did:example:unknown",
			"issuanceDate": "2024-01-15",
			"credentialSubject": {"id": "did:example:holder"}
		},
		"options": {"verify_signature": true}
	}`
	w := doJSON(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp credential.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.IsValid)
	assert.NotEmpty(t, resp.Errors)
}

func TestHandleVerifyStringForms(t *testing.T) {
	r := newTestRouter(t)

	// @context and type as bare strings, issuer as an object.
	body := `{
		"credential": {
			"@context": "https://www.w3.org/2018/credentials/v1",
			"type": "VerifiableCredential",
			"issuer": {"id": "did:web:id.gov.example", "name": "Civil Registry"},
			"issuanceDate": "2024-06-01",
			"credentialSubject": {"id": "did:example:holder"}
		}
	}`
	w := doJSON(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp credential.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)
}

func TestHandleVerifyEnvelopeValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, `{"options":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp["error"])
	assert.Equal(t, "credential is required", resp["error_description"])
}
