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

	"complyd/internal/pii"
)

func newTestRouter(t *testing.T, maxContentBytes int) chi.Router {
	t.Helper()
	detector := pii.NewDetector(pii.NewLibrary())
	logger := slog.New(slog.DiscardHandler)
	h := New(detector, logger, nil, nil, maxContentBytes)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleScan(t *testing.T) {
	r := newTestRouter(t, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/pii/scan", `{"content":"SSN: 123-45-6789 reach me at jane.doe@corp.io"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.PIIDetected)
	assert.Equal(t, "high", resp.RiskLevel)
	assert.Equal(t, 2, resp.RuleBased.TotalItems)
	require.Len(t, resp.RuleBased.Findings, 2)

	// First-seen order: the SSN precedes the email in the content.
	ssn := resp.RuleBased.Findings[0]
	assert.Equal(t, "ssn", ssn.Type)
	assert.Equal(t, 1, ssn.Count)
	assert.Equal(t, "high", ssn.Risk)
	require.Len(t, ssn.Samples, 1)
	assert.NotContains(t, ssn.Samples[0], "123-45-6789")

	assert.NotEmpty(t, resp.Recommendations)
}

func TestHandleScanClean(t *testing.T) {
	r := newTestRouter(t, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/pii/scan", `{"content":"release notes for the reporting module"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.PIIDetected)
	assert.Equal(t, "low", resp.RiskLevel)
	assert.Equal(t, 0, resp.RuleBased.TotalItems)
	assert.Empty(t, resp.RuleBased.Findings)
}

func TestHandleScanValidation(t *testing.T) {
	r := newTestRouter(t, 1<<20)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "empty content", body: `{"content":""}`, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "unknown context hint", body: `{"content":"hello","context":"binary"}`, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "malformed body", body: `{"content":`, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/pii/scan", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp["error"])
		})
	}
}

func TestHandleScanContentTooLarge(t *testing.T) {
	r := newTestRouter(t, 16)

	w := doJSON(t, r, http.MethodPost, "/pii/scan", `{"content":"this content is longer than sixteen bytes"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleRedact(t *testing.T) {
	r := newTestRouter(t, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/pii/redact", `{"content":"SSN: 123-45-6789"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp pii.RedactResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotContains(t, resp.Redacted, "123-45-6789")
	assert.Equal(t, 1, resp.TotalRedacted)
	require.Len(t, resp.Redactions, 1)
	assert.Equal(t, "ssn", resp.Redactions[0].Type)
	assert.Equal(t, 1, resp.Redactions[0].Count)
}

func TestOverallRisk(t *testing.T) {
	tests := []struct {
		name     string
		severity pii.Severity
		want     string
	}{
		{name: "critical maps to high", severity: pii.SeverityCritical, want: "high"},
		{name: "high stays high", severity: pii.SeverityHigh, want: "high"},
		{name: "medium stays medium", severity: pii.SeverityMedium, want: "medium"},
		{name: "low stays low", severity: pii.SeverityLow, want: "low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pii.Result{BySeverity: map[pii.Severity][]pii.Match{
				tt.severity: {{Type: "x", Severity: tt.severity}},
			}}
			assert.Equal(t, tt.want, overallRisk(result))
		})
	}
}
