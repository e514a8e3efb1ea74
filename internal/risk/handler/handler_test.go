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

	"complyd/internal/risk"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	h := New(risk.NewScorer(), logger, nil, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/risk/assess", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAssess(t *testing.T) {
	r := newTestRouter(t)

	body := `{
		"entity_type": "customer",
		"entity_id": "cust-042",
		"factors": [
			{"name": "sanctions exposure", "category": "compliance", "likelihood": 4, "impact": 5},
			{"name": "manual onboarding", "category": "operational", "likelihood": 2, "impact": 2}
		],
		"context": {"previous_incidents": 1, "jurisdiction": "EU"}
	}`
	w := doJSON(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp risk.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "customer", resp.EntityType)
	assert.Equal(t, "cust-042", resp.EntityID)
	// avg=12, max=20, round(12*0.6+20*0.4)=15, +2 for the incident.
	assert.Equal(t, 17, resp.OverallScore)
	assert.Equal(t, risk.LevelCritical, resp.RiskLevel)
	require.Len(t, resp.Factors, 2)
	assert.Equal(t, 20, resp.Factors[0].Score)
	assert.Contains(t, resp.ByCategory, "compliance")
	assert.NotEmpty(t, resp.Recommendations)
	assert.NotEmpty(t, resp.RegulatoryImplications)
}

func TestHandleAssessValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing entity_type",
			body:    `{"entity_id":"a","factors":[{"name":"f","likelihood":1,"impact":1}]}`,
			wantMsg: "entity_type is required",
		},
		{
			name:    "missing entity_id",
			body:    `{"entity_type":"vendor","factors":[{"name":"f","likelihood":1,"impact":1}]}`,
			wantMsg: "entity_id is required",
		},
		{
			name:    "empty factors",
			body:    `{"entity_type":"vendor","entity_id":"a","factors":[]}`,
			wantMsg: "at least one risk factor is required",
		},
		{
			name:    "likelihood out of range",
			body:    `{"entity_type":"vendor","entity_id":"a","factors":[{"name":"f","likelihood":6,"impact":1}]}`,
			wantMsg: "factors[0].likelihood must be between 1 and 5",
		},
		{
			name:    "impact out of range",
			body:    `{"entity_type":"vendor","entity_id":"a","factors":[{"name":"f","likelihood":1,"impact":0}]}`,
			wantMsg: "factors[0].impact must be between 1 and 5",
		},
		{
			name:    "unnamed factor",
			body:    `{"entity_type":"vendor","entity_id":"a","factors":[{"name":" ","likelihood":1,"impact":1}]}`,
			wantMsg: "factors[0].name is required",
		},
		{
			name:    "negative incidents",
			body:    `{"entity_type":"vendor","entity_id":"a","factors":[{"name":"f","likelihood":1,"impact":1}],"context":{"previous_incidents":-1}}`,
			wantMsg: "context.previous_incidents must not be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "validation_error", resp["error"])
			assert.Equal(t, tt.wantMsg, resp["error_description"])
		})
	}
}

func TestHandleAssessDefaultsCategory(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, `{"entity_type":"system","entity_id":"svc-1","factors":[{"name":"unpatched hosts","likelihood":3,"impact":3}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp risk.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.ByCategory, "other")
}
