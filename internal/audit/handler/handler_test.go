package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyd/internal/audit"
	"complyd/pkg/platform/sentinel"
)

type failingStore struct{}

func (failingStore) Append(context.Context, audit.Event) error { return nil }
func (failingStore) ListRecent(context.Context, int) ([]audit.Event, error) {
	return nil, sentinel.ErrUnavailable
}

func newTestRouter(t *testing.T, store audit.Store) chi.Router {
	t.Helper()
	h := New(store, slog.New(slog.DiscardHandler))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestHandleListEvents(t *testing.T) {
	store := audit.NewMemoryStore()
	for _, action := range []string{"scan", "redact", "check"} {
		require.NoError(t, store.Append(t.Context(), audit.Event{
			ID:        uuid.New(),
			Timestamp: time.Now(),
			Category:  audit.CategoryPIIScan,
			Action:    action,
			Outcome:   "success",
		}))
	}
	r := newTestRouter(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/events", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Events, 3)
	assert.Equal(t, "pii_scan", resp.Events[0].Category)
}

func TestHandleListEventsLimit(t *testing.T) {
	store := audit.NewMemoryStore()
	for i := 0; i < 10; i++ {
		require.NoError(t, store.Append(t.Context(), audit.Event{ID: uuid.New(), Timestamp: time.Now()}))
	}
	r := newTestRouter(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/events?limit=4", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Events, 4)
}

func TestHandleListEventsBadLimit(t *testing.T) {
	r := newTestRouter(t, audit.NewMemoryStore())

	for _, limit := range []string{"0", "-1", "9999", "abc"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/events?limit="+limit, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, limit)
	}
}

func TestHandleListEventsUnavailable(t *testing.T) {
	r := newTestRouter(t, failingStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp["error"])
}
