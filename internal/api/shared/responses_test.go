package shared_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

	shared.RespondWithJSON(rec, req, http.StatusOK, map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Run("includes trace id from context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))
		traceID := shared.GetTraceID(req.Context())
		require.NotEmpty(t, traceID)

		shared.RespondWithError(rec, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Task not found")
		assert.Contains(t, rec.Body.String(), traceID)
	})

	t.Run("omits trace id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

		shared.RespondWithError(rec, req, http.StatusBadRequest, "Invalid request format")

		assert.NotContains(t, rec.Body.String(), "trace_id")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil)

	cause := errors.New("dial tcp: postgres://user:secret@db/tasks unreachable")
	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Failed to remove task", cause)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Only the sanitized message reaches the client
	assert.Contains(t, rec.Body.String(), "Failed to remove task")
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := shared.SetTraceID(context.Background())

	traceID := shared.GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// A fresh context carries no trace ID
	assert.Empty(t, shared.GetTraceID(context.Background()))
}
