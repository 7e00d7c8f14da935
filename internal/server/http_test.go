package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/storage"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := log.New(io.Discard, "", 0)
	return New(engine.NewService(db), logger).Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func createTask(t *testing.T, h http.Handler, text, difficulty string, deadline time.Time) int64 {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{
		"text":       text,
		"difficulty": difficulty,
		"deadline":   deadline.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]any](t, rec)
	return int64(created["id"].(float64))
}

func TestCreateAndListTasks(t *testing.T) {
	h := newTestServer(t)

	deadline := time.Now().Add(24 * time.Hour)
	createTask(t, h, "Ship the release", "hard", deadline.Add(time.Hour))
	createTask(t, h, "Reply to mail", "easy", deadline)

	rec := doJSON(t, h, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]map[string]any](t, rec)
	require.Len(t, tasks, 2)
	// Sorted by ascending deadline.
	assert.Equal(t, "Reply to mail", tasks[0]["text"])
	assert.Equal(t, "Ship the release", tasks[1]["text"])
}

func TestCreateTaskValidation(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{
		"text":       "",
		"difficulty": "easy",
		"deadline":   time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{
		"text":       "no deadline",
		"difficulty": "easy",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteTaskFlow(t *testing.T) {
	h := newTestServer(t)

	id := createTask(t, h, "Slay the dragon", "hard", time.Now().Add(24*time.Hour))

	rec := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[map[string]any](t, rec)
	assert.Equal(t, float64(100), res["expEarned"])
	assert.Equal(t, true, res["leveledUp"])
	assert.Equal(t, float64(2), res["newLevel"])

	// Completing the same card again is NotFound, not a no-op.
	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[map[string]any](t, rec)
	assert.Equal(t, float64(2), profile["level"])
	assert.Equal(t, float64(0), profile["experience"])
	assert.Equal(t, float64(1), profile["totalTasksCompleted"])
}

func TestDeleteTask(t *testing.T) {
	h := newTestServer(t)

	id := createTask(t, h, "Old chore", "easy", time.Now().Add(time.Hour))
	rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTask(t *testing.T) {
	h := newTestServer(t)

	id := createTask(t, h, "Draft", "easy", time.Now().Add(time.Hour))
	rec := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), map[string]any{
		"text":       "Final version",
		"difficulty": "hard",
		"deadline":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/tasks", nil)
	tasks := decode[[]map[string]any](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Final version", tasks[0]["text"])
	assert.Equal(t, "hard", tasks[0]["difficulty"])
}

func TestHistoryAndStats(t *testing.T) {
	h := newTestServer(t)

	for _, d := range []string{"easy", "medium"} {
		id := createTask(t, h, "stat "+d, d, time.Now().Add(time.Hour))
		rec := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", id), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]map[string]any](t, rec)
	assert.Len(t, entries, 2)

	rec = doJSON(t, h, http.MethodGet, "/api/history/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[map[string]any](t, rec)
	assert.Equal(t, float64(2), stats["totalCompleted"])
	assert.Equal(t, float64(90), stats["totalExpEarned"])
	assert.Equal(t, float64(1), stats["easyCount"])
	assert.Equal(t, float64(1), stats["mediumCount"])
}

func TestResetAll(t *testing.T) {
	h := newTestServer(t)

	deadline := time.Now().Add(24 * time.Hour)
	done := createTask(t, h, "finish me", "easy", deadline)
	rec := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", done), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	createTask(t, h, "left active", "easy", deadline)

	rec = doJSON(t, h, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[map[string]any](t, rec)
	assert.Equal(t, float64(1), res["deletedTodos"])
	assert.Equal(t, float64(1), res["deletedHistory"])

	rec = doJSON(t, h, http.MethodGet, "/api/profile", nil)
	profile := decode[map[string]any](t, rec)
	assert.Equal(t, float64(1), profile["level"])
	assert.Equal(t, float64(0), profile["experience"])
}

func TestOverdueCount(t *testing.T) {
	h := newTestServer(t)

	createTask(t, h, "late", "easy", time.Now().Add(-time.Hour))
	createTask(t, h, "on time", "easy", time.Now().Add(time.Hour))

	rec := doJSON(t, h, http.MethodGet, "/api/tasks/overdue", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[map[string]int](t, rec)
	assert.Equal(t, 1, res["overdueCount"])
}
