package server

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todolist/internal/app"
	"github.com/thenoetrevino/todolist/internal/config"
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		Addr:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
		BodyLimit:       "64K",
	}
}

func setupServer(t *testing.T) *Server {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	a := app.New(db)
	svc := Services{
		Tasks:     a.TaskService,
		Labels:    a.LabelService,
		TaskLists: a.TaskListService,
		Ping:      a.Ping,
	}
	return New(testConfig(), svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorBody](t, rec).Error.Code
}

// seed creates task list 1 plus the labels urgent and chores
func seed(t *testing.T, s *Server) {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/task-lists", `{"name":"Home"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, s, http.MethodPost, "/task/labels", `{"name":"urgent","color":"#ff0000"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, s, http.MethodPost, "/task/labels", `{"name":"chores","color":"#00ff00"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// ============================================================================
// LABELS
// ============================================================================

func TestLabelScenario(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	rec := do(t, s, http.MethodPost, "/task/labels", `{"name":"urgent","color":"#00ff88"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, CodeAlreadyExists, errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), "name")

	rec = do(t, s, http.MethodPost, "/task/labels", `{"name":"calm","color":"#ff0000"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "color")

	rec = do(t, s, http.MethodGet, "/task/labels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	labels := decode[[]LabelDTO](t, rec)
	assert.Equal(t, []LabelDTO{{Name: "urgent", Color: "#ff0000"}, {Name: "chores", Color: "#00ff00"}}, labels)
}

func TestCreateLabelValidation(t *testing.T) {
	s := setupServer(t)

	for _, body := range []string{
		`{"name":"","color":"#ff0000"}`,
		`{"name":"ok","color":"red"}`,
		`{"name":"` + strings.Repeat("x", 51) + `","color":"#ff0000"}`,
	} {
		rec := do(t, s, http.MethodPost, "/task/labels", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, CodeValidation, errorCode(t, rec), body)
	}

	rec := do(t, s, http.MethodPost, "/task/labels", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeBadRequest, errorCode(t, rec))
}

// ============================================================================
// TASKS
// ============================================================================

func TestTaskLifecycle(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	rec := do(t, s, http.MethodPost, "/task", `{
		"title": "Buy milk",
		"description": "2 liters",
		"dueDate": "2024-05-01T10:00:00Z",
		"priority": "HIGH",
		"taskListId": 1,
		"labels": ["urgent"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[TaskResponse](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "TODO", created.Status)
	assert.Equal(t, "HIGH", created.Priority)
	assert.Equal(t, TaskListSummary{ID: 1, Name: "Home"}, created.TaskList)
	assert.Equal(t, []LabelDTO{{Name: "urgent", Color: "#ff0000"}}, created.Labels)
	require.NotNil(t, created.DueDate)
	require.NotNil(t, created.UpdatedAt)

	path := "/task/" + itoa(created.ID)
	rec = do(t, s, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decode[TaskResponse](t, rec)
	assert.Equal(t, created.Title, fetched.Title)
	assert.True(t, fetched.DueDate.Equal(*created.DueDate))

	rec = do(t, s, http.MethodPut, path, `{"title":"Buy oat milk","status":"DONE","labels":["chores"]}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodGet, path, "")
	updated := decode[TaskResponse](t, rec)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "DONE", updated.Status)
	assert.Equal(t, "MEDIUM", updated.Priority)
	assert.Nil(t, updated.DueDate)
	assert.Equal(t, []LabelDTO{{Name: "chores", Color: "#00ff00"}}, updated.Labels)
	assert.Equal(t, created.TaskList, updated.TaskList)
	assert.True(t, updated.UpdatedAt.After(*created.UpdatedAt))

	rec = do(t, s, http.MethodGet, "/task", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]TaskResponse](t, rec), 1)

	rec = do(t, s, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, s, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, rec))

	rec = do(t, s, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code, "delete is idempotent")
}

func TestCreateTaskDuplicateTitle(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	body := `{"title":"Buy milk","taskListId":1}`
	rec := do(t, s, http.MethodPost, "/task", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, s, http.MethodPost, "/task", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, CodeAlreadyExists, errorCode(t, rec))

	rec = do(t, s, http.MethodGet, "/task", "")
	assert.Len(t, decode[[]TaskResponse](t, rec), 1)
}

func TestCreateTaskErrors(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"missing title", `{"taskListId":1}`, http.StatusBadRequest, CodeValidation},
		{"missing list", `{"title":"x"}`, http.StatusBadRequest, CodeValidation},
		{"bad status", `{"title":"x","taskListId":1,"status":"LATER"}`, http.StatusBadRequest, CodeValidation},
		{"bad due date", `{"title":"x","taskListId":1,"dueDate":"tomorrow"}`, http.StatusBadRequest, CodeBadRequest},
		{"unknown list", `{"title":"x","taskListId":99}`, http.StatusNotFound, CodeNotFound},
		{"unknown label", `{"title":"x","taskListId":1,"labels":["nope"]}`, http.StatusNotFound, CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/task", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestTaskPathErrors(t *testing.T) {
	s := setupServer(t)

	rec := do(t, s, http.MethodGet, "/task/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPut, "/task/7", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ============================================================================
// ADD / REMOVE LABEL
// ============================================================================

func TestAddAndRemoveLabel(t *testing.T) {
	s := setupServer(t)
	seed(t, s)

	rec := do(t, s, http.MethodPost, "/task", `{"title":"Tag me","taskListId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	path := "/task/" + itoa(decode[TaskResponse](t, rec).ID)

	rec = do(t, s, http.MethodPost, path+"/add-label/urgent", "")
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = do(t, s, http.MethodPost, path+"/add-label/urgent", "")
	assert.Equal(t, http.StatusNoContent, rec.Code, "attaching twice is a no-op")
	rec = do(t, s, http.MethodPost, path+"/add-label", `{"name":"chores"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodGet, path, "")
	task := decode[TaskResponse](t, rec)
	assert.Len(t, task.Labels, 2)

	rec = do(t, s, http.MethodDelete, path+"/labels/urgent", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, s, http.MethodGet, path, "")
	assert.Equal(t, []LabelDTO{{Name: "chores", Color: "#00ff00"}}, decode[TaskResponse](t, rec).Labels)

	rec = do(t, s, http.MethodPost, path+"/add-label/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, s, http.MethodPost, "/task/999/add-label/urgent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, s, http.MethodPost, path+"/add-label", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ============================================================================
// TASK LISTS / OPS
// ============================================================================

func TestTaskListRoutes(t *testing.T) {
	s := setupServer(t)

	rec := do(t, s, http.MethodPost, "/task-lists", `{"name":"Work"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	list := decode[TaskListResponse](t, rec)

	rec = do(t, s, http.MethodGet, "/task-lists/"+itoa(list.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, s, http.MethodGet, "/task-lists", "")
	assert.Len(t, decode[[]TaskListResponse](t, rec), 1)
	rec = do(t, s, http.MethodGet, "/task-lists/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, s, http.MethodPost, "/task-lists", `{"name":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthzAndMetrics(t *testing.T) {
	s := setupServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	do(t, s, http.MethodGet, "/task/abc", "")

	rec = do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[MetricsSnapshot](t, rec)
	assert.GreaterOrEqual(t, snap.Requests, int64(2))
	assert.Equal(t, int64(1), snap.ClientErrors)
}

func TestHealthzUnavailable(t *testing.T) {
	svc := Services{Ping: func(context.Context) error { return errors.New("closed") }}
	s := New(testConfig(), svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGzipBody(t *testing.T) {
	s := setupServer(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(`{"name":"Zipped"}`))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/task-lists", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderContentEncoding, "gzip")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Zipped", decode[TaskListResponse](t, rec).Name)
}

// ============================================================================
// ERROR MAPPING
// ============================================================================

type brokenTasks struct {
	taskservice.Service
}

func (brokenTasks) GetAllTasks(context.Context) ([]*models.Task, error) {
	return nil, errors.New("database is locked")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	s := New(testConfig(), Services{Tasks: brokenTasks{}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := do(t, s, http.MethodGet, "/task", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, CodeInternal, errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "locked")
	assert.Equal(t, int64(1), s.Metrics().GetSnapshot().ServerErrors)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{models.Invalid("bad"), http.StatusBadRequest, CodeValidation},
		{taskservice.ErrTaskNotFound, http.StatusNotFound, CodeNotFound},
		{taskservice.ErrTaskTitleExists, http.StatusConflict, CodeAlreadyExists},
		{echo.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_405"},
		{errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		status, code, _ := classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
