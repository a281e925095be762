package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTool struct {
	name   string
	result string
	err    error
}

func (s *stubTool) Name() string                     { return s.name }
func (s *stubTool) Description() string              { return "stub" }
func (s *stubTool) Configuration() map[string]string { return nil }
func (s *stubTool) Parameters() []entities.Parameter {
	return []entities.Parameter{{Name: "query", Type: "string", Required: true}}
}
func (s *stubTool) Execute(arguments string) (string, error) {
	return s.result, s.err
}

func newTestServer(tools ...entities.Tool) *echo.Echo {
	e := echo.New()
	controller := NewToolController(zap.NewNop(), tools)
	controller.RegisterRoutes(e)
	return e
}

func TestListToolsHandler(t *testing.T) {
	e := newTestServer(&stubTool{name: "JobSearch"}, &stubTool{name: "JobQuery"})

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []toolSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
}

func TestExecuteToolHandler_Success(t *testing.T) {
	e := newTestServer(&stubTool{name: "JobQuery", result: `{"jobs": []}`})

	req := httptest.NewRequest(http.MethodPost, "/api/tools/JobQuery", strings.NewReader(`{"query": "go jobs"}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs": []}`, rec.Body.String())
}

func TestExecuteToolHandler_NonJSONResultServedAsPlainText(t *testing.T) {
	e := newTestServer(&stubTool{name: "JobQuery", result: "3 jobs found"})

	req := httptest.NewRequest(http.MethodPost, "/api/tools/JobQuery", strings.NewReader(`{"query": "x"}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3 jobs found", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
}

func TestExecuteToolHandler_UnknownTool(t *testing.T) {
	e := newTestServer(&stubTool{name: "JobQuery"})

	req := httptest.NewRequest(http.MethodPost, "/api/tools/Nope", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExecuteToolHandler_ValidationErrorMapsToBadRequest(t *testing.T) {
	e := newTestServer(&stubTool{
		name: "JobSearch",
		err:  errors.ValidationErrorf("position: must be a string"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/tools/JobSearch", strings.NewReader(`{"position": 1}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "position: must be a string")
}
