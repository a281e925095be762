package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hirebot/hirebot/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueryTool_MissingEndpointFailsConstruction(t *testing.T) {
	clearWebhookEnv(t)

	_, err := NewJobQueryTool("JobQuery", "test", map[string]string{}, newTestLogger())
	require.Error(t, err)
	assert.IsType(t, &errors.ConfigurationError{}, err)
}

func TestJobQueryTool_EndpointPrecedence(t *testing.T) {
	clearWebhookEnv(t)

	var specificHits, genericHits int
	specific := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		specificHits++
		w.Write([]byte(`{}`))
	}))
	defer specific.Close()
	generic := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		genericHits++
		w.Write([]byte(`{}`))
	}))
	defer generic.Close()

	t.Setenv("N8N_JOB_SEARCH_WEBHOOK_URL", specific.URL)
	t.Setenv("N8N_WEBHOOK_URL", generic.URL)

	// The env vars also win over explicit constructor configuration.
	config := map[string]string{"webhook_url": generic.URL}
	tool, err := NewJobQueryTool("JobQuery", "test", config, newTestLogger())
	require.NoError(t, err)

	_, err = tool.Execute(`{"query": "remote go jobs"}`)
	require.NoError(t, err)
	assert.Equal(t, 1, specificHits)
	assert.Equal(t, 0, genericHits)
}

func TestJobQueryTool_ValidationErrors(t *testing.T) {
	clearWebhookEnv(t)

	config := map[string]string{"webhook_url": "http://localhost:5678"}
	tool, err := NewJobQueryTool("JobQuery", "test", config, newTestLogger())
	require.NoError(t, err)

	for _, arguments := range []string{`{}`, `{"query": ""}`, `{"query": "   "}`, `{"query": 42}`, `not json`} {
		_, err := tool.Execute(arguments)
		require.Error(t, err, "arguments %q should be rejected", arguments)
		assert.IsType(t, &errors.ValidationError{}, err)
		assert.Contains(t, err.Error(), "query: must be a non-empty string")
	}
}

func TestJobQueryTool_ReturnsUpstreamBodyUnwrapped(t *testing.T) {
	clearWebhookEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// The outbound body is the bare query object, no metadata.
		assert.JSONEq(t, `{"query": "x"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs":[1,2,3]}`))
	}))
	defer server.Close()

	tool, err := NewJobQueryTool("JobQuery", "test", map[string]string{"webhook_url": server.URL}, newTestLogger())
	require.NoError(t, err)

	result, err := tool.Execute(`{"query": "x"}`)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"jobs\": [\n    1,\n    2,\n    3\n  ]\n}", result)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	_, hasSuccess := decoded["success"]
	assert.False(t, hasSuccess, "free-text results must not be wrapped in an envelope")
}

func TestJobQueryTool_NonJSONBodyPassesThrough(t *testing.T) {
	clearWebhookEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("3 jobs found"))
	}))
	defer server.Close()

	tool, err := NewJobQueryTool("JobQuery", "test", map[string]string{"webhook_url": server.URL}, newTestLogger())
	require.NoError(t, err)

	result, err := tool.Execute(`{"query": "anything"}`)
	require.NoError(t, err)
	assert.Equal(t, "3 jobs found", result)
}

func TestJobQueryTool_FailureTaxonomyMatchesStructuredVariant(t *testing.T) {
	clearWebhookEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "webhook not registered"}`))
	}))
	defer server.Close()

	tool, err := NewJobQueryTool("JobQuery", "test", map[string]string{"webhook_url": server.URL}, newTestLogger())
	require.NoError(t, err)

	result, err := tool.Execute(`{"query": "x"}`)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, float64(http.StatusNotFound), envelope["status"])
	assert.Equal(t, "Not Found", envelope["statusText"])
}
