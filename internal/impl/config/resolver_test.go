package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FirstNonEmptyWins(t *testing.T) {
	resolved, ok := Resolve(
		Source{Origin: "a", Value: ""},
		Source{Origin: "b", Value: "second"},
		Source{Origin: "c", Value: "third"},
	)
	require.True(t, ok)
	assert.Equal(t, "second", resolved.Value)
	assert.Equal(t, "b", resolved.Origin)
}

func TestResolve_AllEmptyIsTypedAbsence(t *testing.T) {
	resolved, ok := Resolve(
		Source{Origin: "a", Value: ""},
		Source{Origin: "b", Value: ""},
	)
	assert.False(t, ok)
	assert.Equal(t, Resolved{}, resolved)
}

func TestResolve_NoSources(t *testing.T) {
	_, ok := Resolve()
	assert.False(t, ok)
}

func TestFromMap(t *testing.T) {
	m := map[string]string{"webhook_url": "http://localhost:5678"}

	source := FromMap(m, "webhook_url")
	assert.Equal(t, "config:webhook_url", source.Origin)
	assert.Equal(t, "http://localhost:5678", source.Value)

	missing := FromMap(m, "api_key")
	assert.Empty(t, missing.Value)

	var nilMap map[string]string
	assert.Empty(t, FromMap(nilMap, "webhook_url").Value)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HIREBOT_RESOLVER_TEST", "from-env")

	source := FromEnv("HIREBOT_RESOLVER_TEST")
	assert.Equal(t, "env:HIREBOT_RESOLVER_TEST", source.Origin)
	assert.Equal(t, "from-env", source.Value)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", MaskKey("abcd"))
	assert.Equal(t, "********oken", MaskKey("secret-token"))
	assert.Equal(t, "", MaskKey(""))
}
