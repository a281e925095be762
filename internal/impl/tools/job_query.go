package tools

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/domain/errors"
	"github.com/hirebot/hirebot/internal/impl/config"

	"go.uber.org/zap"
)

// JobQueryTool forwards a free-text job search query to an n8n workflow
// webhook. Unlike JobSearchTool it sends the query as a simple object and
// returns the upstream body without wrapping it, so callers must not
// assume a success field is present. The query-specific endpoint variable
// wins over the generic one.
type JobQueryTool struct {
	name          string
	description   string
	configuration map[string]string
	webhook       webhookConfig
	logger        *zap.Logger
	client        *http.Client
}

func NewJobQueryTool(name, description string, configuration map[string]string, logger *zap.Logger) (*JobQueryTool, error) {
	webhook, err := resolveWebhookConfig(configuration,
		config.FromEnv("N8N_JOB_SEARCH_WEBHOOK_URL"),
		config.FromEnv("N8N_WEBHOOK_URL"),
		config.FromMap(configuration, "job_search_webhook_url"),
		config.FromMap(configuration, "webhook_url"),
	)
	if err != nil {
		return nil, err
	}

	return &JobQueryTool{
		name:          name,
		description:   description,
		configuration: configuration,
		webhook:       webhook,
		logger:        logger,
		client:        &http.Client{Timeout: webhook.timeout()},
	}, nil
}

func (t *JobQueryTool) Name() string {
	return t.name
}

func (t *JobQueryTool) Description() string {
	return t.description
}

func (t *JobQueryTool) Configuration() map[string]string {
	return t.configuration
}

func (t *JobQueryTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "query",
			Type:        "string",
			Description: "Natural-language job search query, forwarded verbatim",
			Required:    true,
		},
	}
}

func (t *JobQueryTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing job query", zap.String("arguments", arguments))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(arguments), &fields); err != nil {
		return "", errors.ValidationErrorf("query: must be a non-empty string")
	}

	var query string
	if raw, ok := fields["query"]; ok {
		if err := json.Unmarshal(raw, &query); err != nil {
			return "", errors.ValidationErrorf("query: must be a non-empty string")
		}
	}
	if strings.TrimSpace(query) == "" {
		return "", errors.ValidationErrorf("query: must be a non-empty string")
	}

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return "", err
	}

	status, respBody, failure := postWebhook(t.client, t.webhook, t.logger, body)
	if failure != "" {
		return failure, nil
	}

	t.logger.Debug("Job query completed", zap.Int("status", status))

	// The upstream body is the result; no envelope.
	return prettyBody(respBody), nil
}

var _ entities.Tool = (*JobQueryTool)(nil)
