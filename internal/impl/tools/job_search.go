package tools

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/impl/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobSearchTool forwards structured search criteria to an n8n workflow
// webhook and relays the response inside a normalized envelope. The
// endpoint resolves from the tool configuration first, then from
// N8N_WEBHOOK_URL.
type JobSearchTool struct {
	name          string
	description   string
	configuration map[string]string
	webhook       webhookConfig
	logger        *zap.Logger
	client        *http.Client
}

func NewJobSearchTool(name, description string, configuration map[string]string, logger *zap.Logger) (*JobSearchTool, error) {
	webhook, err := resolveWebhookConfig(configuration,
		config.FromMap(configuration, "webhook_url"),
		config.FromEnv("N8N_WEBHOOK_URL"),
	)
	if err != nil {
		return nil, err
	}

	return &JobSearchTool{
		name:          name,
		description:   description,
		configuration: configuration,
		webhook:       webhook,
		logger:        logger,
		client:        &http.Client{Timeout: webhook.timeout()},
	}, nil
}

func (t *JobSearchTool) Name() string {
	return t.name
}

func (t *JobSearchTool) Description() string {
	return t.description
}

func (t *JobSearchTool) Configuration() map[string]string {
	return t.configuration
}

func (t *JobSearchTool) Parameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "position",
			Type:        "string",
			Description: "Job title or role to search for",
		},
		{
			Name:        "location",
			Type:        "string",
			Description: "City, region, or country to search in",
		},
		{
			Name:        "skills",
			Type:        "array",
			Items:       []entities.Item{{Type: "string"}},
			Description: "Skills the position should require",
		},
		{
			Name:        "experienceLevel",
			Type:        "string",
			Enum:        []string{"entry", "mid", "senior", "lead"},
			Description: "Seniority of the position",
		},
		{
			Name:        "jobType",
			Type:        "string",
			Enum:        []string{"full-time", "part-time", "contract", "internship"},
			Description: "Employment type",
		},
		{
			Name:        "salaryMin",
			Type:        "number",
			Description: "Lower bound of the salary range",
		},
		{
			Name:        "salaryMax",
			Type:        "number",
			Description: "Upper bound of the salary range",
		},
		{
			Name:        "remote",
			Type:        "boolean",
			Description: "Whether the position must be remote",
		},
	}
}

// searchPayload is the metadata wrapper posted to the workflow.
type searchPayload struct {
	Data      *SearchCriteria `json:"data"`
	Workflow  string          `json:"workflow,omitempty"`
	Timestamp string          `json:"timestamp"`
	RequestID string          `json:"requestId"`
	Source    string          `json:"source"`
}

type searchEnvelope struct {
	Success    bool   `json:"success"`
	Workflow   string `json:"workflow"`
	Result     any    `json:"result"`
	ExecutedAt string `json:"executedAt"`
	Status     int    `json:"status"`
}

// Execute validates the criteria, posts them to the webhook, and returns
// the envelope as a JSON string. Bad input fails before any network call;
// transport and upstream failures come back as failure envelopes so the
// agent can always relay something to the user.
func (t *JobSearchTool) Execute(arguments string) (string, error) {
	t.logger.Debug("Executing job search", zap.String("arguments", arguments))

	criteria, err := ParseSearchCriteria([]byte(arguments))
	if err != nil {
		t.logger.Error("Invalid search criteria", zap.Error(err))
		return "", err
	}

	payload := searchPayload{
		Data:      criteria,
		Workflow:  t.configuration["workflow"],
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: uuid.New().String(),
		Source:    sourceIdentifier,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	status, respBody, failure := postWebhook(t.client, t.webhook, t.logger, body)
	if failure != "" {
		return failure, nil
	}

	workflow := t.configuration["workflow"]
	if workflow == "" {
		workflow = "default"
	}

	t.logger.Debug("Job search completed",
		zap.Int("status", status),
		zap.String("workflow", workflow))

	return prettyJSON(searchEnvelope{
		Success:    true,
		Workflow:   workflow,
		Result:     jsonValue(respBody),
		ExecutedAt: time.Now().UTC().Format(time.RFC3339),
		Status:     status,
	}), nil
}

var _ entities.Tool = (*JobSearchTool)(nil)
