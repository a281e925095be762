package tools

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/hirebot/hirebot/internal/domain/errors"
	"github.com/hirebot/hirebot/internal/impl/config"

	"go.uber.org/zap"
)

const (
	// sourceIdentifier is stamped into every structured payload so n8n
	// workflows can tell which platform sent the request.
	sourceIdentifier = "hirebot-agent"

	defaultTimeoutMillis = 30000
)

// webhookConfig is resolved once at tool construction and never mutated.
type webhookConfig struct {
	endpointURL   string
	apiKey        string
	timeoutMillis int
}

func (c webhookConfig) timeout() time.Duration {
	return time.Duration(c.timeoutMillis) * time.Millisecond
}

// resolveWebhookConfig builds the immutable per-tool configuration. The
// endpoint URL sources differ between the two adapters, so the caller
// passes its own precedence list; API key and timeout resolve the same
// way for both. A missing endpoint is a construction failure unless the
// allow_missing_url flag is set (used by tests and mock setups).
func resolveWebhookConfig(configuration map[string]string, urlSources ...config.Source) (webhookConfig, error) {
	cfg := webhookConfig{timeoutMillis: defaultTimeoutMillis}

	if resolved, ok := config.Resolve(urlSources...); ok {
		cfg.endpointURL = resolved.Value
	} else if configuration["allow_missing_url"] != "true" {
		return webhookConfig{}, errors.ConfigurationErrorf("webhook URL is required: set N8N_WEBHOOK_URL or pass webhook_url in the tool configuration")
	}

	if resolved, ok := config.Resolve(
		config.FromMap(configuration, "api_key"),
		config.FromEnv("N8N_API_KEY"),
	); ok {
		cfg.apiKey = resolved.Value
	}

	if resolved, ok := config.Resolve(
		config.FromMap(configuration, "timeout"),
		config.FromEnv("N8N_TIMEOUT"),
	); ok {
		millis, err := strconv.Atoi(resolved.Value)
		if err != nil || millis <= 0 {
			return webhookConfig{}, errors.ConfigurationErrorf("invalid timeout %q from %s: must be a positive integer of milliseconds", resolved.Value, resolved.Origin)
		}
		cfg.timeoutMillis = millis
	}

	return cfg, nil
}

// postWebhook performs the single outbound POST. On a 2xx response it
// returns the status and body with an empty failure string; for every
// other outcome it returns a pretty-printed failure envelope that the
// adapter hands back to the agent as data, never as an error.
func postWebhook(client *http.Client, cfg webhookConfig, logger *zap.Logger, payload []byte) (int, []byte, string) {
	req, err := http.NewRequest(http.MethodPost, cfg.endpointURL, bytes.NewReader(payload))
	if err != nil {
		logger.Error("Failed to create webhook request", zap.Error(err))
		return 0, nil, unknownFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("Webhook request failed",
			zap.String("endpoint", cfg.endpointURL),
			zap.Error(err))
		return 0, nil, classifyTransportFailure(err, cfg)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read webhook response", zap.Error(err))
		return 0, nil, unknownFailure(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Webhook returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("endpoint", cfg.endpointURL))
		return 0, nil, upstreamFailure(resp.StatusCode, http.StatusText(resp.StatusCode), body)
	}

	return resp.StatusCode, body, ""
}

func classifyTransportFailure(err error, cfg webhookConfig) string {
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return timeoutFailure(cfg.timeoutMillis)
	}

	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) || stderrors.Is(err, syscall.ECONNREFUSED) {
		return unreachableFailure(cfg.endpointURL, err)
	}

	var opErr *net.OpError
	if stderrors.As(err, &opErr) {
		return unreachableFailure(cfg.endpointURL, err)
	}

	return unknownFailure(err)
}

type timeoutEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Timeout int    `json:"timeout"`
}

func timeoutFailure(timeoutMillis int) string {
	return prettyJSON(timeoutEnvelope{
		Success: false,
		Error:   "Request timeout: the n8n webhook did not respond in time",
		Message: fmt.Sprintf("The workflow took longer than %dms to respond", timeoutMillis),
		Timeout: timeoutMillis,
	})
}

type unreachableEnvelope struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
}

func unreachableFailure(endpoint string, err error) string {
	return prettyJSON(unreachableEnvelope{
		Success:  false,
		Error:    "Unable to reach the n8n webhook",
		Message:  err.Error(),
		Endpoint: endpoint,
	})
}

type upstreamEnvelope struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	Response   any    `json:"response"`
}

func upstreamFailure(status int, statusText string, body []byte) string {
	return prettyJSON(upstreamEnvelope{
		Success:    false,
		Error:      "Webhook request failed",
		Status:     status,
		StatusText: statusText,
		Response:   jsonValue(body),
	})
}

type unknownEnvelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"errorType"`
}

func unknownFailure(err error) string {
	return prettyJSON(unknownEnvelope{
		Success:   false,
		Error:     err.Error(),
		ErrorType: fmt.Sprintf("%T", err),
	})
}

// jsonValue keeps a JSON body opaque so it round-trips untouched; bodies
// that are not valid JSON are carried as plain strings.
func jsonValue(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	return string(body)
}

func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success": false, "error": %q}`, err.Error())
	}
	return string(out)
}

// prettyBody re-indents an upstream JSON body without altering its
// content; non-JSON bodies pass through untouched.
func prettyBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return string(body)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
