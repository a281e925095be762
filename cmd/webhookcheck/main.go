package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hirebot/hirebot/internal/impl/config"
	"github.com/hirebot/hirebot/internal/impl/tools"

	"go.uber.org/zap"
)

// webhookcheck prints the webhook configuration both tool adapters would
// resolve from the current environment, masking the API key. With -probe
// it sends a test query through the free-text adapter and prints the
// response, which exercises the full request path including failures.
func main() {
	probe := flag.Bool("probe", false, "Send a test query to the resolved webhook")
	query := flag.String("query", "ping", "Query to send when probing")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if _, err := config.InitConfig(); err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	for _, env := range []string{"N8N_WEBHOOK_URL", "N8N_JOB_SEARCH_WEBHOOK_URL", "N8N_TIMEOUT"} {
		value := os.Getenv(env)
		if value == "" {
			value = "(not set)"
		}
		fmt.Printf("%-30s %s\n", env, value)
	}

	apiKey := os.Getenv("N8N_API_KEY")
	if apiKey == "" {
		fmt.Printf("%-30s (not set)\n", "N8N_API_KEY")
	} else {
		fmt.Printf("%-30s %s\n", "N8N_API_KEY", config.MaskKey(apiKey))
	}

	tool, err := tools.NewJobQueryTool("JobQuery", "webhook connectivity check", map[string]string{}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nWebhook configuration resolved successfully")

	if !*probe {
		return
	}

	result, err := tool.Execute(fmt.Sprintf(`{"query": %q}`, *query))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Probe failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nProbe response:\n%s\n", result)
}
