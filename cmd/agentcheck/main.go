package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/impl/config"
	"github.com/hirebot/hirebot/internal/impl/database"
	repositoriesMongo "github.com/hirebot/hirebot/internal/impl/repositories/mongo"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// agentcheck looks up an agent document by name (case-insensitive) and
// prints its configuration so an operator can verify what the agent is
// actually running with. Without -name it lists every agent.
func main() {
	name := flag.String("name", "", "Agent name to look up (case-insensitive)")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.MongoURI == "" {
		logger.Fatal("MONGO_URI is required")
	}

	db, err := database.NewMongoDB(cfg.MongoURI, cfg.DatabaseName, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Disconnect(context.Background())

	repo := repositoriesMongo.NewMongoAgentRepository(db.Collection("agents"))
	ctx := context.Background()

	if *name == "" {
		agents, err := repo.ListAgents(ctx)
		if err != nil {
			logger.Fatal("Failed to list agents", zap.Error(err))
		}
		if len(agents) == 0 {
			fmt.Println("No agents found")
			return
		}
		for _, agent := range agents {
			fmt.Printf("%-30s %-20s updated %s\n", agent.Name, agent.Model, humanize.Time(agent.UpdatedAt))
		}
		return
	}

	agent, err := repo.GetAgentByName(ctx, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printAgent(agent)
}

func printAgent(agent *entities.Agent) {
	fmt.Printf("ID:            %s\n", agent.ID)
	fmt.Printf("Name:          %s\n", agent.Name)
	fmt.Printf("Provider:      %s\n", agent.Provider)
	fmt.Printf("Model:         %s\n", agent.Model)
	fmt.Printf("Enabled:       %t\n", agent.Enabled)
	if agent.Temperature != nil {
		fmt.Printf("Temperature:   %.2f\n", *agent.Temperature)
	}
	fmt.Printf("Tools:         %s\n", strings.Join(agent.Tools, ", "))
	fmt.Printf("Created:       %s\n", humanize.Time(agent.CreatedAt))
	fmt.Printf("Updated:       %s\n", humanize.Time(agent.UpdatedAt))
	fmt.Printf("System prompt: %d characters\n", len(agent.SystemPrompt))
	if agent.SystemPrompt != "" {
		fmt.Printf("\n%s\n", truncatePrompt(agent.SystemPrompt, 200))
	}
}

// truncatePrompt shortens a prompt preview to at most max runes, keeping
// multi-byte characters intact.
func truncatePrompt(prompt string, max int) string {
	runes := []rune(prompt)
	if len(runes) <= max {
		return prompt
	}
	return string(runes[:max]) + "..."
}
