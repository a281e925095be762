package tools

import (
	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/domain/errors"

	"go.uber.org/zap"
)

type ToolFactoryEntry struct {
	Name        string
	Description string
	ConfigKeys  []string
	Factory     func(name, description string, configuration map[string]string, logger *zap.Logger) (entities.Tool, error)
}

type ToolFactory struct {
	toolFactories map[string]*ToolFactoryEntry
}

func NewToolFactory() (*ToolFactory, error) {
	toolFactory := &ToolFactory{}
	toolFactory.toolFactories = make(map[string]*ToolFactoryEntry)

	toolFactory.toolFactories["JobSearch"] = &ToolFactoryEntry{
		Name:        "JobSearch",
		Description: `This tool searches for job listings by forwarding structured criteria (position, location, skills, salary range) to the n8n job search workflow`,
		ConfigKeys:  []string{"webhook_url", "api_key", "timeout", "workflow"},
		Factory: func(name, description string, configuration map[string]string, logger *zap.Logger) (entities.Tool, error) {
			return NewJobSearchTool(name, description, configuration, logger)
		},
	}
	toolFactory.toolFactories["JobQuery"] = &ToolFactoryEntry{
		Name:        "JobQuery",
		Description: `This tool answers a natural-language job search question by forwarding the query verbatim to the n8n job search workflow`,
		ConfigKeys:  []string{"job_search_webhook_url", "webhook_url", "api_key", "timeout"},
		Factory: func(name, description string, configuration map[string]string, logger *zap.Logger) (entities.Tool, error) {
			return NewJobQueryTool(name, description, configuration, logger)
		},
	}

	return toolFactory, nil
}

func (t *ToolFactory) ListFactories() ([]*ToolFactoryEntry, error) {
	var factories []*ToolFactoryEntry
	for _, factory := range t.toolFactories {
		factories = append(factories, factory)
	}
	return factories, nil
}

func (t *ToolFactory) CreateTool(toolType, name, description string, configuration map[string]string, logger *zap.Logger) (entities.Tool, error) {
	entry, ok := t.toolFactories[toolType]
	if !ok {
		return nil, errors.NotFoundErrorf("unknown tool type: %s", toolType)
	}
	if description == "" {
		description = entry.Description
	}
	return entry.Factory(name, description, configuration, logger)
}
