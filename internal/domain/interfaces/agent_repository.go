package interfaces

import (
	"context"

	"github.com/hirebot/hirebot/internal/domain/entities"
)

// AgentRepository is the read side of the agents collection used by the
// diagnostic commands. Lookups by name are case-insensitive.
type AgentRepository interface {
	ListAgents(ctx context.Context) ([]*entities.Agent, error)
	GetAgentByName(ctx context.Context, name string) (*entities.Agent, error)
}
