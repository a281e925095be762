package entities

import "time"

// Agent is the stored configuration for a chat agent as kept in the
// agents collection. The diagnostic commands read these documents to
// verify what an agent is actually configured with.
type Agent struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Model        string    `json:"model" bson:"model"`
	Provider     string    `json:"provider" bson:"provider"`
	SystemPrompt string    `json:"system_prompt" bson:"system_prompt"`
	Temperature  *float64  `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Tools        []string  `json:"tools,omitempty" bson:"tools,omitempty"`
	Enabled      bool      `json:"enabled" bson:"enabled"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
