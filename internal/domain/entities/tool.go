package entities

// Parameter describes one input accepted by a tool, in the shape the
// agent runtime expects when building a function-calling schema.
type Parameter struct {
	Name        string
	Type        string
	Enum        []string
	Items       []Item
	Description string
	Required    bool
}

type Item struct {
	Type string
}

// Tool is the contract every adapter implements so the agent runtime can
// invoke it without knowing the concrete type. Execute takes the raw JSON
// arguments produced by the model and returns a JSON string for the agent
// to relay. Implementations must be safe for concurrent Execute calls.
type Tool interface {
	Name() string
	Description() string
	Configuration() map[string]string
	Parameters() []Parameter
	Execute(arguments string) (string, error)
}
