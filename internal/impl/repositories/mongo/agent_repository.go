package repositories_mongo

import (
	"context"
	"regexp"

	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/domain/errors"
	"github.com/hirebot/hirebot/internal/domain/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoAgentRepository struct {
	collection *mongo.Collection
}

func NewMongoAgentRepository(collection *mongo.Collection) *MongoAgentRepository {
	return &MongoAgentRepository{
		collection: collection,
	}
}

func (r *MongoAgentRepository) ListAgents(ctx context.Context) ([]*entities.Agent, error) {
	var agents []*entities.Agent
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.InternalErrorf("failed to list agents: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var agent entities.Agent
		if err := cursor.Decode(&agent); err != nil {
			return nil, errors.InternalErrorf("failed to decode agent: %v", err)
		}
		agents = append(agents, &agent)
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.InternalErrorf("failed to list agents: %v", err)
	}

	return agents, nil
}

// GetAgentByName matches the whole name, ignoring case, so operators do
// not have to reproduce the exact casing stored in the document.
func (r *MongoAgentRepository) GetAgentByName(ctx context.Context, name string) (*entities.Agent, error) {
	filter := bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}

	var agent entities.Agent
	err := r.collection.FindOne(ctx, filter).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFoundErrorf("agent not found: %s", name)
	}
	if err != nil {
		return nil, errors.InternalErrorf("failed to get agent: %v", err)
	}

	return &agent, nil
}

var _ interfaces.AgentRepository = (*MongoAgentRepository)(nil)
