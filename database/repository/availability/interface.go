// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"carebook/config"
	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository owns each provider's recurring weekly rule set.
type AvailabilityRepository interface {
	ReplaceForProvider(ctx context.Context, providerID string, rules []models.AvailabilityRule) error
	GetByProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_rules"),
	}
}
