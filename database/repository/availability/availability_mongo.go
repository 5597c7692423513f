// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReplaceForProvider swaps a provider's entire weekly rule set in one
// transaction, so readers never observe a half-replaced week.
func (repo *mongoAvailabilityRepo) ReplaceForProvider(ctx context.Context, providerID string, rules []models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.coll.DeleteMany(sc, bson.M{"providerId": providerID}); err != nil {
			return fmt.Errorf("clear existing rules failed: %w", err)
		}
		if len(rules) == 0 {
			return nil
		}
		docs := make([]interface{}, len(rules))
		for i, rule := range rules {
			rule.ProviderID = providerID
			docs[i] = rule
		}
		if _, err := repo.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert rules failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("availability replace transaction failed: %w", err)
	}

	return nil
}

// GetByProvider returns the provider's full rule set ordered by weekday and
// start time. A provider with no rules yields an empty slice.
func (repo *mongoAvailabilityRepo) GetByProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := optionsFindSorted()
	cursor, err := repo.coll.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	rules := []models.AvailabilityRule{}
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding availability rules: %w", err)
	}
	return rules, nil
}
