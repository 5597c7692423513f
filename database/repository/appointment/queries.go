// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
)

var activeStatuses = bson.A{models.StatusPending, models.StatusConfirmed}

// overlapFilter matches active appointments for the provider whose half-open
// interval [start, end) intersects the given one.
func overlapFilter(providerID string, start, end time.Time) bson.M {
	return bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": activeStatuses},
		"start":      bson.M{"$lt": end},
		"end":        bson.M{"$gt": start},
	}
}

// FindActiveInRange returns the provider's pending and confirmed appointments
// intersecting [from, to), ordered by start time.
func (repo *mongoAppointmentRepo) FindActiveInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, overlapFilter(providerID, from, to), optionsSortByStart())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// CompletePast transitions every active appointment whose end lies strictly
// before now to completed.
func (repo *mongoAppointmentRepo) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": activeStatuses},
		"end":    bson.M{"$lt": now},
	}
	res, err := repo.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": models.StatusCompleted}})
	if err != nil {
		return 0, fmt.Errorf("complete sweep failed: %w", err)
	}
	return res.ModifiedCount, nil
}
