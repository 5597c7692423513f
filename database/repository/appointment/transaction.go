// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree inserts the appointment only if no active appointment for the
// same provider overlaps its interval. The check and the insert run inside
// one session transaction. Snapshot isolation does not make the count
// conflict with a concurrent insert, so callers must serialize bookings per
// provider (the service holds a per-provider lock and the engine runs as a
// single instance); the unique (providerId, start) index on active
// appointments still rejects exact-start duplicates regardless of caller.
func (repo *mongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := repo.coll.CountDocuments(sc, overlapFilter(appt.ProviderID, appt.Start, appt.End))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert appointment failed: %w", err)
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
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// UpdateStartIfFree moves an appointment to a new interval inside one
// transaction, excluding the appointment itself from the overlap check.
func (repo *mongoAppointmentRepo) UpdateStartIfFree(ctx context.Context, id string, start, end time.Time) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Appointment
	txnFn := func(sc mongo.SessionContext) error {
		var current models.Appointment
		if err := repo.coll.FindOne(sc, bson.M{"id": id}).Decode(&current); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("load appointment failed: %w", err)
		}

		count, err := repo.coll.CountDocuments(sc, func() bson.M {
			f := overlapFilter(current.ProviderID, start, end)
			f["id"] = bson.M{"$ne": id}
			return f
		}())
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		res := repo.coll.FindOneAndUpdate(sc,
			bson.M{"id": id},
			bson.M{"$set": bson.M{"start": start, "end": end}},
		)
		if err := res.Decode(&current); err != nil {
			return fmt.Errorf("apply reschedule failed: %w", err)
		}
		current.Start = start
		current.End = end
		updated = current
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
		if err == ErrSlotTaken || err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("reschedule transaction failed: %w", err)
	}

	return &updated, nil
}
