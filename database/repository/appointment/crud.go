// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &appt, nil
}

// UpdateStatus writes the new status conditionally: the filter requires the
// record to still be active, so a concurrent transition (for example the
// completion sweep) cannot be overwritten after the caller's read.
func (repo *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": bson.M{"$in": activeStatuses}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var appt models.Appointment
	err := repo.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if lookupErr := repo.coll.FindOne(ctx, bson.M{"id": id}).Err(); lookupErr == mongo.ErrNoDocuments {
				return nil, ErrNotFound
			}
			return nil, ErrNotActive
		}
		return nil, fmt.Errorf("update error: %w", err)
	}
	return &appt, nil
}

func (repo *mongoAppointmentRepo) UpdateNotes(ctx context.Context, id, notes string) (*models.Appointment, error) {
	return repo.findOneAndSet(ctx, id, bson.M{"notes": notes})
}

func (repo *mongoAppointmentRepo) findOneAndSet(ctx context.Context, id string, fields bson.M) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var appt models.Appointment
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update error: %w", err)
	}
	return &appt, nil
}
