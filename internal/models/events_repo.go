package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReservationEventsRepo interface {
	InsertReservationEvent(ctx context.Context, event *ReservationEvent) error
	ListReservationEvents(ctx context.Context, reservationID int64) ([]ReservationEvent, error)
	ReservationIDsWithEvent(ctx context.Context, ids []int64, eventType EventType) (map[int64]bool, error)
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes creates the non-unique ascending index on reservation_id.
// CreateMany is a no-op for an index that already exists with the same keys and options.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ReservationEventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reservation_id", Value: 1}},
			Options: options.Index().SetName(ReservationIDIndexName),
		},
	}
	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating indexes on %s: %w", ReservationEventsColName, err)
	}
	return nil
}

func (mdb *MongodbRepo) InsertReservationEvent(ctx context.Context, event *ReservationEvent) error {
	if err := event.BeforeCreate(); err != nil {
		return fmt.Errorf("invalid reservation event: %w", err)
	}
	col, err := mdb.GetCollection(ReservationEventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	if _, err := col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting reservation event: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListReservationEvents(ctx context.Context, reservationID int64) ([]ReservationEvent, error) {
	col, err := mdb.GetCollection(ReservationEventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"reservation_id": reservationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reservation events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []ReservationEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding reservation events: %w", err)
	}
	return events, nil
}

// ReservationIDsWithEvent reports which of ids already have an event of the
// given type.
func (mdb *MongodbRepo) ReservationIDsWithEvent(ctx context.Context, ids []int64, eventType EventType) (map[int64]bool, error) {
	found := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	col, err := mdb.GetCollection(ReservationEventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{
		"reservation_id": bson.M{"$in": ids},
		"event_type":     eventType,
	}
	values, err := col.Distinct(ctx, "reservation_id", filter)
	if err != nil {
		return nil, fmt.Errorf("error reading event reservation ids: %w", err)
	}
	for _, v := range values {
		switch id := v.(type) {
		case int64:
			found[id] = true
		case int32:
			found[int64(id)] = true
		}
	}
	return found, nil
}
