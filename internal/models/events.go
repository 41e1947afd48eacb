package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReservationEventsColName = "reservation_events"
	ReservationIDIndexName   = "idx_reservation_id"
)

type EventType string

const (
	EventCreated EventType = "CREATED"
)

type EventSource string

const (
	SourceWeb        EventSource = "WEB"
	SourceReconciler EventSource = "RECONCILER"
)

// ReservationEvent is one append-only audit record. ReservationID is a
// copy of the relational id; nothing enforces that the row still exists.
type ReservationEvent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReservationID int64              `bson:"reservation_id" json:"reservation_id" validate:"gt=0"`
	EventType     EventType          `bson:"event_type" json:"event_type" validate:"required,oneof=CREATED"`
	Source        EventSource        `bson:"source" json:"source" validate:"required,oneof=WEB RECONCILER"`
	Note          string             `bson:"note" json:"note"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

func (e *ReservationEvent) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return Validate.Struct(e)
}
