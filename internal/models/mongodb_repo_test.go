package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongodbRepo_CatalogRoundTrip(t *testing.T) {
	repo := models.MongodbNewRepo(testutil.SetupTestMongo(t), "cinema_logs_test")
	ctx := context.Background()

	in := &models.CatalogEntryInput{}
	title, genre := "Alien", "Horror"
	in.MovieTitle, in.Genre = &title, &genre
	if err := in.Validate(false); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	oid, err := repo.CreateCatalog(ctx, in.Document())
	if err != nil {
		t.Fatalf("CreateCatalog: %v", err)
	}

	raw, err := repo.GetCatalogByID(ctx, oid)
	if err != nil || raw == nil {
		t.Fatalf("GetCatalogByID: %v %v", raw, err)
	}
	doc := models.FixID(raw)
	if doc["id"] != oid.Hex() || doc["movie_title"] != "Alien" || doc["is_active"] != true {
		t.Errorf("unexpected document: %v", doc)
	}

	if err := repo.UpdateCatalog(ctx, oid, bson.M{"rating": "R"}); err != nil {
		t.Fatalf("UpdateCatalog: %v", err)
	}
	raw, _ = repo.GetCatalogByID(ctx, oid)
	if raw["rating"] != "R" || raw["genre"] != "Horror" {
		t.Errorf("$set lost fields: %v", raw)
	}

	list, err := repo.ListCatalog(ctx, bson.M{"genre": "Horror"})
	if err != nil || len(list) != 1 {
		t.Fatalf("ListCatalog: %v %d", err, len(list))
	}

	deleted, err := repo.DeleteCatalog(ctx, oid)
	if err != nil || !deleted {
		t.Fatalf("DeleteCatalog: %v %v", deleted, err)
	}
	if again, _ := repo.DeleteCatalog(ctx, oid); again {
		t.Error("second delete reported success")
	}
	if missing, err := repo.GetCatalogByID(ctx, primitive.NewObjectID()); err != nil || missing != nil {
		t.Errorf("missing document: %v %v", missing, err)
	}
}

func TestMongodbRepo_ReservationEvents(t *testing.T) {
	client := testutil.SetupTestMongo(t)
	repo := models.MongodbNewRepo(client, "cinema_logs_test")
	ctx := context.Background()

	// twice: index creation must be idempotent
	for i := 0; i < 2; i++ {
		if err := repo.EnsureIndexes(ctx); err != nil {
			t.Fatalf("EnsureIndexes #%d: %v", i+1, err)
		}
	}

	specs, err := client.Database("cinema_logs_test").Collection(models.ReservationEventsColName).Indexes().ListSpecifications(ctx)
	if err != nil {
		t.Fatalf("ListSpecifications: %v", err)
	}
	var haveIndex bool
	for _, s := range specs {
		if s.Name == models.ReservationIDIndexName {
			haveIndex = true
			if s.Unique != nil && *s.Unique {
				t.Error("reservation_id index must not be unique")
			}
		}
	}
	if !haveIndex {
		t.Fatalf("index %s missing", models.ReservationIDIndexName)
	}

	base := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	for i, id := range []int64{1, 1, 2} {
		e := &models.ReservationEvent{
			ReservationID: id,
			EventType:     models.EventCreated,
			Source:        models.SourceWeb,
			Note:          "Reservation for Ana",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.InsertReservationEvent(ctx, e); err != nil {
			t.Fatalf("InsertReservationEvent: %v", err)
		}
	}

	events, err := repo.ListReservationEvents(ctx, 1)
	if err != nil || len(events) != 2 {
		t.Fatalf("ListReservationEvents: %v %d", err, len(events))
	}
	if !events[0].CreatedAt.Before(events[1].CreatedAt) {
		t.Error("events should be ordered by created_at")
	}
	if !events[0].CreatedAt.Equal(base) {
		t.Errorf("created_at shifted: %s", events[0].CreatedAt)
	}

	logged, err := repo.ReservationIDsWithEvent(ctx, []int64{1, 2, 3}, models.EventCreated)
	if err != nil {
		t.Fatalf("ReservationIDsWithEvent: %v", err)
	}
	if !logged[1] || !logged[2] || logged[3] {
		t.Errorf("unexpected ids: %v", logged)
	}

	bad := &models.ReservationEvent{ReservationID: 1, EventType: "UPDATED", Source: models.SourceWeb}
	if err := repo.InsertReservationEvent(ctx, bad); err == nil {
		t.Error("unknown event type must be rejected")
	}
}
