package services_test

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
	"github.com/joshua-takyi/cinema/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCatalogID(t *testing.T) {
	for _, raw := range []string{"", "abc", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := services.ParseCatalogID(raw); !errors.Is(err, services.ErrInvalidID) {
			t.Errorf("%q: expected ErrInvalidID, got %v", raw, err)
		}
	}
	oid := primitive.NewObjectID()
	got, err := services.ParseCatalogID(oid.Hex())
	if err != nil || got != oid {
		t.Errorf("valid id rejected: %v %v", got, err)
	}
}

func TestCatalogFilter(t *testing.T) {
	q := url.Values{
		"genre":  {"Horror"},
		"rating": {"PG", "R"},
	}
	want := bson.M{
		"genre":  "Horror",
		"rating": bson.M{"$in": []string{"PG", "R"}},
	}
	if got := services.CatalogFilter(q); !reflect.DeepEqual(got, want) {
		t.Errorf("CatalogFilter = %v, want %v", got, want)
	}
	if got := services.CatalogFilter(url.Values{}); len(got) != 0 {
		t.Errorf("empty query should give empty filter, got %v", got)
	}
}

func TestCatalogService_InvalidIDNeverHitsStore(t *testing.T) {
	repo := &testutil.MockCatalogRepo{
		GetCatalogByIDFunc: func(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
			t.Fatal("store must not be queried for a malformed id")
			return nil, nil
		},
		DeleteCatalogFunc: func(ctx context.Context, id primitive.ObjectID) (bool, error) {
			t.Fatal("store must not be queried for a malformed id")
			return false, nil
		},
	}
	svc := services.NewCatalogService(repo)
	ctx := context.Background()

	if _, err := svc.GetCatalogEntry(ctx, "nope"); !errors.Is(err, services.ErrInvalidID) {
		t.Errorf("get: %v", err)
	}
	if _, err := svc.UpdateCatalogEntry(ctx, "nope", &models.CatalogEntryInput{}, true); !errors.Is(err, services.ErrInvalidID) {
		t.Errorf("update: %v", err)
	}
	if err := svc.DeleteCatalogEntry(ctx, "nope"); !errors.Is(err, services.ErrInvalidID) {
		t.Errorf("delete: %v", err)
	}
}

func TestCatalogService_MissingDocument(t *testing.T) {
	svc := services.NewCatalogService(&testutil.MockCatalogRepo{})
	id := primitive.NewObjectID().Hex()

	if _, err := svc.GetCatalogEntry(context.Background(), id); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("get: %v", err)
	}
	if err := svc.DeleteCatalogEntry(context.Background(), id); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("delete: %v", err)
	}
}

func TestCatalogService_PatchSetsOnlyPresentFields(t *testing.T) {
	oid := primitive.NewObjectID()
	stored := bson.M{"_id": oid, "movie_title": "Alien", "genre": "Horror", "rating": "R", "is_active": true}
	repo := &testutil.MockCatalogRepo{
		UpdateCatalogFunc: func(ctx context.Context, id primitive.ObjectID, set bson.M) error {
			if len(set) != 1 || set["rating"] != "PG" {
				t.Errorf("unexpected $set: %v", set)
			}
			stored["rating"] = set["rating"]
			return nil
		},
		GetCatalogByIDFunc: func(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
			if id != oid {
				return nil, nil
			}
			out := bson.M{}
			for k, v := range stored {
				out[k] = v
			}
			return out, nil
		},
	}
	svc := services.NewCatalogService(repo)

	rating := "PG"
	doc, err := svc.UpdateCatalogEntry(context.Background(), oid.Hex(), &models.CatalogEntryInput{Rating: &rating}, true)
	if err != nil {
		t.Fatalf("UpdateCatalogEntry: %v", err)
	}
	if doc["rating"] != "PG" || doc["movie_title"] != "Alien" || doc["genre"] != "Horror" {
		t.Errorf("unexpected document: %v", doc)
	}
	if doc["id"] != oid.Hex() {
		t.Errorf("id = %v", doc["id"])
	}
}

func TestCatalogService_CreateValidates(t *testing.T) {
	repo := &testutil.MockCatalogRepo{
		CreateCatalogFunc: func(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
			t.Fatal("invalid entry must not be inserted")
			return primitive.NilObjectID, nil
		},
	}
	_, err := services.NewCatalogService(repo).CreateCatalogEntry(context.Background(), &models.CatalogEntryInput{})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
