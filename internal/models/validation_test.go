package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	return verr.Fields
}

func TestShowInputValidate(t *testing.T) {
	t.Run("missing fields are reported by json name", func(t *testing.T) {
		fields := fieldsOf(t, (&ShowInput{}).Validate(false))
		for _, f := range []string{"movie_title", "room", "price", "available_seats"} {
			if fields[f] != "This field is required." {
				t.Errorf("%s: got %q", f, fields[f])
			}
		}
	})

	t.Run("title too long", func(t *testing.T) {
		price := decimal.RequireFromString("10")
		in := &ShowInput{
			MovieTitle:     strPtr(strings.Repeat("x", 121)),
			Room:           strPtr("A"),
			Price:          &price,
			AvailableSeats: intPtr(10),
		}
		fields := fieldsOf(t, in.Validate(false))
		if _, ok := fields["movie_title"]; !ok {
			t.Errorf("expected movie_title error, got %v", fields)
		}
	})

	t.Run("price precision", func(t *testing.T) {
		cases := map[string]bool{
			"10.50":       true,
			"99999999.99": true,
			"10.505":      false,
			"123456789":   false,
		}
		for raw, ok := range cases {
			price := decimal.RequireFromString(raw)
			in := &ShowInput{Price: &price}
			err := in.Validate(true)
			if ok && err != nil {
				t.Errorf("%s: unexpected error %v", raw, err)
			}
			if !ok {
				if _, has := fieldsOf(t, err)["price"]; !has {
					t.Errorf("%s: expected price error", raw)
				}
			}
		}
	})

	t.Run("partial ignores absent fields", func(t *testing.T) {
		in := &ShowInput{Room: strPtr("B")}
		if err := in.Validate(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReservationInputValidate(t *testing.T) {
	show := int64(1)

	t.Run("seats must be positive", func(t *testing.T) {
		in := &ReservationInput{Show: &show, CustomerName: strPtr("Ana"), Seats: intPtr(0)}
		fields := fieldsOf(t, in.Validate(false))
		if _, ok := fields["seats"]; !ok {
			t.Errorf("expected seats error, got %v", fields)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		status := ReservationStatus("PENDING")
		in := &ReservationInput{Status: &status}
		fields := fieldsOf(t, in.Validate(true))
		if _, ok := fields["status"]; !ok {
			t.Errorf("expected status error, got %v", fields)
		}
	})

	t.Run("blank customer name", func(t *testing.T) {
		in := &ReservationInput{Show: &show, CustomerName: strPtr("   "), Seats: intPtr(1)}
		fields := fieldsOf(t, in.Validate(false))
		if fields["customer_name"] != "This field may not be blank." {
			t.Errorf("customer_name: %q", fields["customer_name"])
		}
	})

	t.Run("valid", func(t *testing.T) {
		in := &ReservationInput{Show: &show, CustomerName: strPtr("Ana"), Seats: intPtr(2)}
		if err := in.Validate(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAsValidationErrorFromJSON(t *testing.T) {
	var in ReservationInput
	err := json.Unmarshal([]byte(`{"seats":"two"}`), &in)
	fields := fieldsOf(t, AsValidationError(err))
	if fields["seats"] != "A valid integer is required." {
		t.Errorf("seats: %q", fields["seats"])
	}

	other := errors.New("boom")
	if AsValidationError(other) != other {
		t.Error("unrelated errors must pass through")
	}
}

func TestCatalogEntryInputValidate(t *testing.T) {
	t.Run("defaults is_active on full validation", func(t *testing.T) {
		in := &CatalogEntryInput{MovieTitle: strPtr("Alien")}
		if err := in.Validate(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.IsActive == nil || !*in.IsActive {
			t.Fatal("is_active should default to true")
		}
		if in.Document()["is_active"] != true {
			t.Error("document should carry is_active")
		}
	})

	t.Run("partial leaves is_active alone", func(t *testing.T) {
		in := &CatalogEntryInput{Rating: strPtr("PG")}
		if err := in.Validate(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc := in.Document()
		if len(doc) != 1 || doc["rating"] != "PG" {
			t.Errorf("unexpected $set body: %v", doc)
		}
	})

	t.Run("movie_title required", func(t *testing.T) {
		fields := fieldsOf(t, (&CatalogEntryInput{}).Validate(false))
		if _, ok := fields["movie_title"]; !ok {
			t.Errorf("expected movie_title error, got %v", fields)
		}
	})
}

func TestFixID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := FixID(bson.M{"_id": oid, "movie_title": "Alien"})

	if doc["id"] != oid.Hex() {
		t.Errorf("id = %v, want %s", doc["id"], oid.Hex())
	}
	if _, ok := doc["_id"]; ok {
		t.Error("_id should be removed")
	}
	if doc["movie_title"] != "Alien" {
		t.Error("other fields must be preserved")
	}
}

func TestReservationEventBeforeCreate(t *testing.T) {
	e := &ReservationEvent{ReservationID: 3, EventType: EventCreated, Source: SourceWeb}
	if err := e.BeforeCreate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID.IsZero() {
		t.Error("id should be assigned")
	}

	bad := &ReservationEvent{ReservationID: 3, EventType: "DELETED", Source: SourceWeb}
	if err := bad.BeforeCreate(); err == nil {
		t.Error("unknown event type should be rejected")
	}
}
