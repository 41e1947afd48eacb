package testutil

import (
	"context"
	"time"

	"github.com/joshua-takyi/cinema/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockShowsRepo
type MockShowsRepo struct {
	ListShowsFunc   func(ctx context.Context, search string) ([]models.Show, error)
	GetShowByIDFunc func(ctx context.Context, id int64) (*models.Show, error)
	CreateShowFunc  func(ctx context.Context, show *models.Show) error
	UpdateShowFunc  func(ctx context.Context, id int64, changes map[string]interface{}) (bool, error)
	DeleteShowFunc  func(ctx context.Context, id int64) (bool, error)
}

func (m *MockShowsRepo) ListShows(ctx context.Context, search string) ([]models.Show, error) {
	if m.ListShowsFunc != nil {
		return m.ListShowsFunc(ctx, search)
	}
	return []models.Show{}, nil
}

func (m *MockShowsRepo) GetShowByID(ctx context.Context, id int64) (*models.Show, error) {
	if m.GetShowByIDFunc != nil {
		return m.GetShowByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShowsRepo) CreateShow(ctx context.Context, show *models.Show) error {
	if m.CreateShowFunc != nil {
		return m.CreateShowFunc(ctx, show)
	}
	return nil
}

func (m *MockShowsRepo) UpdateShow(ctx context.Context, id int64, changes map[string]interface{}) (bool, error) {
	if m.UpdateShowFunc != nil {
		return m.UpdateShowFunc(ctx, id, changes)
	}
	return false, nil
}

func (m *MockShowsRepo) DeleteShow(ctx context.Context, id int64) (bool, error) {
	if m.DeleteShowFunc != nil {
		return m.DeleteShowFunc(ctx, id)
	}
	return false, nil
}

// MockReservationsRepo
type MockReservationsRepo struct {
	ListReservationsFunc             func(ctx context.Context, showID int64) ([]models.Reservation, error)
	GetReservationByIDFunc           func(ctx context.Context, id int64) (*models.Reservation, error)
	CreateReservationFunc            func(ctx context.Context, r *models.Reservation) error
	UpdateReservationFunc            func(ctx context.Context, id int64, changes map[string]interface{}) (bool, error)
	DeleteReservationFunc            func(ctx context.Context, id int64) (bool, error)
	ListReservationsCreatedSinceFunc func(ctx context.Context, since time.Time) ([]models.Reservation, error)
}

func (m *MockReservationsRepo) ListReservations(ctx context.Context, showID int64) ([]models.Reservation, error) {
	if m.ListReservationsFunc != nil {
		return m.ListReservationsFunc(ctx, showID)
	}
	return []models.Reservation{}, nil
}

func (m *MockReservationsRepo) GetReservationByID(ctx context.Context, id int64) (*models.Reservation, error) {
	if m.GetReservationByIDFunc != nil {
		return m.GetReservationByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReservationsRepo) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if m.CreateReservationFunc != nil {
		return m.CreateReservationFunc(ctx, r)
	}
	return nil
}

func (m *MockReservationsRepo) UpdateReservation(ctx context.Context, id int64, changes map[string]interface{}) (bool, error) {
	if m.UpdateReservationFunc != nil {
		return m.UpdateReservationFunc(ctx, id, changes)
	}
	return false, nil
}

func (m *MockReservationsRepo) DeleteReservation(ctx context.Context, id int64) (bool, error) {
	if m.DeleteReservationFunc != nil {
		return m.DeleteReservationFunc(ctx, id)
	}
	return false, nil
}

func (m *MockReservationsRepo) ListReservationsCreatedSince(ctx context.Context, since time.Time) ([]models.Reservation, error) {
	if m.ListReservationsCreatedSinceFunc != nil {
		return m.ListReservationsCreatedSinceFunc(ctx, since)
	}
	return []models.Reservation{}, nil
}

// MockEventsRepo
type MockEventsRepo struct {
	InsertReservationEventFunc  func(ctx context.Context, event *models.ReservationEvent) error
	ListReservationEventsFunc   func(ctx context.Context, reservationID int64) ([]models.ReservationEvent, error)
	ReservationIDsWithEventFunc func(ctx context.Context, ids []int64, eventType models.EventType) (map[int64]bool, error)
	EnsureIndexesFunc           func(ctx context.Context) error
}

func (m *MockEventsRepo) InsertReservationEvent(ctx context.Context, event *models.ReservationEvent) error {
	if m.InsertReservationEventFunc != nil {
		return m.InsertReservationEventFunc(ctx, event)
	}
	return nil
}

func (m *MockEventsRepo) ListReservationEvents(ctx context.Context, reservationID int64) ([]models.ReservationEvent, error) {
	if m.ListReservationEventsFunc != nil {
		return m.ListReservationEventsFunc(ctx, reservationID)
	}
	return []models.ReservationEvent{}, nil
}

func (m *MockEventsRepo) ReservationIDsWithEvent(ctx context.Context, ids []int64, eventType models.EventType) (map[int64]bool, error) {
	if m.ReservationIDsWithEventFunc != nil {
		return m.ReservationIDsWithEventFunc(ctx, ids, eventType)
	}
	return map[int64]bool{}, nil
}

func (m *MockEventsRepo) EnsureIndexes(ctx context.Context) error {
	if m.EnsureIndexesFunc != nil {
		return m.EnsureIndexesFunc(ctx)
	}
	return nil
}

// MockCatalogRepo
type MockCatalogRepo struct {
	ListCatalogFunc    func(ctx context.Context, filter bson.M) ([]bson.M, error)
	GetCatalogByIDFunc func(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	CreateCatalogFunc  func(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	UpdateCatalogFunc  func(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteCatalogFunc  func(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (m *MockCatalogRepo) ListCatalog(ctx context.Context, filter bson.M) ([]bson.M, error) {
	if m.ListCatalogFunc != nil {
		return m.ListCatalogFunc(ctx, filter)
	}
	return []bson.M{}, nil
}

func (m *MockCatalogRepo) GetCatalogByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	if m.GetCatalogByIDFunc != nil {
		return m.GetCatalogByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCatalogRepo) CreateCatalog(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	if m.CreateCatalogFunc != nil {
		return m.CreateCatalogFunc(ctx, doc)
	}
	return primitive.NewObjectID(), nil
}

func (m *MockCatalogRepo) UpdateCatalog(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if m.UpdateCatalogFunc != nil {
		return m.UpdateCatalogFunc(ctx, id, set)
	}
	return nil
}

func (m *MockCatalogRepo) DeleteCatalog(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if m.DeleteCatalogFunc != nil {
		return m.DeleteCatalogFunc(ctx, id)
	}
	return false, nil
}

// MockUserRepo
type MockUserRepo struct {
	GetUserByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	UpsertUserFunc        func(ctx context.Context, user *models.User) error
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepo) UpsertUser(ctx context.Context, user *models.User) error {
	if m.UpsertUserFunc != nil {
		return m.UpsertUserFunc(ctx, user)
	}
	return nil
}
