package models_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshua-takyi/cinema/internal/migrate"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateCinemaDB(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newShow(t *testing.T, repo *models.PostgresRepo, title string) *models.Show {
	t.Helper()
	show := &models.Show{
		MovieTitle:     title,
		Room:           "A",
		Price:          decimal.RequireFromString("8.75"),
		AvailableSeats: 100,
	}
	if err := repo.CreateShow(context.Background(), show); err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	return show
}

func TestPostgresRepo_ShowCRUD(t *testing.T) {
	repo := models.PostgresNewRepo(setupDB(t))
	ctx := context.Background()

	show := newShow(t, repo, "Alien")
	newShow(t, repo, "Heat")

	list, err := repo.ListShows(ctx, "ali")
	if err != nil || len(list) != 1 || list[0].ID != show.ID {
		t.Fatalf("ListShows(search): %v %+v", err, list)
	}

	found, err := repo.UpdateShow(ctx, show.ID, map[string]interface{}{"room": "B"})
	if err != nil || !found {
		t.Fatalf("UpdateShow: %v %v", found, err)
	}
	got, err := repo.GetShowByID(ctx, show.ID)
	if err != nil || got.Room != "B" || !got.Price.Equal(decimal.RequireFromString("8.75")) {
		t.Fatalf("GetShowByID: %v %+v", err, got)
	}

	if found, _ := repo.UpdateShow(ctx, 9999, map[string]interface{}{"room": "C"}); found {
		t.Error("update of missing show reported found")
	}
	if missing, err := repo.GetShowByID(ctx, 9999); err != nil || missing != nil {
		t.Errorf("missing show: %v %v", missing, err)
	}
}

func TestPostgresRepo_DeleteShowCascadesReservations(t *testing.T) {
	repo := models.PostgresNewRepo(setupDB(t))
	ctx := context.Background()

	show := newShow(t, repo, "Alien")
	other := newShow(t, repo, "Heat")

	for _, showID := range []int64{show.ID, show.ID, other.ID} {
		r := &models.Reservation{ShowID: showID, CustomerName: "Ana", Seats: 1, Status: models.StatusReserved}
		if err := repo.CreateReservation(ctx, r); err != nil {
			t.Fatalf("CreateReservation: %v", err)
		}
	}

	deleted, err := repo.DeleteShow(ctx, show.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteShow: %v %v", deleted, err)
	}

	left, err := repo.ListReservations(ctx, 0)
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(left) != 1 || left[0].ShowID != other.ID {
		t.Fatalf("expected only the other show's reservation, got %+v", left)
	}
}

func TestPostgresRepo_ReservationLifecycle(t *testing.T) {
	repo := models.PostgresNewRepo(setupDB(t))
	ctx := context.Background()
	show := newShow(t, repo, "Alien")

	start := time.Now().Add(-time.Second)
	r := &models.Reservation{ShowID: show.ID, CustomerName: "Ana", Seats: 2, Status: models.StatusReserved}
	if err := repo.CreateReservation(ctx, r); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if r.ID == 0 || r.CreatedAt.Before(start) {
		t.Fatalf("id/created_at not populated: %+v", r)
	}
	createdAt := r.CreatedAt

	found, err := repo.UpdateReservation(ctx, r.ID, map[string]interface{}{
		"status":     string(models.StatusConfirmed),
		"created_at": time.Now().Add(48 * time.Hour),
	})
	if err != nil || !found {
		t.Fatalf("UpdateReservation: %v %v", found, err)
	}
	got, err := repo.GetReservationByID(ctx, r.ID)
	if err != nil || got.Status != models.StatusConfirmed {
		t.Fatalf("GetReservationByID: %v %+v", err, got)
	}
	if d := got.CreatedAt.Sub(createdAt); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("created_at changed: %s -> %s", createdAt, got.CreatedAt)
	}

	recent, err := repo.ListReservationsCreatedSince(ctx, start)
	if err != nil || len(recent) != 1 {
		t.Fatalf("ListReservationsCreatedSince: %v %+v", err, recent)
	}
}

func TestPostgresRepo_ReservationConstraints(t *testing.T) {
	db := setupDB(t)
	repo := models.PostgresNewRepo(db)
	ctx := context.Background()
	show := newShow(t, repo, "Alien")

	err := repo.CreateReservation(ctx, &models.Reservation{ShowID: 424242, CustomerName: "Ana", Seats: 1, Status: models.StatusReserved})
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Errorf("expected foreign key violation, got %v", err)
	}

	err = repo.CreateReservation(ctx, &models.Reservation{ShowID: show.ID, CustomerName: "Ana", Seats: 1, Status: "PENDING"})
	if err == nil {
		t.Error("status CHECK constraint not enforced")
	}

	err = repo.CreateReservation(ctx, &models.Reservation{ShowID: show.ID, CustomerName: "Ana", Seats: 0, Status: models.StatusReserved})
	if err == nil {
		t.Error("seats CHECK constraint not enforced")
	}
}

func TestPostgresRepo_UpsertUser(t *testing.T) {
	repo := models.PostgresNewRepo(setupDB(t))
	ctx := context.Background()

	u := &models.User{Username: "admin", PasswordHash: "h1", IsStaff: true, IsActive: true}
	if err := repo.UpsertUser(ctx, u); err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	again := &models.User{Username: "admin", Email: "a@cinema.test", PasswordHash: "h2", IsStaff: true, IsActive: false}
	if err := repo.UpsertUser(ctx, again); err != nil {
		t.Fatalf("UpsertUser (update): %v", err)
	}

	got, err := repo.GetUserByUsername(ctx, "admin")
	if err != nil || got == nil {
		t.Fatalf("GetUserByUsername: %v %v", got, err)
	}
	if got.PasswordHash != "h2" || got.IsActive || got.Email != "a@cinema.test" {
		t.Errorf("upsert did not refresh fields: %+v", got)
	}
	if missing, err := repo.GetUserByUsername(ctx, "nobody"); err != nil || missing != nil {
		t.Errorf("missing user: %v %v", missing, err)
	}
}
