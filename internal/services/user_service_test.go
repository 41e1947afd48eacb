package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshua-takyi/cinema/internal/helpers"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
	"github.com/joshua-takyi/cinema/internal/testutil"
)

const testSecret = "test-secret"

func userRepoWith(t *testing.T, password string, active bool) *testutil.MockUserRepo {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &testutil.MockUserRepo{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			if username != "staff" {
				return nil, nil
			}
			return &models.User{
				ID:           3,
				Username:     "staff",
				Email:        "staff@cinema.test",
				PasswordHash: hash,
				IsStaff:      true,
				IsActive:     active,
			}, nil
		},
	}
}

func TestLogin_Success(t *testing.T) {
	svc := services.NewUserService(userRepoWith(t, "s3cret", true), testSecret, time.Hour)

	res, err := svc.Login(context.Background(), &models.LoginInput{Username: " staff ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.UserID != 3 || !res.IsStaff || res.Email != "staff@cinema.test" || res.Username != "staff" {
		t.Errorf("unexpected result: %+v", res)
	}

	claims, err := svc.ValidateToken(res.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if id, _ := claims.UserID(); id != 3 {
		t.Errorf("subject = %d", id)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	cases := []struct {
		name   string
		active bool
		in     models.LoginInput
	}{
		{"wrong password", true, models.LoginInput{Username: "staff", Password: "nope"}},
		{"unknown user", true, models.LoginInput{Username: "ghost", Password: "s3cret"}},
		{"inactive user", false, models.LoginInput{Username: "staff", Password: "s3cret"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := services.NewUserService(userRepoWith(t, "s3cret", tc.active), testSecret, time.Hour)
			in := tc.in
			if _, err := svc.Login(context.Background(), &in); !errors.Is(err, services.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := services.NewUserService(&testutil.MockUserRepo{}, testSecret, time.Hour)

	_, err := svc.Login(context.Background(), &models.LoginInput{})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["username"] == "" || verr.Fields["password"] == "" {
		t.Errorf("unexpected fields: %v", verr.Fields)
	}
}

func TestEnsureStaffUser(t *testing.T) {
	var saved *models.User
	repo := &testutil.MockUserRepo{
		UpsertUserFunc: func(ctx context.Context, u *models.User) error {
			saved = u
			return nil
		},
	}
	svc := services.NewUserService(repo, testSecret, time.Hour)

	if _, err := svc.EnsureStaffUser(context.Background(), "admin", "pw", "a@b.c"); err != nil {
		t.Fatalf("EnsureStaffUser: %v", err)
	}
	if saved == nil || !saved.IsStaff || !saved.IsActive {
		t.Fatalf("unexpected user: %+v", saved)
	}
	if !helpers.CheckPassword(saved.PasswordHash, "pw") {
		t.Error("password was not hashed correctly")
	}

	if _, err := svc.EnsureStaffUser(context.Background(), "", "pw", ""); err == nil {
		t.Error("empty username should fail")
	}
}
