package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joshua-takyi/cinema/internal/helpers"
	"github.com/joshua-takyi/cinema/internal/models"
)

// compared against when the username is unknown so both paths cost a bcrypt check
var (
	dummyHashOnce sync.Once
	dummyHash     string
)

func unknownUserHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = helpers.HashPassword("unknown-user-placeholder")
	})
	return dummyHash
}

type LoginResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	Email    string `json:"email"`
}

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(userRepo models.UserRepo, jwtSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (us *UserService) Login(ctx context.Context, in *models.LoginInput) (*LoginResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := models.AsValidationError(models.Validate.Struct(in)); err != nil {
		return nil, err
	}

	user, err := us.userRepo.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		helpers.CheckPassword(unknownUserHash(), in.Password)
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(user.PasswordHash, in.Password) || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := helpers.IssueToken(us.jwtSecret, user.ID, user.Username, user.Email, user.IsStaff, us.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
		Email:    user.Email,
	}, nil
}

func (us *UserService) ValidateToken(token string) (*helpers.CustomClaims, error) {
	return helpers.ValidateToken(us.jwtSecret, token)
}

// EnsureStaffUser creates or refreshes an active staff account.
func (us *UserService) EnsureStaffUser(ctx context.Context, username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		IsStaff:      true,
		IsActive:     true,
	}
	if err := us.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
