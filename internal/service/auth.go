package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Auth provides user registration and credential verification.
type Auth struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		logger:    logger,
	}
}

// Register validates the params, hashes the password and creates the user.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	email := strings.TrimSpace(params.Email)
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, fmt.Errorf("%w: email is required", model.ErrInvalidInput)
	}
	if len(params.Password) < minPasswordLength {
		return model.User{}, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalidInput, minPasswordLength)
	}

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(params.Name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", email,
		"user_id", savedUser.ID)

	return savedUser, nil
}

// Login verifies the email/password pair and returns the user. Missing user
// and wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		a.logger.Info("Auth service: password verification failed",
			"email", email)
		return model.User{}, model.ErrInvalidCredentials
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", email,
		"user_id", user.ID)

	return user, nil
}
