// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"appname/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string `validate:"required,max=150"`
	Email     string `validate:"required,email,max=254"`
	Password  string `validate:"required,min=8,max=72"`
	FirstName string `validate:"max=150"`
	LastName  string `validate:"max=150"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates the account together with its empty profile.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies the credentials, stamps the last login time and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteAccount removes the user, its profile, its feedback and its stored avatar.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
