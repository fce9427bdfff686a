// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"appname/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with the profile preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the first user registered with the email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and, when attached, its profile.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the account fields of an existing user. The profile is not touched.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. The storage cascades the removal to the profile
	// and to every feedback record that references the user.
	Delete(ctx context.Context, id uuid.UUID) error
}
