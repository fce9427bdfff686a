package repository

import (
	"context"
	"errors"

	"appname/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback record does not exist.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository persists submitted feedback.
type FeedbackRepository interface {
	// Create stores a new feedback record. A missing text or a dangling user
	// reference is rejected by the storage constraints.
	Create(ctx context.Context, feedback *entity.UserFeedback) error

	// FindByID retrieves a feedback record by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserFeedback, error)

	// ListByUserID returns the feedback submitted by a user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserFeedback, error)

	// Delete purges a single feedback record.
	Delete(ctx context.Context, id uuid.UUID) error
}
