package usecase

import (
	"context"

	"appname/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitFeedbackInput defines the data of a feedback submission.
// UserID is nil for anonymous submissions.
type SubmitFeedbackInput struct {
	UserID *uuid.UUID
	Email  string
	Text   string
}

// FeedbackUsecase defines the interface for feedback operations.
type FeedbackUsecase interface {
	// Submit validates and stores the feedback. A signed-in submitter without
	// an explicit email is recorded with the account email.
	Submit(ctx context.Context, input *SubmitFeedbackInput) (*entity.UserFeedback, error)

	// ListMine returns the feedback submitted by the user, newest first.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.UserFeedback, error)

	// Delete removes a feedback record owned by the requester.
	Delete(ctx context.Context, requesterID, feedbackID uuid.UUID) error
}
