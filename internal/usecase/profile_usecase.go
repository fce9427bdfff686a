package usecase

import (
	"context"
	"io"

	"appname/internal/domain/entity"

	"github.com/google/uuid"
)

// AvatarUpload carries an uploaded avatar image.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ProfileOutput is a profile with its avatar resolved to a fetchable URL.
type ProfileOutput struct {
	Profile   *entity.UserProfile
	AvatarURL string
}

// ProfileUsecase defines the interface for profile-related business operations.
// Every operation creates the profile first when the account has none.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// AcceptTerms records the current time as the terms acceptance time.
	AcceptTerms(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// SetMarketingConsent stamps the marketing list acceptance time, or clears it when accepted is false.
	SetMarketingConsent(ctx context.Context, userID uuid.UUID, accepted bool) (*ProfileOutput, error)

	// UploadAvatar stores the image and replaces the previous avatar.
	UploadAvatar(ctx context.Context, userID uuid.UUID, upload *AvatarUpload) (*ProfileOutput, error)
}
