package handler

import (
	"time"

	"appname/internal/domain/entity"
	"appname/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name,omitempty"`
	LastName   string     `json:"last_name,omitempty"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsStaff:    u.IsStaff,
		IsActive:   u.IsActive,
		DateJoined: u.DateJoined,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"` // seconds
	User        *UserResponse `json:"user"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	TermsAcceptedAt         *time.Time `json:"terms_accepted_at"`
	MarketingListAccepted   bool       `json:"marketing_list_accepted"`
	MarketingListAcceptedAt *time.Time `json:"marketing_list_accepted_at"`
	AvatarURL               string     `json:"avatar_url,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func newProfileResponse(out *usecase.ProfileOutput) *ProfileResponse {
	p := out.Profile

	return &ProfileResponse{
		TermsAcceptedAt:         p.TermsAcceptedAt,
		MarketingListAccepted:   p.MarketingListAccepted(),
		MarketingListAcceptedAt: p.MarketingListAcceptedAt,
		AvatarURL:               out.AvatarURL,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

// FeedbackResponse is the public view of a feedback record.
type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newFeedbackResponse(f *entity.UserFeedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		Email:     f.Email,
		Text:      f.Text,
		CreatedAt: f.CreatedAt,
	}
}
