package entity

import "github.com/google/uuid"

// UserFeedback is a submitted feedback message. It may reference the submitting
// user; anonymous feedback leaves UserID nil and optionally carries an email.
type UserFeedback struct {
	ID     uuid.UUID
	UserID *uuid.UUID `validate:"omitempty"`
	Email  string     `validate:"omitempty,email,max=254"`
	Text   string     `validate:"required"`
	Timestamps
}

// String returns the feedback text.
func (f *UserFeedback) String() string {
	return f.Text
}

// IsAnonymous reports whether the feedback is not attached to an account.
func (f *UserFeedback) IsAnonymous() bool {
	return f.UserID == nil
}
