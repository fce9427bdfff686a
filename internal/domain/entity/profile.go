package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds supplementary data of exactly one User.
// It is removed together with its owning user.
type UserProfile struct {
	UserID                  uuid.UUID  // Primary key and foreign key to the owning user.
	TermsAcceptedAt         *time.Time // When the terms of service were accepted; nil if never.
	MarketingListAcceptedAt *time.Time // When the marketing list opt-in was given; nil if not opted in.
	Avatar                  string     // Bucket key of the avatar image; empty when unset.
	Timestamps
}

// MarketingListAccepted reports whether the user is on the marketing list.
func (p *UserProfile) MarketingListAccepted() bool {
	return p.MarketingListAcceptedAt != nil
}

// TermsAccepted reports whether the terms of service have been accepted.
func (p *UserProfile) TermsAccepted() bool {
	return p.TermsAcceptedAt != nil
}

// HasAvatar reports whether an avatar object is attached.
func (p *UserProfile) HasAvatar() bool {
	return p.Avatar != ""
}
