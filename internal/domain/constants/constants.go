// Package constants defines string constants shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Analytics providers accepted in analytics.provider.
const (
	AnalyticsProviderPostHog = "posthog"
	AnalyticsProviderHTTP    = "http"
	AnalyticsProviderPubSub  = "pubsub"
)

// Product events emitted by the account use cases.
const (
	EventUserSignedUp            = "user_signed_up"
	EventUserDeleted             = "user_deleted"
	EventTermsAccepted           = "terms_accepted"
	EventMarketingConsentChanged = "marketing_consent_changed"
	EventAvatarUpdated           = "avatar_updated"
	EventFeedbackSubmitted       = "feedback_submitted"
)

// AvatarPrefix is the bucket prefix all avatar objects live under.
const AvatarPrefix = "avatars/"
