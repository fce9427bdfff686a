package entity

import "time"

// Timestamps carries the auditing fields shared by every persisted entity.
// CreatedAt is assigned once by the storage layer; UpdatedAt is refreshed on every write.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
