package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated before insert.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(254);index"`
	FirstName    string    `gorm:"type:varchar(150)"`
	LastName     string    `gorm:"type:varchar(150)"`
	Password     string    `gorm:"type:varchar(128);not null;default:''"`
	IsStaff      bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
	LastLogin    *time.Time
	DateJoined   time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;<-:create"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Profile  *UserProfileModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Feedback []UserFeedbackModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not supply one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
type UserProfileModel struct {
	UserID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TermsAcceptedAt         *time.Time
	MarketingListAcceptedAt *time.Time
	Avatar                  string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt               time.Time `gorm:"autoCreateTime;<-:create"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
