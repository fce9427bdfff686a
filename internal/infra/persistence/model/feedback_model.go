package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFeedbackModel mirrors the 'user_feedback' table. UserID is nullable;
// anonymous feedback survives every user deletion.
type UserFeedbackModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Email     string     `gorm:"type:varchar(254);not null;default:''"`
	Text      string     `gorm:"type:text;not null;check:chk_user_feedback_text_present,text <> ''"`
	CreatedAt time.Time  `gorm:"autoCreateTime;<-:create"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserFeedbackModel) TableName() string {
	return "user_feedback"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not supply one.
func (m *UserFeedbackModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}
