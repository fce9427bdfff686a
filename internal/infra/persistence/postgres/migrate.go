package postgres

import (
	"appname/internal/errors"
	"appname/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the account tables. The parent model is listed
// first so the cascading foreign keys declared on it are created with the child tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.UserProfileModel{},
		&model.UserFeedbackModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate account tables")
	}

	return nil
}
