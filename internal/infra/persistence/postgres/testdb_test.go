package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"appname/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with foreign keys
// enforced and the account schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db = Configure(db, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, Migrate(db))

	return db
}

func newTestUser(username string) *entity.User {
	return &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
		DateJoined:   time.Now(),
		Profile:      &entity.UserProfile{},
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := newTestUser(username)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}
