package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"appname/config"
	"appname/internal/domain/repository"
	mockRepo "appname/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

//nolint:gochecknoglobals
var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(avatarMaxBytes int64) *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			AvatarMaxBytes: avatarMaxBytes,
		},
	}
}

// expectTx makes the transaction manager run the callback against factory and
// return whatever the callback returns.
func expectTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
