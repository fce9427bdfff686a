package postgres

import (
	"context"
	"testing"
	"time"

	domainerrors "appname/internal/domain/errors"
	"appname/internal/domain/entity"
	"appname/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_UpdateSetsAndClearsConsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "frank")

	profile, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, profile.MarketingListAccepted())

	now := time.Now()
	profile.MarketingListAcceptedAt = &now
	profile.TermsAcceptedAt = &now
	profile.Avatar = "avatars/frank/a.png"
	require.NoError(t, repo.Update(ctx, profile))

	reloaded, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.MarketingListAccepted())
	assert.True(t, reloaded.TermsAccepted())
	assert.Equal(t, "avatars/frank/a.png", reloaded.Avatar)

	reloaded.MarketingListAcceptedAt = nil
	require.NoError(t, repo.Update(ctx, reloaded))

	cleared, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, cleared.MarketingListAccepted())
	assert.True(t, cleared.TermsAccepted())
}

func TestProfileRepository_CreateForUnknownUser(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.UserProfile{UserID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestProfileRepository_CreateMissingProfile(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := newTestUser("gina")
	user.Profile = nil
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	repo := NewProfileRepository(db)
	_, err := repo.FindByUserID(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	profile := &entity.UserProfile{UserID: user.ID}
	require.NoError(t, repo.Create(ctx, profile))
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestProfileRepository_UpdateMissing(t *testing.T) {
	err := NewProfileRepository(newTestDB(t)).Update(context.Background(), &entity.UserProfile{UserID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
