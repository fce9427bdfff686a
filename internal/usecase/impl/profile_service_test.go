package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"appname/internal/domain/constants"
	"appname/internal/domain/entity"
	domainerrors "appname/internal/domain/errors"
	"appname/internal/domain/repository"
	mockRepo "appname/internal/mocks/repository"
	mockSvc "appname/internal/mocks/service"
	"appname/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
	storage     *mockSvc.MockAvatarStorage
	analytics   *mockSvc.MockAnalyticsClient
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		storage:     mockSvc.NewMockAvatarStorage(t),
		analytics:   mockSvc.NewMockAnalyticsClient(t),
	}

	svc := NewProfileService(ProfileServiceParams{
		TxManager: fx.txManager,
		Storage:   fx.storage,
		Analytics: fx.analytics,
		Config:    newTestConfig(16),
		Logger:    newDiscardLogger(),
	})
	svc.(*profileService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func (fx profileServiceFixtures) expectProfileTx(ctx context.Context) {
	expectTx(fx.txManager, ctx, fx.factory)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.UserProfile{UserID: userID, Avatar: "avatars/u/a.png"}

	fx.expectProfileTx(ctx)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	fx.storage.EXPECT().URL(ctx, "avatars/u/a.png").Return("https://cdn.example.com/avatars/u/a.png", nil)

	out, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, out.Profile)
	assert.Equal(t, "https://cdn.example.com/avatars/u/a.png", out.AvatarURL)
}

func TestProfileService_GetProfile_CreatesMissing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectProfileTx(ctx)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool { return p.UserID == userID })).
		Return(nil)

	out, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, out.Profile.UserID)
	assert.False(t, out.Profile.MarketingListAccepted())
	assert.Empty(t, out.AvatarURL)
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectProfileTx(ctx)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrInvalidReference.WrapMessage("fk"))

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_AcceptTerms(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectProfileTx(ctx)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.UserProfile{UserID: userID}, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
			return p.TermsAcceptedAt != nil && p.TermsAcceptedAt.Equal(fixedNow)
		})).
		Return(nil)
	fx.analytics.EXPECT().Capture(ctx, userID.String(), constants.EventTermsAccepted, mock.Anything).Return(nil)

	out, err := fx.service.AcceptTerms(ctx, userID)

	require.NoError(t, err)
	assert.True(t, out.Profile.TermsAccepted())
}

func TestProfileService_SetMarketingConsent(t *testing.T) {
	earlier := fixedNow.Add(-48 * time.Hour)

	tests := []struct {
		name     string
		existing *time.Time
		accepted bool
		want     *time.Time
	}{
		{name: "opt in", existing: nil, accepted: true, want: &fixedNow},
		{name: "repeat opt in keeps first time", existing: &earlier, accepted: true, want: &earlier},
		{name: "opt out clears", existing: &earlier, accepted: false, want: nil},
		{name: "opt out when never accepted", existing: nil, accepted: false, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			userID := uuid.New()

			fx.expectProfileTx(ctx)
			fx.profileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.UserProfile{UserID: userID, MarketingListAcceptedAt: tt.existing}, nil)
			fx.profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)
			fx.analytics.EXPECT().
				Capture(ctx, userID.String(), constants.EventMarketingConsentChanged, mock.Anything).
				Return(errors.New("analytics down"))

			out, err := fx.service.SetMarketingConsent(ctx, userID, tt.accepted)

			require.NoError(t, err)
			assert.Equal(t, tt.accepted, out.Profile.MarketingListAccepted())
			if tt.want == nil {
				assert.Nil(t, out.Profile.MarketingListAcceptedAt)
			} else {
				require.NotNil(t, out.Profile.MarketingListAcceptedAt)
				assert.True(t, tt.want.Equal(*out.Profile.MarketingListAcceptedAt))
			}
		})
	}
}

func TestProfileService_UploadAvatar_ReplacesPrevious(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	prefix := constants.AvatarPrefix + userID.String() + "/"

	var storedKey string
	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, ".png") }), "image/png", mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
			storedKey = key
			return io.Copy(io.Discard, r)
		})
	fx.expectProfileTx(ctx)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.UserProfile{UserID: userID, Avatar: "avatars/old.png"}, nil)
	fx.profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "avatars/old.png").Return(nil)
	fx.storage.EXPECT().URL(ctx, mock.Anything).Return("https://cdn.example.com/new.png", nil)
	fx.analytics.EXPECT().Capture(ctx, userID.String(), constants.EventAvatarUpdated, mock.Anything).Return(nil)

	out, err := fx.service.UploadAvatar(ctx, userID, &usecase.AvatarUpload{
		Filename:    "me.PNG",
		ContentType: "image/png",
		Size:        8,
		Content:     bytes.NewReader([]byte("pngbytes")),
	})

	require.NoError(t, err)
	assert.Equal(t, storedKey, out.Profile.Avatar)
	assert.Equal(t, "https://cdn.example.com/new.png", out.AvatarURL)
}

func TestProfileService_UploadAvatar_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		upload  *usecase.AvatarUpload
		wantErr error
	}{
		{
			name:    "unsupported type",
			upload:  &usecase.AvatarUpload{Filename: "a.svg", ContentType: "image/svg+xml", Size: 4, Content: strings.NewReader("<svg")},
			wantErr: domainerrors.ErrAvatarUnsupportedType,
		},
		{
			name:    "declared size too large",
			upload:  &usecase.AvatarUpload{Filename: "a.png", ContentType: "image/png", Size: 17, Content: strings.NewReader("x")},
			wantErr: domainerrors.ErrAvatarTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UploadAvatar(context.Background(), uuid.New(), tt.upload)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestProfileService_UploadAvatar_StreamTooLarge(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.storage.EXPECT().
		Put(ctx, mock.Anything, "image/jpeg", mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
			return io.Copy(io.Discard, r)
		})
	fx.storage.EXPECT().Delete(ctx, mock.Anything).Return(nil)

	_, err := fx.service.UploadAvatar(ctx, uuid.New(), &usecase.AvatarUpload{
		Filename:    "photo",
		ContentType: "image/jpeg; charset=binary",
		Content:     strings.NewReader(strings.Repeat("x", 64)),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAvatarTooLarge))
}

func TestProfileService_UploadAvatar_SaveFailureDiscardsObject(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	var storedKey string
	fx.storage.EXPECT().
		Put(ctx, mock.Anything, "image/gif", mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
			storedKey = key
			return 3, nil
		})
	fx.expectProfileTx(ctx)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.UserProfile{UserID: userID}, nil)
	fx.profileRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("db down"))
	fx.storage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool { return key == storedKey && strings.HasSuffix(key, ".gif") })).
		Return(nil)

	_, err := fx.service.UploadAvatar(ctx, userID, &usecase.AvatarUpload{
		Filename:    "",
		ContentType: "image/gif",
		Size:        3,
		Content:     strings.NewReader("gif"),
	})

	require.Error(t, err)
}

func TestProfileService_UploadAvatar_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.storage.EXPECT().Put(ctx, mock.Anything, "image/webp", mock.Anything).Return(0, errors.New("quota exceeded"))

	_, err := fx.service.UploadAvatar(ctx, uuid.New(), &usecase.AvatarUpload{
		Filename:    "a.webp",
		ContentType: "image/webp",
		Size:        1,
		Content:     strings.NewReader("w"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailed))
}
