package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"appname/config"
	deliverycontext "appname/internal/delivery/context"
	"appname/internal/domain/constants"
	"appname/internal/domain/entity"
	domainerrors "appname/internal/domain/errors"
	"appname/internal/domain/repository"
	"appname/internal/domain/service"
	"appname/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	storage        service.AvatarStorage
	tracker        eventTracker
	avatarMaxBytes int64
	logger         *slog.Logger
	now            func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Storage   service.AvatarStorage
	Analytics service.AnalyticsClient
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	var maxBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxBytes = params.Config.Storage.AvatarMaxBytes
	}

	return &profileService{
		txManager:      params.TxManager,
		storage:        params.Storage,
		tracker:        eventTracker{client: params.Analytics, logger: params.Logger},
		avatarMaxBytes: maxBytes,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile of the user, creating it if missing.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	return srv.mutate(ctx, userID, "failed to get user profile", nil)
}

// AcceptTerms stamps the terms acceptance time.
func (srv *profileService) AcceptTerms(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	out, err := srv.mutate(ctx, userID, "failed to accept terms", func(profile *entity.UserProfile) {
		now := srv.now()
		profile.TermsAcceptedAt = &now
	})
	if err != nil {
		return nil, err
	}

	srv.tracker.track(ctx, userID.String(), constants.EventTermsAccepted, nil)

	return out, nil
}

// SetMarketingConsent stamps or clears the marketing list acceptance time.
func (srv *profileService) SetMarketingConsent(ctx context.Context, userID uuid.UUID, accepted bool) (*usecase.ProfileOutput, error) {
	out, err := srv.mutate(ctx, userID, "failed to update marketing consent", func(profile *entity.UserProfile) {
		if !accepted {
			profile.MarketingListAcceptedAt = nil

			return
		}
		// Keep the original opt-in time when consent is repeated.
		if profile.MarketingListAcceptedAt == nil {
			now := srv.now()
			profile.MarketingListAcceptedAt = &now
		}
	})
	if err != nil {
		return nil, err
	}

	srv.tracker.track(ctx, userID.String(), constants.EventMarketingConsentChanged, map[string]string{
		"accepted": strconv.FormatBool(accepted),
	})

	return out, nil
}

// UploadAvatar stores the image under avatars/<user>/ and points the profile at it.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, upload *usecase.AvatarUpload) (*usecase.ProfileOutput, error) {
	contentType := strings.ToLower(strings.TrimSpace(strings.SplitN(upload.ContentType, ";", 2)[0]))
	defaultExt, ok := avatarExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrAvatarUnsupportedType.WrapMessage("content type " + upload.ContentType)
	}
	if srv.avatarMaxBytes > 0 && upload.Size > srv.avatarMaxBytes {
		return nil, domainerrors.ErrAvatarTooLarge.WrapMessage(strconv.FormatInt(upload.Size, 10) + " bytes")
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext == "" || ext == "." {
		ext = defaultExt
	}
	key := constants.AvatarPrefix + userID.String() + "/" + uuid.NewString() + ext

	content := upload.Content
	if srv.avatarMaxBytes > 0 {
		content = io.LimitReader(upload.Content, srv.avatarMaxBytes+1)
	}

	written, err := srv.storage.Put(ctx, key, contentType, content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if srv.avatarMaxBytes > 0 && written > srv.avatarMaxBytes {
		srv.discardAvatar(ctx, key)

		return nil, domainerrors.ErrAvatarTooLarge.WrapMessage("upload exceeded the size limit")
	}

	var previous string
	out, err := srv.mutate(ctx, userID, "failed to update avatar", func(profile *entity.UserProfile) {
		previous = profile.Avatar
		profile.Avatar = key
	})
	if err != nil {
		srv.discardAvatar(ctx, key)

		return nil, err
	}

	if previous != "" && previous != key {
		srv.discardAvatar(ctx, previous)
	}

	srv.tracker.track(ctx, userID.String(), constants.EventAvatarUpdated, map[string]string{
		"content_type": contentType,
		"size":         strconv.FormatInt(written, 10),
	})

	return out, nil
}

// mutate loads the profile, creating it when missing, applies change and
// saves it. A nil change only loads.
func (srv *profileService) mutate(ctx context.Context, userID uuid.UUID, failMsg string, change func(*entity.UserProfile)) (*usecase.ProfileOutput, error) {
	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := loadOrCreateProfile(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		if change != nil {
			change(found)
			if err := profileRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to save profile")
			}
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	return srv.toOutput(ctx, profile), nil
}

func (srv *profileService) toOutput(ctx context.Context, profile *entity.UserProfile) *usecase.ProfileOutput {
	out := &usecase.ProfileOutput{Profile: profile}
	if !profile.HasAvatar() {
		return out
	}

	url, err := srv.storage.URL(ctx, profile.Avatar)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve avatar url", slog.String("key", profile.Avatar), slog.Any("error", err))

		return out
	}
	out.AvatarURL = url

	return out
}

func (srv *profileService) discardAvatar(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove avatar object", slog.String("key", key), slog.Any("error", err))
	}
}

// loadOrCreateProfile returns the user's profile, creating an empty one for
// accounts registered without it.
func loadOrCreateProfile(ctx context.Context, profileRepo repository.ProfileRepository, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.UserProfile{UserID: userID}
	if err := profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidReference) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}
