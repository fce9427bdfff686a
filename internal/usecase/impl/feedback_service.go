package impl

import (
	"context"
	"log/slog"
	"strings"

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

const anonymousDistinctID = "anonymous"

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	txManager repository.TransactionManager
	tracker   eventTracker
	logger    *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Analytics service.AnalyticsClient
	Logger    *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager: params.TxManager,
		tracker:   eventTracker{client: params.Analytics, logger: params.Logger},
		logger:    params.Logger,
	}
}

// Submit validates and stores a feedback record.
func (srv *feedbackService) Submit(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.UserFeedback, error) {
	feedback := &entity.UserFeedback{
		UserID: input.UserID,
		Email:  strings.TrimSpace(input.Email),
		Text:   strings.TrimSpace(input.Text),
	}
	if err := validateStruct(feedback); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if feedback.UserID != nil && feedback.Email == "" {
			user, err := repoFactory.UserRepo().FindByID(ctx, *feedback.UserID)
			if err != nil {
				return mapUserLookupError(err)
			}
			feedback.Email = user.Email
		}

		if err := repoFactory.FeedbackRepo().Create(ctx, feedback); err != nil {
			return errors.Wrap(err, "failed to store feedback")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit feedback")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Feedback submitted",
		slog.Any("feedbackID", feedback.ID),
		slog.Bool("anonymous", feedback.IsAnonymous()),
	)

	distinctID := anonymousDistinctID
	if !feedback.IsAnonymous() {
		distinctID = feedback.UserID.String()
	}
	srv.tracker.track(ctx, distinctID, constants.EventFeedbackSubmitted, map[string]string{
		"feedback_id": feedback.ID.String(),
	})

	return feedback, nil
}

// ListMine returns the requester's feedback, newest first.
func (srv *feedbackService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.UserFeedback, error) {
	var list []*entity.UserFeedback

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.FeedbackRepo().ListByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list feedback")
		}
		list = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user feedback")
	}

	return list, nil
}

// Delete removes a feedback record. Only its author may remove it.
func (srv *feedbackService) Delete(ctx context.Context, requesterID, feedbackID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.FeedbackRepo()

		feedback, err := feedbackRepo.FindByID(ctx, feedbackID)
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return errors.Wrap(domainerrors.ErrFeedbackNotFound, err.Error())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find feedback")
		}

		if feedback.IsAnonymous() || *feedback.UserID != requesterID {
			return errors.Wrap(domainerrors.ErrForbidden, "feedback belongs to another submitter")
		}

		if err := feedbackRepo.Delete(ctx, feedbackID); err != nil {
			return errors.Wrap(err, "failed to delete feedback")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}
