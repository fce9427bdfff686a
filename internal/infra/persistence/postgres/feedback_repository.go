package postgres

import (
	"context"

	"appname/internal/domain/entity"
	domainerrors "appname/internal/domain/errors"
	"appname/internal/domain/repository"
	"appname/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create stores the feedback. Empty text and unknown users are rejected by the table constraints.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.UserFeedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("feedback references an unknown user")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("feedback text is required")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserFeedback, error) {
	var feedbackM model.UserFeedbackModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&feedbackM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback")
	}

	return toFeedbackDomain(&feedbackM), nil
}

func (repo *feedbackRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserFeedback, error) {
	var rows []model.UserFeedbackModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedback := make([]*entity.UserFeedback, 0, len(rows))
	for i := range rows {
		feedback = append(feedback, toFeedbackDomain(&rows[i]))
	}

	return feedback, nil
}

func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserFeedbackModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}
