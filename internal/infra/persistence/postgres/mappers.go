package postgres

import (
	"appname/internal/domain/entity"
	"appname/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.Password,
		IsStaff:      data.IsStaff,
		IsActive:     data.IsActive,
		IsSuperuser:  data.IsSuperuser,
		LastLogin:    data.LastLogin,
		DateJoined:   data.DateJoined,
		Profile:      toProfileDomain(data.Profile),
		Timestamps: entity.Timestamps{
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Username:    data.Username,
		Email:       data.Email,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Password:    data.PasswordHash,
		IsStaff:     data.IsStaff,
		IsActive:    data.IsActive,
		IsSuperuser: data.IsSuperuser,
		LastLogin:   data.LastLogin,
		DateJoined:  data.DateJoined,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Profile:     fromProfileDomain(data.Profile),
	}
}

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:                  data.UserID,
		TermsAcceptedAt:         data.TermsAcceptedAt,
		MarketingListAcceptedAt: data.MarketingListAcceptedAt,
		Avatar:                  data.Avatar,
		Timestamps: entity.Timestamps{
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:                  data.UserID,
		TermsAcceptedAt:         data.TermsAcceptedAt,
		MarketingListAcceptedAt: data.MarketingListAcceptedAt,
		Avatar:                  data.Avatar,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func toFeedbackDomain(data *model.UserFeedbackModel) *entity.UserFeedback {
	if data == nil {
		return nil
	}

	return &entity.UserFeedback{
		ID:     data.ID,
		UserID: data.UserID,
		Email:  data.Email,
		Text:   data.Text,
		Timestamps: entity.Timestamps{
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

func fromFeedbackDomain(data *entity.UserFeedback) *model.UserFeedbackModel {
	if data == nil {
		return nil
	}

	return &model.UserFeedbackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Email:     data.Email,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
