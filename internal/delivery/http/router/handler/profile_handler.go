package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"appname/internal/delivery/http/response"
	"appname/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarFormField = "avatar"
	sniffLen        = 512
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// MarketingConsentRequest represents the request body for the marketing list opt-in
type MarketingConsentRequest struct {
	Accepted *bool `json:"accepted" validate:"required"`
}

// GetProfile returns the signed-in user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(output), "Profile retrieved successfully")
}

// AcceptTerms records the terms of service acceptance.
func (h *ProfileHandler) AcceptTerms(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.profileUC.AcceptTerms(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(output), "Terms accepted")
}

// SetMarketingConsent opts the user in or out of the marketing list.
func (h *ProfileHandler) SetMarketingConsent(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req MarketingConsentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marketing consent input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.profileUC.SetMarketingConsent(c.Request().Context(), userID, *req.Accepted)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(output), "Marketing consent updated")
}

// UploadAvatar stores the multipart "avatar" file as the new profile picture.
// The content type is sniffed from the file itself, not taken from the client.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"avatar\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to read uploaded avatar")
	}
	head = head[:n]

	output, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, &usecase.AvatarUpload{
		Filename:    fileHeader.Filename,
		ContentType: http.DetectContentType(head),
		Size:        fileHeader.Size,
		Content:     io.MultiReader(bytes.NewReader(head), file),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Debug("Avatar uploaded",
		slog.String("user_id", userID.String()),
		slog.Int64("size", fileHeader.Size),
	)

	return response.Success(c, http.StatusOK, newProfileResponse(output), "Avatar uploaded successfully")
}
