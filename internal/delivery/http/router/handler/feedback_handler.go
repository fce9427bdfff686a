package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "appname/internal/delivery/context"
	"appname/internal/delivery/http/response"
	"appname/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler holds dependencies for feedback handlers.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// SubmitFeedbackRequest represents the request body for a feedback submission
type SubmitFeedbackRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=254"`
	Text  string `json:"text" validate:"required"`
}

// Submit stores feedback from a signed-in or anonymous visitor.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.SubmitFeedbackInput{
		Email: req.Email,
		Text:  req.Text,
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		input.UserID = &userID
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newFeedbackResponse(feedback), "Feedback submitted successfully")
}

// ListMine returns the signed-in user's feedback, newest first.
func (h *FeedbackHandler) ListMine(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	feedbacks, err := h.feedbackUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		items = append(items, newFeedbackResponse(f))
	}

	return response.Success(c, http.StatusOK, items, "Feedback retrieved successfully")
}

// Delete removes one of the signed-in user's feedback records.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid feedback ID")
	}

	if err := h.feedbackUC.Delete(c.Request().Context(), userID, feedbackID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feedback deleted successfully")
}
