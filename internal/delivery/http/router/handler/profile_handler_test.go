package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appname/internal/domain/entity"
	domainerrors "appname/internal/domain/errors"
	mockUsecase "appname/internal/mocks/usecase"
	"appname/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type profileHandlerFixtures struct {
	e         *echo.Echo
	profileUC *mockUsecase.MockProfileUsecase
	userID    uuid.UUID
}

func createProfileHandlerFixtures(t *testing.T) profileHandlerFixtures {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: newDiscardLogger()})
	userID := uuid.New()

	e := newTestEcho()
	g := e.Group("/user/profile", asUser(userID))
	g.GET("", h.GetProfile)
	g.PUT("/terms", h.AcceptTerms)
	g.PUT("/marketing", h.SetMarketingConsent)
	g.PUT("/avatar", h.UploadAvatar)

	return profileHandlerFixtures{e: e, profileUC: profileUC, userID: userID}
}

func multipartAvatar(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestProfileHandler_GetProfile(t *testing.T) {
	fix := createProfileHandlerFixtures(t)
	acceptedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	fix.profileUC.EXPECT().
		GetProfile(mock.Anything, fix.userID).
		Return(&usecase.ProfileOutput{
			Profile:   &entity.UserProfile{UserID: fix.userID, MarketingListAcceptedAt: &acceptedAt},
			AvatarURL: "https://cdn.example.com/avatars/a.png",
		}, nil).
		Once()

	rec := serve(fix.e, http.MethodGet, "/user/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var out ProfileResponse
	decodeEnvelope(t, rec, &out)
	assert.True(t, out.MarketingListAccepted)
	require.NotNil(t, out.MarketingListAcceptedAt)
	assert.True(t, acceptedAt.Equal(*out.MarketingListAcceptedAt))
	assert.Nil(t, out.TermsAcceptedAt)
	assert.Equal(t, "https://cdn.example.com/avatars/a.png", out.AvatarURL)
}

func TestProfileHandler_AcceptTerms(t *testing.T) {
	fix := createProfileHandlerFixtures(t)
	now := time.Now().UTC()

	fix.profileUC.EXPECT().
		AcceptTerms(mock.Anything, fix.userID).
		Return(&usecase.ProfileOutput{Profile: &entity.UserProfile{UserID: fix.userID, TermsAcceptedAt: &now}}, nil).
		Once()

	rec := serve(fix.e, http.MethodPut, "/user/profile/terms", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var out ProfileResponse
	decodeEnvelope(t, rec, &out)
	assert.NotNil(t, out.TermsAcceptedAt)
	assert.False(t, out.MarketingListAccepted)
}

func TestProfileHandler_SetMarketingConsent(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		accepted bool
	}{
		{name: "opt in", body: `{"accepted":true}`, accepted: true},
		{name: "opt out", body: `{"accepted":false}`, accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fix := createProfileHandlerFixtures(t)
			profile := &entity.UserProfile{UserID: fix.userID}
			if tt.accepted {
				now := time.Now()
				profile.MarketingListAcceptedAt = &now
			}

			fix.profileUC.EXPECT().
				SetMarketingConsent(mock.Anything, fix.userID, tt.accepted).
				Return(&usecase.ProfileOutput{Profile: profile}, nil).
				Once()

			rec := serve(fix.e, http.MethodPut, "/user/profile/marketing", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			var out ProfileResponse
			decodeEnvelope(t, rec, &out)
			assert.Equal(t, tt.accepted, out.MarketingListAccepted)
		})
	}
}

func TestProfileHandler_SetMarketingConsent_MissingField(t *testing.T) {
	fix := createProfileHandlerFixtures(t)

	rec := serve(fix.e, http.MethodPut, "/user/profile/marketing", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fix.profileUC.AssertNotCalled(t, "SetMarketingConsent", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	fix := createProfileHandlerFixtures(t)
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x42}, 1024)...)

	fix.profileUC.EXPECT().
		UploadAvatar(mock.Anything, fix.userID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, upload *usecase.AvatarUpload) (*usecase.ProfileOutput, error) {
			assert.Equal(t, "me.png", upload.Filename)
			assert.Equal(t, "image/png", upload.ContentType)
			assert.Equal(t, int64(len(content)), upload.Size)

			got, err := io.ReadAll(upload.Content)
			require.NoError(t, err)
			assert.Equal(t, content, got)

			return &usecase.ProfileOutput{
				Profile:   &entity.UserProfile{UserID: fix.userID, Avatar: "avatars/x.png"},
				AvatarURL: "/media/avatars/x.png",
			}, nil
		}).
		Once()

	body, contentType := multipartAvatar(t, "avatar", "me.png", content)
	req := httptest.NewRequest(http.MethodPut, "/user/profile/avatar", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	fix.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out ProfileResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, "/media/avatars/x.png", out.AvatarURL)
}

func TestProfileHandler_UploadAvatar_UnsupportedType(t *testing.T) {
	fix := createProfileHandlerFixtures(t)

	fix.profileUC.EXPECT().
		UploadAvatar(mock.Anything, fix.userID, mock.MatchedBy(func(u *usecase.AvatarUpload) bool {
			return u.ContentType == "text/plain; charset=utf-8"
		})).
		Return(nil, errors.Wrap(domainerrors.ErrAvatarUnsupportedType, "text/plain")).
		Once()

	body, contentType := multipartAvatar(t, "avatar", "me.png", []byte("definitely not an image"))
	req := httptest.NewRequest(http.MethodPut, "/user/profile/avatar", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	fix.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestProfileHandler_UploadAvatar_MissingField(t *testing.T) {
	fix := createProfileHandlerFixtures(t)

	body, contentType := multipartAvatar(t, "picture", "me.png", pngHeader)
	req := httptest.NewRequest(http.MethodPut, "/user/profile/avatar", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	fix.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}
