package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

type userHandlerFixtures struct {
	e      *echo.Echo
	userUC *mockUsecase.MockUserUsecase
	userID uuid.UUID
}

func createUserHandlerFixtures(t *testing.T) userHandlerFixtures {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	userID := uuid.New()

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/user", h.GetMe, asUser(userID))
	e.DELETE("/user", h.DeleteAccount, asUser(userID))
	e.GET("/anonymous/user", h.GetMe)

	return userHandlerFixtures{e: e, userUC: userUC, userID: userID}
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Register(t *testing.T) {
	fix := createUserHandlerFixtures(t)
	created := &entity.User{
		ID:           uuid.New(),
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: "secret-hash",
		IsActive:     true,
	}

	fix.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "jane",
			Email:    "jane@example.com",
			Password: "correct horse",
		}).
		Return(created, nil).
		Once()

	rec := serve(fix.e, http.MethodPost, "/auth/register",
		`{"username":"jane","email":"jane@example.com","password":"correct horse"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var user UserResponse
	env := decodeEnvelope(t, rec, &user)
	assert.True(t, env.Success)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserHandler_Register_ValidationError(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	rec := serve(fix.e, http.MethodPost, "/auth/register",
		`{"username":"jane","email":"not-an-email","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
	fix.userUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	fix.userUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "duplicate username")).
		Once()

	rec := serve(fix.e, http.MethodPost, "/auth/register",
		`{"username":"jane","email":"jane@example.com","password":"correct horse"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	rec := serve(fix.e, http.MethodPost, "/auth/register", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestUserHandler_Login(t *testing.T) {
	fix := createUserHandlerFixtures(t)
	user := &entity.User{ID: uuid.New(), Username: "jane", Email: "jane@example.com"}

	fix.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "jane", Password: "correct horse"}).
		Return(&usecase.LoginOutput{AccessToken: "token-abc", ExpiresIn: 15 * time.Minute, User: user}, nil).
		Once()

	rec := serve(fix.e, http.MethodPost, "/auth/login", `{"username":"jane","password":"correct horse"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out LoginResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(900), out.ExpiresIn)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	fix.userUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")).
		Once()

	rec := serve(fix.e, http.MethodPost, "/auth/login", `{"username":"jane","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestUserHandler_GetMe(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	fix.userUC.EXPECT().
		GetUser(mock.Anything, fix.userID).
		Return(&entity.User{ID: fix.userID, Username: "jane"}, nil).
		Once()

	rec := serve(fix.e, http.MethodGet, "/user", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var user UserResponse
	decodeEnvelope(t, rec, &user)
	assert.Equal(t, fix.userID, user.ID)
}

func TestUserHandler_GetMe_WithoutIdentity(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	rec := serve(fix.e, http.MethodGet, "/anonymous/user", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	fix.userUC.EXPECT().DeleteAccount(mock.Anything, fix.userID).Return(nil).Once()

	rec := serve(fix.e, http.MethodDelete, "/user", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec, nil).Success)
}

func TestUserHandler_DeleteAccount_NotFound(t *testing.T) {
	fix := createUserHandlerFixtures(t)

	fix.userUC.EXPECT().
		DeleteAccount(mock.Anything, fix.userID).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "record not found")).
		Once()

	rec := serve(fix.e, http.MethodDelete, "/user", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeEnvelope(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}
