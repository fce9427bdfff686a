package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "appname/internal/delivery/context"
	"appname/internal/domain/service"
	mockSvc "appname/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newAuthEcho(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	whoami := func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}

		return c.String(http.StatusOK, userID.String())
	}

	e := echo.New()
	e.GET("/required", whoami, m.Authenticate)
	e.GET("/optional", whoami, m.OptionalAuthenticate)
	e.GET("/staff", whoami, m.Authenticate, m.RequireRole("staff"))

	return e, tokenSvc
}

func doGet(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		authorization string
		setup         func(*mockSvc.MockTokenService)
		wantStatus    int
		wantBody      string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "MISSING_TOKEN",
		},
		{
			name:          "not a bearer token",
			authorization: "Basic abc",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "INVALID_TOKEN",
		},
		{
			name:          "rejected token",
			authorization: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:          "valid token",
			authorization: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := newAuthEcho(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec := doGet(e, "/required", tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("anonymous passes through", func(t *testing.T) {
		e, _ := newAuthEcho(t)

		rec := doGet(e, "/optional", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token identifies caller", func(t *testing.T) {
		e, tokenSvc := newAuthEcho(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil).Once()

		rec := doGet(e, "/optional", "Bearer good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), rec.Body.String())
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		e, tokenSvc := newAuthEcho(t)
		tokenSvc.EXPECT().ValidateToken("stale").Return(nil, errors.New("signature is invalid")).Once()

		rec := doGet(e, "/optional", "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	userID := uuid.New()

	t.Run("role present", func(t *testing.T) {
		e, tokenSvc := newAuthEcho(t)
		tokenSvc.EXPECT().ValidateToken("staff").
			Return(&service.Claims{UserID: userID, Roles: []string{"user", "staff"}}, nil).Once()

		rec := doGet(e, "/staff", "Bearer staff")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		e, tokenSvc := newAuthEcho(t)
		tokenSvc.EXPECT().ValidateToken("user").
			Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil).Once()

		rec := doGet(e, "/staff", "Bearer user")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})
}
