// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"appname/internal/delivery/http/middleware"
	"appname/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	FeedbackHandler *handler.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	profileHandler  *handler.ProfileHandler
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		profileHandler:  params.ProfileHandler,
		feedbackHandler: params.FeedbackHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetMe)
		userGroup.DELETE("", r.userHandler.DeleteAccount)

		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile/terms", r.profileHandler.AcceptTerms)
		userGroup.PUT("/profile/marketing", r.profileHandler.SetMarketingConsent)
		userGroup.PUT("/profile/avatar", r.profileHandler.UploadAvatar)

		userGroup.GET("/feedback", r.feedbackHandler.ListMine)
	}

	// Feedback is open to anonymous visitors; signed-in submitters are attached to their account
	feedbackGroup := e.Group("/feedback")
	{
		feedbackGroup.POST("", r.feedbackHandler.Submit, r.authMiddleware.OptionalAuthenticate)
		feedbackGroup.DELETE("/:id", r.feedbackHandler.Delete, r.authMiddleware.Authenticate)
	}
}
