// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"kitchenlink/internal/delivery/http/middleware"
	"kitchenlink/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	LocationHandler  *handler.LocationHandler
	OpinionHandler   *handler.OpinionHandler
	QuestionHandler  *handler.QuestionHandler
	GeocodingHandler *handler.GeocodingHandler

	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
	SessionMiddleware   *middleware.SessionMiddleware
	GateMiddleware      *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)
	e.Use(r.params.SessionMiddleware.Process)
	e.Use(r.params.GateMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login flow; public by the gate's path rules
	authGroup := e.Group("/api/auth")
	{
		authGroup.GET("/login", r.params.AuthHandler.Login)
		authGroup.GET("/callback", r.params.AuthHandler.Callback)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.GET("/session", r.params.AuthHandler.Session)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	api := e.Group("/api")
	{
		// Accounts and onboarding
		api.POST("/account/user", r.params.AccountHandler.CreateUserAccount)
		api.POST("/account/store", r.params.AccountHandler.CreateStoreAccount)
		api.GET("/account", r.params.AccountHandler.GetAccount)
		api.PUT("/account/user", r.params.AccountHandler.UpdateUserProfile)
		api.PUT("/account/store", r.params.AccountHandler.UpdateStoreProfile)
		api.DELETE("/account", r.params.AccountHandler.DeleteAccount)
		api.GET("/lookups", r.params.AccountHandler.ListLookupTables)
		api.GET("/stores/:id/qrcode", r.params.AccountHandler.GetStoreShareQR)

		// Opening schedule
		api.POST("/locations", r.params.LocationHandler.CreateLocation)
		api.GET("/locations", r.params.LocationHandler.ListLocations)
		api.GET("/locations/:id", r.params.LocationHandler.GetLocation)
		api.PUT("/locations/:id", r.params.LocationHandler.UpdateLocation)
		api.DELETE("/locations/:id", r.params.LocationHandler.DeleteLocation)

		// Opinions, likes, and tags
		api.GET("/opinions", r.params.OpinionHandler.ListOpinions)
		api.POST("/opinions", r.params.OpinionHandler.PostOpinion)
		api.GET("/opinions/:id", r.params.OpinionHandler.GetOpinion)
		api.DELETE("/opinions/:id", r.params.OpinionHandler.DeleteOpinion)
		api.POST("/opinions/:id/tags", r.params.OpinionHandler.AttachTag)
		api.DELETE("/opinions/:id/tags/:tagId", r.params.OpinionHandler.DetachTag)
		api.GET("/tags", r.params.OpinionHandler.ListTags)
		api.POST("/answers/like", r.params.OpinionHandler.LikeOpinion)
		api.DELETE("/answers/like/:opinionId/:accountId", r.params.OpinionHandler.UnlikeOpinion)

		// Polls
		api.POST("/questions", r.params.QuestionHandler.PublishQuestion)
		api.GET("/questions", r.params.QuestionHandler.ListQuestions)
		api.GET("/questions/:id", r.params.QuestionHandler.GetQuestion)
		api.DELETE("/questions/:id", r.params.QuestionHandler.DeleteQuestion)
		api.GET("/answers/:accountId/:questionId", r.params.QuestionHandler.GetAnswer)
		api.POST("/answers/:accountId/:questionId", r.params.QuestionHandler.AnswerQuestion)

		// Geo lookup proxy
		api.GET("/geocoding", r.params.GeocodingHandler.ReverseGeocode)
	}
}
