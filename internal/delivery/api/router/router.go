// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mapic/config"
	"mapic/internal/delivery/api/middleware"
	"mapic/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	FriendHandler    *handler.FriendHandler
	DiscoveryHandler *handler.DiscoveryHandler
	PlaceHandler     *handler.PlaceHandler
	LocationHandler  *handler.LocationHandler
	DeviceHandler    *handler.DeviceHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	accountHandler   *handler.AccountHandler
	friendHandler    *handler.FriendHandler
	discoveryHandler *handler.DiscoveryHandler
	placeHandler     *handler.PlaceHandler
	locationHandler  *handler.LocationHandler
	deviceHandler    *handler.DeviceHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		accountHandler:   params.AccountHandler,
		friendHandler:    params.FriendHandler,
		discoveryHandler: params.DiscoveryHandler,
		placeHandler:     params.PlaceHandler,
		locationHandler:  params.LocationHandler,
		deviceHandler:    params.DeviceHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck(r.config.Env.ServiceName))

	apiV1 := e.Group("/api/v1")

	// Auth routes are public
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/activate", r.authHandler.Activate)
		authGroup.POST("/resend-activation", r.authHandler.ResendActivation)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOtp)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	usersGroup := apiV1.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.accountHandler.Me)
		usersGroup.PUT("/profile", r.accountHandler.UpdateProfile)
		usersGroup.PUT("/password", r.accountHandler.ChangePassword)
		usersGroup.POST("/send-change-otp", r.accountHandler.SendChangeOtp)
		usersGroup.PUT("/email", r.accountHandler.ChangeEmail)
		usersGroup.PUT("/phone", r.accountHandler.ChangePhone)
	}

	friendsGroup := apiV1.Group("/friends", r.authMiddleware.Authenticate)
	{
		friendsGroup.POST("/search", r.discoveryHandler.Search)
		friendsGroup.GET("/list", r.discoveryHandler.List)
		friendsGroup.GET("/nearby", r.discoveryHandler.Nearby)
		friendsGroup.GET("/:id/profile", r.discoveryHandler.Profile)

		friendsGroup.POST("/add", r.friendHandler.AddFriend)
		friendsGroup.POST("/invite", r.friendHandler.AcceptInvite)
		friendsGroup.GET("/invite/qr", r.friendHandler.InviteQR)
		friendsGroup.GET("/requests", r.friendHandler.PendingRequests)
		friendsGroup.POST("/:id/accept", r.friendHandler.AcceptFriend)
		friendsGroup.DELETE("/:id", r.friendHandler.RemoveFriend)
	}

	// Place reads are public; check-in needs a caller.
	placesGroup := apiV1.Group("/places")
	{
		placesGroup.POST("/search", r.placeHandler.Search)
		placesGroup.GET("/nearby", r.placeHandler.Nearby)
		placesGroup.GET("/categories", r.placeHandler.Categories)
		placesGroup.GET("/popular", r.placeHandler.Popular)
		placesGroup.GET("/:placeId", r.placeHandler.GetPlace)
		placesGroup.POST("/:placeId/checkin", r.placeHandler.CheckIn, r.authMiddleware.Authenticate)
	}

	locationsGroup := apiV1.Group("/locations", r.authMiddleware.Authenticate)
	{
		locationsGroup.POST("", r.locationHandler.Report)
		locationsGroup.GET("", r.locationHandler.FriendsLatest)
		locationsGroup.GET("/me", r.locationHandler.Latest)
		locationsGroup.GET("/me/history", r.locationHandler.History)
		locationsGroup.GET("/:userId", r.locationHandler.FriendLatest)
	}

	devicesGroup := apiV1.Group("/devices", r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
