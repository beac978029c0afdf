// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/duniya2no/ReMeet/internal/delivery/http/middleware"
	"github.com/duniya2no/ReMeet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AppointmentHandler  *handler.AppointmentHandler
	ScheduleHandler     *handler.ScheduleHandler
	NotificationHandler *handler.NotificationHandler
	UserHandler         *handler.UserHandler
	PurchaseHandler     *handler.PurchaseHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	appointmentHandler  *handler.AppointmentHandler
	scheduleHandler     *handler.ScheduleHandler
	notificationHandler *handler.NotificationHandler
	userHandler         *handler.UserHandler
	purchaseHandler     *handler.PurchaseHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		appointmentHandler:  params.AppointmentHandler,
		scheduleHandler:     params.ScheduleHandler,
		notificationHandler: params.NotificationHandler,
		userHandler:         params.UserHandler,
		purchaseHandler:     params.PurchaseHandler,
		authMiddleware:      params.AuthMiddleware,
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
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Profile routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.POST("/profile/avatar", r.userHandler.UploadAvatar)
		userGroup.POST("/password", r.userHandler.ChangePassword)
		userGroup.POST("/phone/verify", r.userHandler.StartPhoneVerification)
		userGroup.POST("/phone/confirm", r.userHandler.ConfirmPhoneVerification)
		userGroup.GET("/shop-card/qr", r.userHandler.ShopCardQR)
	}

	// Appointment lifecycle routes
	appointmentGroup := e.Group("/appointments")
	appointmentGroup.Use(r.authMiddleware.Authenticate)
	{
		appointmentGroup.GET("", r.appointmentHandler.List)
		appointmentGroup.POST("", r.appointmentHandler.Create)
		appointmentGroup.GET("/:id", r.appointmentHandler.GetOne)
		appointmentGroup.PUT("/:id", r.appointmentHandler.Update)
		appointmentGroup.DELETE("/:id", r.appointmentHandler.Delete)
		appointmentGroup.POST("/reconcile", r.appointmentHandler.Reconcile)
	}

	// Derived schedule views and the live stream
	scheduleGroup := e.Group("/schedule")
	scheduleGroup.Use(r.authMiddleware.Authenticate)
	{
		scheduleGroup.GET("/today", r.scheduleHandler.Today)
		scheduleGroup.GET("/preview", r.scheduleHandler.Preview)
		scheduleGroup.GET("/weekly", r.scheduleHandler.Weekly)
		scheduleGroup.GET("/stream", r.scheduleHandler.Stream)
	}

	// Notification feed routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.DELETE("/:id", r.notificationHandler.Delete)
		notificationGroup.DELETE("", r.notificationHandler.Clear)
	}

	// Plan purchase routes
	purchaseGroup := e.Group("/purchases")
	purchaseGroup.Use(r.authMiddleware.Authenticate)
	{
		purchaseGroup.POST("", r.purchaseHandler.Record)
		purchaseGroup.GET("", r.purchaseHandler.History)
	}

	// Help requests accept anonymous submissions
	e.POST("/help", r.purchaseHandler.SubmitHelp)
}
