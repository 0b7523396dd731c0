// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutritrack/internal/delivery/http/middleware"
	"nutritrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MealHandler     *handler.MealHandler
	ReminderHandler *handler.ReminderHandler
	GoalHandler     *handler.GoalHandler
	ProfileHandler  *handler.ProfileHandler
	ChatHandler     *handler.ChatHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	mealHandler     *handler.MealHandler
	reminderHandler *handler.ReminderHandler
	goalHandler     *handler.GoalHandler
	profileHandler  *handler.ProfileHandler
	chatHandler     *handler.ChatHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mealHandler:     params.MealHandler,
		reminderHandler: params.ReminderHandler,
		goalHandler:     params.GoalHandler,
		profileHandler:  params.ProfileHandler,
		chatHandler:     params.ChatHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	mealGroup := api.Group("/meals")
	{
		mealGroup.POST("", r.mealHandler.LogMeal)
		mealGroup.GET("", r.mealHandler.ListMeals)
		mealGroup.PATCH("/:id", r.mealHandler.CorrectMeal)
		mealGroup.DELETE("/:id", r.mealHandler.DeleteMeal)
	}

	goalGroup := api.Group("/goals")
	{
		goalGroup.GET("/today", r.goalHandler.Today)
		goalGroup.GET("/totals", r.goalHandler.Totals)
		goalGroup.PUT("", r.goalHandler.UpdateGoals)
		goalGroup.GET("/history", r.goalHandler.History)
		goalGroup.POST("/suggest", r.goalHandler.Suggest)
	}

	reminderGroup := api.Group("/reminders")
	{
		reminderGroup.POST("", r.reminderHandler.CreateReminder)
		reminderGroup.GET("", r.reminderHandler.ListReminders)
		reminderGroup.DELETE("/:id", r.reminderHandler.DeleteReminder)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("/push-token", r.profileHandler.RegisterPushToken)
		profileGroup.DELETE("/push-token", r.profileHandler.ClearPushToken)
	}

	chatGroup := api.Group("/chats")
	{
		chatGroup.GET("", r.chatHandler.ListChats)
		chatGroup.POST("", r.chatHandler.CreateChat)
		chatGroup.POST("/messages", r.chatHandler.SendMessage)
	}
}
