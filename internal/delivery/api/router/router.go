// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plantcare/config"
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PlantHandler        *handler.PlantHandler
	ScheduleHandler     *handler.ScheduleHandler
	TaskHandler         *handler.TaskHandler
	NotificationHandler *handler.NotificationHandler
	CronHandler         *handler.CronHandler
	AuthMiddleware      *middleware.AuthMiddleware
	AuthRateLimit       *middleware.RateLimitMiddleware `name:"authRateLimit"`
	APIRateLimit        *middleware.RateLimitMiddleware `name:"apiRateLimit"`
	Gatherer            prometheus.Gatherer             `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	plantHandler        *handler.PlantHandler
	scheduleHandler     *handler.ScheduleHandler
	taskHandler         *handler.TaskHandler
	notificationHandler *handler.NotificationHandler
	cronHandler         *handler.CronHandler
	authMiddleware      *middleware.AuthMiddleware
	authRateLimit       *middleware.RateLimitMiddleware
	apiRateLimit        *middleware.RateLimitMiddleware
	gatherer            prometheus.Gatherer
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		plantHandler:        params.PlantHandler,
		scheduleHandler:     params.ScheduleHandler,
		taskHandler:         params.TaskHandler,
		notificationHandler: params.NotificationHandler,
		cronHandler:         params.CronHandler,
		authMiddleware:      params.AuthMiddleware,
		authRateLimit:       params.AuthRateLimit,
		apiRateLimit:        params.APIRateLimit,
		gatherer:            params.Gatherer,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// The cron trigger authenticates with the shared cron secret, not a user token.
	e.GET("/api/cron/check-tasks", r.cronHandler.CheckTasks)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.gatherer != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth", r.authRateLimit.Limit)
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/reset-password", r.userHandler.RequestPasswordReset)
		authGroup.POST("/confirm-reset", r.userHandler.ConfirmPasswordReset)
		authGroup.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Everything below requires a user access token.
	protected := apiV1.Group("", r.authMiddleware.Authenticate, r.apiRateLimit.Limit)

	plantsGroup := protected.Group("/plants")
	{
		plantsGroup.POST("", r.plantHandler.CreatePlant)
		plantsGroup.GET("", r.plantHandler.ListPlants)
		plantsGroup.GET("/:id", r.plantHandler.GetPlant)
		plantsGroup.PUT("/:id", r.plantHandler.UpdatePlant)
		plantsGroup.DELETE("/:id", r.plantHandler.DeletePlant)
	}

	schedulesGroup := protected.Group("/schedules")
	{
		schedulesGroup.POST("", r.scheduleHandler.CreateSchedule)
		schedulesGroup.GET("", r.scheduleHandler.ListSchedules)
		schedulesGroup.GET("/plant/:plantId", r.scheduleHandler.ListPlantSchedules)
		schedulesGroup.GET("/:id", r.scheduleHandler.GetSchedule)
		schedulesGroup.PUT("/:id", r.scheduleHandler.UpdateSchedule)
		schedulesGroup.PATCH("/:id/toggle", r.scheduleHandler.ToggleSchedule)
		schedulesGroup.DELETE("/:id", r.scheduleHandler.DeleteSchedule)
	}

	tasksGroup := protected.Group("/tasks")
	{
		tasksGroup.GET("", r.taskHandler.ListUpcoming)
		tasksGroup.POST("/complete", r.taskHandler.CompleteTask)
		tasksGroup.GET("/history", r.taskHandler.ListHistory)
		tasksGroup.GET("/plant/:plantId/history", r.taskHandler.ListPlantHistory)
	}

	notificationsGroup := protected.Group("/notifications")
	{
		notificationsGroup.GET("/preferences", r.notificationHandler.GetPreferences)
		notificationsGroup.PUT("/preferences", r.notificationHandler.UpdatePreferences)
		notificationsGroup.POST("/subscribe", r.notificationHandler.Subscribe)
		notificationsGroup.POST("/test", r.notificationHandler.SendTest)
		notificationsGroup.GET("/logs", r.notificationHandler.ListLogs)
	}
}
