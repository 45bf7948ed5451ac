package server

import (
	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/planboard/internal/logger"
	"github.com/alexanderramin/planboard/internal/server/handlers"
	"github.com/alexanderramin/planboard/internal/server/middleware"
)

type RouterConfig struct {
	Log *logger.Logger

	PlanHandler   *handlers.PlanHandler
	GoalHandler   *handlers.GoalHandler
	HealthHandler *handlers.HealthHandler
	StaticHandler *handlers.StaticHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(middleware.Serialize())
	r.Use(middleware.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.PlanHandler != nil {
			api.GET("/plans", cfg.PlanHandler.List)
			api.POST("/plans", cfg.PlanHandler.Create)
			api.PUT("/plans", cfg.PlanHandler.ReplaceAll)
			api.PUT("/plans/:id", cfg.PlanHandler.Update)
			api.PATCH("/plans/:id", cfg.PlanHandler.Toggle)
			api.DELETE("/plans/:id", cfg.PlanHandler.Delete)
		}
		if cfg.GoalHandler != nil {
			api.GET("/goals", cfg.GoalHandler.Get)
			api.PUT("/goals/:year", cfg.GoalHandler.SetYear)
		}
	}

	// Static frontend and fallbacks
	if cfg.StaticHandler != nil {
		r.OPTIONS("/*path", cfg.StaticHandler.Preflight)
		r.NoRoute(cfg.StaticHandler.NoRoute)
	}

	return r
}
