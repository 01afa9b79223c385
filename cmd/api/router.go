package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/shared/middleware"
	"cms-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupContentRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

func setupContentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	content := v1.Group("/content")
	{
		// Public cached read paths. OptionalAuth resolves the actor
		// when a token is present so reads are logged against the
		// user, without requiring one.
		reads := content.Group("")
		reads.Use(middleware.OptionalAuth(c.JWTManager))
		{
			reads.GET("", c.ContentHandler.List)
			reads.GET("/:id", c.ContentHandler.GetByID)
		}

		// Mutations require an authenticated admin or moderator. The
		// role gate here only trims the surface; ownership and
		// transition rules are decided inside the content core.
		authed := content.Group("")
		authed.Use(
			middleware.AuthMiddleware(c.JWTManager),
			middleware.RequireRoles("admin", "moderator"),
		)
		{
			authed.POST("", c.ContentHandler.Create)
			authed.PUT("/:id", c.ContentHandler.Update)
		}
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = err.Error()
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = err.Error()
		}

		status := http.StatusOK
		if dbStatus != "ok" || cacheStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   "up",
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
