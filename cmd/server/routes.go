package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sparkier.backend/internal/domain/entities"
	"sparkier.backend/internal/interfaces/http/handlers"
	"sparkier.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	consultantHandler *handlers.ConsultantHandler
	sparkHandler      *handlers.SparkHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, with protected account endpoints)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Consultant routes. The /me routes are registered before /:slug
		// so the static segment wins over the wildcard.
		consultants := v1.Group("/consultants")
		{
			consultants.GET("", d.consultantHandler.List)
			consultants.GET("/me", d.authMiddleware, d.consultantHandler.GetMyProfile)
			consultants.PUT("/me", d.authMiddleware, d.consultantHandler.UpdateMyProfile)
			consultants.PUT("/me/full", d.authMiddleware, d.consultantHandler.SaveMyProfile)
			consultants.GET("/:slug", d.consultantHandler.GetBySlug)
		}

		// Spark catalog (public read, consultant write)
		sparks := v1.Group("/sparks")
		{
			sparks.GET("", d.sparkHandler.List)
			sparks.GET("/mine", d.authMiddleware, d.sparkHandler.ListMine)
			sparks.GET("/:url", d.sparkHandler.GetByURL)
			sparks.POST("", d.authMiddleware, d.sparkHandler.Create)
			sparks.PUT("/:id", d.authMiddleware, d.sparkHandler.Update)
			sparks.DELETE("/:id", d.authMiddleware, d.sparkHandler.Delete)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(entities.RoleAdmin))
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/profiles", d.adminHandler.ListProfiles)
			admin.PUT("/profiles/:id/roles", d.adminHandler.UpdateRoles)
			admin.GET("/clients", d.adminHandler.ListClients)
			admin.GET("/sparks", d.sparkHandler.List)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sparkier-backend",
			"version": "0.2.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, X-Session-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
