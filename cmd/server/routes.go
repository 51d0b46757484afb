package main

import (
	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/middleware"
	"github.com/huangang/skillhub/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Brute-force mitigation on credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health checks (root alias for container probes)
	r.GET("/health", svc.healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		api.GET("/health", svc.healthHandler.CheckHealth)

		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/signup", svc.authHandler.Signup)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Public catalog
		api.GET("/projects", svc.projectHandler.ListApproved)

		// Authenticated routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/auth/profile", svc.authHandler.Profile)

			protected.POST("/projects", svc.projectHandler.Submit)
			protected.POST("/projects/:id/join", svc.membershipHandler.Join)
			protected.DELETE("/projects/:id/leave", svc.membershipHandler.Leave)

			protected.PUT("/users/skills", svc.userHandler.UpdateSkills)
			protected.PUT("/users/password", svc.userHandler.UpdatePassword)
		}

		// Admin-only routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			admin.GET("/projects/pending", svc.projectHandler.ListPending)
			admin.PUT("/projects/:id/approve", svc.projectHandler.Approve)
			admin.PUT("/projects/:id/reject", svc.projectHandler.Reject)

			admin.GET("/users", svc.userHandler.List)
		}
	}
}
