package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/hello", func(c *gin.Context) {
			response.Success(c, http.StatusOK, "Hello from backend!", nil)
		})
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupBlogRoutes(api, c)
		setupCategoryRoutes(api, c)
	}

	setupDashboardRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	verify := middleware.AuthMiddleware(c.JWTManager, c.UserRepo)

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/admin-only", verify, middleware.AdminOnly(), adminProbeHandler("Welcome, Admin!"))
	}
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	verify := middleware.AuthMiddleware(c.JWTManager, c.UserRepo)
	maybeVerify := middleware.OptionalAuthMiddleware(c.JWTManager, c.UserRepo)

	blogs := api.Group("/blogs")
	{
		// Public routes. Listing consults identity when present to decide
		// draft/archived visibility.
		blogs.GET("", maybeVerify, c.PostHandler.List)
		blogs.GET("/:id", c.PostHandler.GetByID)
		blogs.GET("/:id/related", c.PostHandler.Related)

		// Protected routes
		blogs.POST("", verify, middleware.AuthorOrAdmin(), c.PostHandler.Create)
		blogs.PUT("/:id", verify, middleware.AuthorOrAdmin(), c.PostHandler.Update)
		blogs.DELETE("/:id", verify, middleware.AuthorOrAdmin(), c.PostHandler.Delete)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	verify := middleware.AuthMiddleware(c.JWTManager, c.UserRepo)
	adminOnly := middleware.AdminOnly()

	categories := api.Group("/categories")
	{
		// Public routes. The :identifier position takes an id or a slug.
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:identifier", c.CategoryHandler.GetByIdentifier)
		categories.GET("/:identifier/subcategories", c.CategoryHandler.GetSubCategories)

		// Protected routes (admin only)
		categories.POST("", verify, adminOnly, c.CategoryHandler.Create)
		categories.PUT("/:identifier", verify, adminOnly, c.CategoryHandler.Update)
		categories.DELETE("/:identifier", verify, adminOnly, c.CategoryHandler.Delete)

		// Subcategory routes
		categories.POST("/:identifier/subcategories", verify, adminOnly, c.CategoryHandler.CreateSubCategory)
		categories.PUT("/:identifier/subcategories/:subCategoryId", verify, adminOnly, c.CategoryHandler.UpdateSubCategory)
		categories.DELETE("/:identifier/subcategories/:subCategoryId", verify, adminOnly, c.CategoryHandler.DeleteSubCategory)
	}
}

// ========================================
// DASHBOARD ROUTES
// ========================================
func setupDashboardRoutes(router *gin.Engine, c *container.Container) {
	verify := middleware.AuthMiddleware(c.JWTManager, c.UserRepo)

	router.GET("/dashboard", verify, middleware.AdminOnly(), adminProbeHandler("Welcome to the Admin Dashboard"))
}

func adminProbeHandler(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.GetIdentity(c)
		response.Success(c, http.StatusOK, message, gin.H{"user": identity})
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "error: " + err.Error()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
