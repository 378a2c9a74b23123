// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inkwell-api/config"
	"inkwell-api/controllers"
	"inkwell-api/middleware"
	"inkwell-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cache *services.CacheService, emailService *services.EmailService) {
	// Services
	postService := services.NewPostService(db, cfg.PageSize)
	followService := services.NewFollowService(db)
	groupService := services.NewGroupService(db, postService)
	userService := services.NewUserService(db, postService, followService)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postService, cache)
	groupController := controllers.NewGroupController(groupService)
	userController := controllers.NewUserController(userService, followService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Public read routes; a token personalizes the output when present
	public := v1.Group("/")
	public.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	{
		public.GET("/posts", postController.GetPosts)
		public.GET("/posts/:id", postController.GetPost)
		public.GET("/posts/:id/comments", postController.GetComments)
		public.GET("/groups", groupController.GetGroups)
		public.GET("/groups/:slug", groupController.GetGroup)
		public.GET("/users/:username", userController.GetProfile)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/feed", postController.GetFeed)
		protected.GET("/followers", userController.GetFollowers)
		protected.GET("/following", userController.GetFollowing)

		protected.POST("/posts", postController.CreatePost)
		protected.PUT("/posts/:id", postController.UpdatePost)
		protected.DELETE("/posts/:id", postController.DeletePost)
		protected.POST("/posts/:id/comments", postController.CreateComment)

		protected.POST("/users/:username/follow", userController.FollowUser)
		protected.DELETE("/users/:username/follow", userController.UnfollowUser)
	}
}
