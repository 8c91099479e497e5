package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/app/controllers"
	"github.com/campusconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", ctrls.Auth.Signup)
		auth.POST("/login", ctrls.Auth.Login)
		auth.GET("/verify-email/:token", ctrls.Auth.VerifyEmail)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrls.Auth.GetProfile)
		authenticated.PUT("/auth/profile", ctrls.Auth.UpdateProfile)

		events := authenticated.Group("/events")
		{
			events.GET("", ctrls.Event.List)
			events.POST("", ctrls.Event.Create)
			events.PUT("/:id", ctrls.Event.Update)
			events.DELETE("/:id", ctrls.Event.Delete)
			events.POST("/:id/rsvp", ctrls.Event.RSVP)
		}

		resources := authenticated.Group("/resources")
		{
			resources.GET("", ctrls.Resource.List)
			resources.POST("", ctrls.Resource.Upload)
			resources.GET("/:id/download", ctrls.Resource.Download)
			resources.DELETE("/:id", ctrls.Resource.Delete)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", ctrls.Project.List)
			projects.POST("", ctrls.Project.Create)
			projects.POST("/:id/join", ctrls.Project.Join)
			projects.PUT("/:id", ctrls.Project.Update)
			projects.DELETE("/:id", ctrls.Project.Delete)
		}

		mentorship := authenticated.Group("/mentorship/requests")
		{
			mentorship.GET("", ctrls.Mentorship.List)
			mentorship.POST("", ctrls.Mentorship.Create)
			mentorship.PUT("/:id/accept", ctrls.Mentorship.Accept)
			mentorship.PUT("/:id", ctrls.Mentorship.UpdateStatus)
		}

		discussions := authenticated.Group("/discussions")
		{
			discussions.GET("", ctrls.Discussion.List)
			discussions.GET("/:id", ctrls.Discussion.GetOne)
			discussions.POST("", ctrls.Discussion.Create)
			discussions.POST("/:id/comments", ctrls.Discussion.AddComment)
			discussions.POST("/:id/upvote", ctrls.Discussion.Upvote)
			discussions.DELETE("/:id", ctrls.Discussion.Delete)
		}
	}
}
